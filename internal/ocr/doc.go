// Package ocr locates text in images with Tesseract so it can be erased.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2). Images are
// passed to Tesseract as in-memory PNG bytes; no temporary files are created.
// Each recognized word, line or block becomes a TextMask whose rectangle can
// be fed straight to the inpaint package.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr libtesseract-dev
//   - macOS: brew install tesseract
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// # Levels
//
//   - LevelWord: one mask per word; tightest masks, best for erasing
//   - LevelLine: one mask per text line
//   - LevelBlock: one mask per paragraph-like block
//
// # Confidence
//
// Tesseract scores each box from 0 to 100. Scores are scaled to 0.0-1.0 and
// boxes below Options.MinConfidence are dropped. The score reflects how sure
// Tesseract is about the text, so very low thresholds also admit noise.
//
// # Error Handling
//
// Errors raised by Tesseract are prefixed with "tesseract:". If bounding box
// extraction fails after recognition succeeded, Recognize still returns the
// full text with an empty Masks slice.
package ocr
