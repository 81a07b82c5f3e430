// Package detection finds text regions without an OCR engine.
//
// It is the fallback when Tesseract is not installed or when an image holds
// stylized text that OCR cannot read but that still needs erasing. The
// results are coarse rectangles suitable as fill masks.
//
// # Algorithm Overview
//
//  1. Edge Detection: grayscale, Sobel operator and a binary threshold (bild)
//  2. Sliding Windows: windows of several text sizes are scored by edge
//     density and by how horizontal their edge runs are
//  3. Merging: overlapping windows are merged into their bounding box
//  4. Sorting: regions are returned highest confidence first
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// Regions are reported in the coordinates of the input image, so an image
// whose bounds do not start at (0,0) yields offset rectangles.
//
// # Confidence Scores
//
// Confidence (0.0 to 1.0) is the share of horizontal edge runs scaled by how
// close the edge density is to 0.2. Windows with densities outside 0.05-0.4
// are rejected outright.
//
// # Limitations
//
// These heuristics work best on clean, high-contrast images such as
// screenshots, diagrams and slides. Photographs and textured backgrounds
// produce false positives.
package detection
