// Package inpaint erases text regions from a bitmap by painting over them
// with colour estimated from the surrounding background.
//
// The fill is flat or a horizontal two-point gradient; there is no texture
// synthesis. Every operation works on a copy of its source buffer, so the
// caller's buffer is never mutated, and every operation returns the colours
// it applied so callers can report or reuse them.
//
// # Background Estimation
//
// EstimateBackground samples four strips of SampleWidth pixels around a
// region (top, bottom, left, right), quantizes each opaque pixel to the
// nearest multiple of QuantizeStep per channel, and returns the most frequent
// quantized colour. Ties go to the colour seen first. When nothing can be
// sampled the estimate degrades to "#ffffff"; estimation never fails.
//
// # Fill Modes
//
//   - FillWithColor: per mask, sequentially, with a fixed colour or a colour
//     estimated from the original image.
//   - FillAuto: estimates every mask concurrently against the original image,
//     then paints in input order. Later masks win on overlap.
//   - FillGradient: left-to-right gradient between the colours estimated
//     immediately left and right of the mask.
//
// Masks are grown by FillPadding pixels on each side before painting so that
// anti-aliased glyph edges are covered.
package inpaint
