// Package render turns a segmentation into pictures and numbers.
//
// Paint gives every segment one colour from a ColorSource and fills the
// segment's pixels with it. Summarize reports the distribution of segment
// sizes, and SaveSizeHistogram plots that distribution to an image file.
//
// Colours are drawn in segment order, so a deterministic segmentation and a
// seeded ColorSource together produce a bit-identical output raster.
// Neighbouring segments may receive the same colour; nothing here prevents
// collisions.
package render
