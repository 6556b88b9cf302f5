// Package imaging is the image I/O boundary of the segmenter: it decodes
// files, prepares pixels for segmentation and encodes the painted result.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward. The segment package addresses the same pixels by
// (row, col), so row = y and col = x.
//
// # Formats
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF, WebP and TGA, picked by file
// extension. Encoding is chosen the same way: PNG, JPEG, BMP, lossless WebP
// or TGA. EXIF orientation is not applied.
//
// # Coordinate System
//
// For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive
// (bottom-right).
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual operations are
// stateless and can be called concurrently on different images.
//
// # Error Handling
//
// File and codec failures are *AccessError values matching ErrResourceAccess.
// Invalid coordinates, regions or preprocessing options are plain errors.
package imaging
