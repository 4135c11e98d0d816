// Package imageio moves images and scribble masks between files and the
// in-memory types of the segmentation packages.
//
// Decoding understands PNG, JPEG, GIF, BMP, TIFF and WebP; encoding picks the
// format from the file extension (.png, .jpg/.jpeg, .gif, .bmp, .tif/.tiff).
// Scribble masks are ordinary images whose non-black pixels mark scribbled
// positions.
package imageio
