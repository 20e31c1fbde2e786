// Package fitscube reads and writes data cubes as FITS images.
//
// FITS stores axis 1 fastest, so NAXIS1 becomes the last cube axis:
// an image with NAXIS1=100, NAXIS2=80, NAXIS3=20 reads as a cube of shape
// (20, 80, 100). BSCALE and BZERO are applied on read, BLANK and NaN
// values are masked, BUNIT becomes the cube unit and the CTYPE/CRPIX/
// CRVAL/CDELT/CUNIT cards form the world coordinate system.
//
// Cubes are written as BITPIX -64 images with masked elements stored as
// NaN.
package fitscube
