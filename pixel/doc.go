// Package pixel implements the monochrome color and image types backing memory LCD panels.
//
// This module provides a 1-bit color model and a packed framebuffer, compatible with Go's
// native [color.Color] and [image.Image] / [draw.Image] interfaces.
package pixel
