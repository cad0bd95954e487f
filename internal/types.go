package internal

import (
	"image"
	"io"
)

// ImageEncoder writes img to w in the format named by fileExt.
type ImageEncoder interface {
	Encode(w io.Writer, img image.Image, fileExt string) error
}
