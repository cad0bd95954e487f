// Package xdraw provides a resizer implementation using golang.org/x/image/draw.
// Only the Catmull-Rom kernel is offered, the cheaper scalers alias badly
// at icon sizes.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/iconresize/icon"
	"github.com/srlehn/iconresize/internal/consts"
	"github.com/srlehn/iconresize/internal/errors"
)

const Name = `xdraw`

func init() { icon.RegisterResizer(Name, CatmullRom()) }

// resizer uses "golang.org/x/image/draw"
type resizer struct {
	scaler draw.Scaler
}

var _ icon.Resizer = (*resizer)(nil)

// CatmullRom creates a new resizer with CatmullRom scaling (highest quality, slowest).
func CatmullRom() icon.Resizer {
	return &resizer{scaler: draw.CatmullRom}
}

// Resize scales an image to the target size using the configured scaler.
func (r *resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.New(consts.ErrInvalidSize)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	r.scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}
