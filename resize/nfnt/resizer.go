package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/srlehn/iconresize/icon"
	"github.com/srlehn/iconresize/internal/consts"
	"github.com/srlehn/iconresize/internal/errors"
)

const Name = `nfnt`

func init() { icon.RegisterResizer(Name, &Resizer{}) }

// Resizer uses "github.com/nfnt/resize"
type Resizer struct{}

var _ icon.Resizer = (*Resizer)(nil)

// Resize resamples img to exactly size, non-positive sides are rejected.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		// 0 means "keep aspect ratio" for nfnt
		return nil, errors.New(consts.ErrInvalidSize)
	}
	m := resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3)
	return m, nil
}
