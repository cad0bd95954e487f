package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/iconresize/icon"
	"github.com/srlehn/iconresize/internal/consts"
	"github.com/srlehn/iconresize/internal/errors"
)

const Name = `bild`

func init() { icon.RegisterResizer(Name, &Resizer{}) }

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct{}

var _ icon.Resizer = (*Resizer)(nil)

// Resize resamples img to exactly size, non-positive sides are rejected.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.New(consts.ErrInvalidSize)
	}
	m := transform.Resize(img, size.X, size.Y, transform.Lanczos)
	return m, nil
}
