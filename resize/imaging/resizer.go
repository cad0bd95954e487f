package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/iconresize/icon"
	"github.com/srlehn/iconresize/internal/consts"
	"github.com/srlehn/iconresize/internal/errors"
)

const Name = `imaging`

func init() { icon.RegisterResizer(Name, &Resizer{}) }

// Resizer uses "github.com/disintegration/imaging"
type Resizer struct{}

var _ icon.Resizer = (*Resizer)(nil)

// Resize resamples img to exactly size, non-positive sides are rejected.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		// imaging keeps the aspect ratio for a zero side
		return nil, errors.New(consts.ErrInvalidSize)
	}
	return imaging.Resize(img, size.X, size.Y, imaging.Lanczos), nil
}
