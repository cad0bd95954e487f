package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/iconresize/icon"
	"github.com/srlehn/iconresize/internal/consts"
	"github.com/srlehn/iconresize/internal/errors"
)

const Name = `gift`

func init() { icon.RegisterResizer(Name, &Resizer{}) }

// Resizer uses "github.com/disintegration/gift"
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
	m := image.NewNRGBA(image.Rectangle{Max: image.Point{X: size.X, Y: size.Y}})
	gift.Resize(size.X, size.Y, gift.LanczosResampling).Draw(m, img, &gift.Options{Parallelization: true})
	return m, nil
}
