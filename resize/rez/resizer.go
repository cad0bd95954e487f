package rez

import (
	"image"
	"image/draw"

	"github.com/bamiaux/rez"

	"github.com/srlehn/iconresize/icon"
	"github.com/srlehn/iconresize/internal/consts"
	"github.com/srlehn/iconresize/internal/errors"
)

const Name = `rez`

// lanczosTaps is the lobe count of the Lanczos kernel.
const lanczosTaps = 3

func init() { icon.RegisterResizer(Name, &Resizer{}) }

// Resizer uses "github.com/bamiaux/rez"
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
	rect := image.Rectangle{Max: size}
	// rez converts between images of the same layout only
	var m image.Image
	switch it := img.(type) {
	case *image.NRGBA:
		m = image.NewNRGBA(rect)
	case *image.RGBA:
		m = image.NewRGBA(rect)
	case *image.Gray:
		m = image.NewGray(rect)
	default:
		b := img.Bounds()
		nimg := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nimg, nimg.Bounds(), it, b.Min, draw.Src)
		img = nimg
		m = image.NewNRGBA(rect)
	}
	if err := rez.Convert(m, img, rez.NewLanczosFilter(lanczosTaps)); err != nil {
		return nil, errors.New(err)
	}
	return m, nil
}
