package rdefault

import (
	"image"

	"github.com/srlehn/iconresize/icon"
	"github.com/srlehn/iconresize/internal/consts"
	"github.com/srlehn/iconresize/internal/errors"
	"github.com/srlehn/iconresize/resize/imaging"
	"github.com/srlehn/iconresize/resize/xdraw"
)

func init() { icon.RegisterResizer(consts.ResizerDefaultName, &Resizer{}) }

type Resizer struct{}

var _ icon.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.New(consts.ErrInvalidSize)
	}
	// resample the decoded pixels instead of going through the lazy wrapper
	if it, ok := img.(*icon.Image); ok {
		im, err := it.Normalize()
		if err != nil {
			return nil, err
		}
		img = im
	}
	imgRet, err := (&imaging.Resizer{}).Resize(img, size)
	if err == nil && imgRet != nil && imgRet.Bounds().Size() == size {
		return imgRet, nil
	}
	return xdraw.CatmullRom().Resize(img, size)
}
