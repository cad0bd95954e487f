package icon

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/srlehn/iconresize/internal"
	"github.com/srlehn/iconresize/internal/consts"
	"github.com/srlehn/iconresize/internal/errors"
)

type ImageEncoder = internal.ImageEncoder

// Image is an image that is decoded from FileName or Encoded on first use.
// It satisfies image.Image itself.
type Image struct {
	Original   image.Image
	Normalized *image.NRGBA
	FileName   string // lazily loaded
	Encoded    []byte // lazily loaded
	Format     string // format name reported by the decoder
}

// NewImage wraps a decoded image. An *Image is returned unchanged.
func NewImage(img image.Image) *Image {
	if m, ok := img.(*Image); ok && m != nil {
		return m
	}
	return &Image{Original: img}
}

// NewImageFilename - for lazy loading the file
func NewImageFilename(imgFile string) *Image {
	if imgFilenameAbs, err := filepath.Abs(imgFile); err == nil {
		imgFile = imgFilenameAbs
	}
	return &Image{FileName: imgFile}
}

// NewImageBytes - for lazy loading the file
func NewImageBytes(imgBytes []byte) *Image {
	return &Image{Encoded: imgBytes}
}

// Decode decodes and stores the image file in the struct.
//
// Decode requires registration of image decoders.
func (i *Image) Decode() error {
	if i == nil {
		return errors.NilReceiver()
	}
	if i.Original != nil {
		return nil
	}
	var rdr io.Reader
	if len(i.Encoded) > 0 {
		if len(i.FileName) > 0 {
			return errors.New(`image contains 2 sources`)
		}
		rdr = bytes.NewReader(i.Encoded)
	} else if len(i.FileName) > 0 {
		f, err := os.Open(i.FileName)
		if err != nil {
			return errors.Kind(consts.ErrDecode, err)
		}
		defer f.Close()
		rdr = f
	} else {
		return errors.New(consts.ErrNilImage)
	}
	img, format, err := image.Decode(rdr)
	if err != nil {
		return errors.Kind(consts.ErrDecode, err)
	}
	i.Original = img
	i.Format = format
	return nil
}

// Normalize converts the decoded image to non-premultiplied RGBA
// with its origin at (0,0). Opaque sources get a fully opaque alpha channel.
func (i *Image) Normalize() (*image.NRGBA, error) {
	if i == nil {
		return nil, errors.NilReceiver()
	}
	if i.Normalized != nil {
		return i.Normalized, nil
	}
	if err := i.Decode(); err != nil {
		return nil, err
	}
	if i.Original == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if m, ok := i.Original.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) {
		i.Normalized = m
	} else {
		i.Normalized = imaging.Clone(i.Original)
	}
	return i.Normalized, nil
}

// Image returns the normalized image if present, the decoded one otherwise.
func (i *Image) Image() (image.Image, error) {
	if i == nil {
		return nil, errors.NilReceiver()
	}
	if i.Normalized != nil {
		return i.Normalized, nil
	}
	if err := i.Decode(); err != nil {
		return nil, err
	}
	return i.Original, nil
}

// ColorModel decodes the image if needed, NRGBA if that fails.
func (i *Image) ColorModel() color.Model {
	img, err := i.Image()
	if err != nil || img == nil {
		return color.NRGBAModel
	}
	return img.ColorModel()
}

// Bounds decodes the image if needed, empty if that fails.
func (i *Image) Bounds() image.Rectangle {
	img, err := i.Image()
	if err != nil || img == nil {
		return image.Rectangle{}
	}
	return img.Bounds()
}

// At decodes the image if needed, transparent if that fails.
func (i *Image) At(x, y int) color.Color {
	img, err := i.Image()
	if err != nil || img == nil {
		return color.NRGBA{}
	}
	return img.At(x, y)
}

// HasAlpha reports whether pixels of the color model carry an alpha channel.
func HasAlpha(m color.Model) bool {
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	}
	switch m {
	case color.RGBAModel, color.RGBA64Model,
		color.NRGBAModel, color.NRGBA64Model,
		color.AlphaModel, color.Alpha16Model,
		color.NYCbCrAModel:
		return true
	}
	return false
}

////////////////////////////////////////////////////////////////////////////////

// Resizer resizes images
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

// Resize normalizes the image and resamples it to a side×side square.
// The aspect ratio is not kept.
func (i *Image) Resize(rsz Resizer, side int) (image.Image, error) {
	if i == nil {
		return nil, errors.NilReceiver()
	}
	if rsz == nil {
		return nil, errors.Errorf(`%w: no resizer`, consts.ErrMissingCapability)
	}
	if side <= 0 {
		return nil, errors.Errorf(`%w: %dx%d`, consts.ErrInvalidSize, side, side)
	}
	src, err := i.Normalize()
	if err != nil {
		return nil, err
	}
	size := image.Point{X: side, Y: side}
	imgResized, err := rsz.Resize(src, size)
	if err != nil {
		return nil, errors.New(err)
	}
	if imgResized == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if got := imgResized.Bounds().Size(); got != size {
		return nil, errors.Errorf(`%w: resizer returned %dx%d, want %dx%d`, consts.ErrInvalidSize, got.X, got.Y, size.X, size.Y)
	}
	return imgResized, nil
}
