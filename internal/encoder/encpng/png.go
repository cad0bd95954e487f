package encpng

import (
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-errors/errors"

	"github.com/srlehn/iconresize/internal"
	"github.com/srlehn/iconresize/internal/consts"
)

var _ internal.ImageEncoder = (*PngEncoder)(nil)

// PngEncoder always writes 8-bit RGBA (PNG color type 6), opaque images included.
type PngEncoder struct {
	// CompressionLevel zero value is png.DefaultCompression
	CompressionLevel png.CompressionLevel
}

func (e *PngEncoder) Encode(w io.Writer, img image.Image, fileExt string) error {
	if w == nil || img == nil {
		return errors.New(consts.ErrNilParam)
	}
	// allow passing whole filename
	fileExtParts := strings.Split(fileExt, `.`)
	fileExt = fileExtParts[len(fileExtParts)-1]
	fmtStr := strings.ToLower(strings.TrimPrefix(fileExt, `.`))
	if fmtStr != consts.OutputExt {
		return errors.Errorf(`%w: %q`, consts.ErrUnsupportedFormat, fmtStr)
	}
	var enc png.Encoder
	if e != nil {
		enc.CompressionLevel = e.CompressionLevel
	}
	if err := enc.Encode(w, withAlpha(img)); err != nil {
		return errors.New(err)
	}
	return nil
}

// alphaNRGBA hides opaqueness from image/png,
// which would drop the alpha channel otherwise.
type alphaNRGBA struct{ *image.NRGBA }

func (alphaNRGBA) Opaque() bool { return false }

func withAlpha(img image.Image) image.Image {
	m, ok := img.(*image.NRGBA)
	if !ok {
		m = imaging.Clone(img)
	}
	return alphaNRGBA{NRGBA: m}
}
