// Package iconresize writes the icon set of a browser extension
// (icon16.png, icon48.png, icon128.png) from a single source image.
//
// The source is the first of icon_source.png, icon.png, source_icon.png
// and icon128.png found in the working directory.
package iconresize

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/srlehn/iconresize/icon"
	"github.com/srlehn/iconresize/internal/encoder/encpng"
	_ "github.com/srlehn/iconresize/resize/all"
	"github.com/srlehn/iconresize/resize/rdefault"
)

var (
	// chosen defaults
	resizer icon.Resizer      = &rdefault.Resizer{}
	encoder icon.ImageEncoder = &encpng.PngEncoder{}
)

var (
	DefaultConfig = icon.Options{
		icon.SetResizer(resizer),
		icon.SetEncoder(encoder),
		icon.SetOutput(os.Stdout),
	}
)

// NewGenerator returns a generator configured with DefaultConfig and opts.
func NewGenerator(opts ...icon.Option) (*icon.Generator, error) {
	return icon.NewGenerator(append([]icon.Option{DefaultConfig}, opts...)...)
}

// Generate writes the icons for the source image in dir.
func Generate(dir string, opts ...icon.Option) error {
	g, err := NewGenerator(append([]icon.Option{icon.SetDir(dir)}, opts...)...)
	if err != nil {
		return err
	}
	return g.Run()
}

// Check verifies the icons in dir.
func Check(dir string, opts ...icon.Option) ([]icon.Report, error) {
	g, err := NewGenerator(append([]icon.Option{icon.SetDir(dir)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return g.Check()
}
