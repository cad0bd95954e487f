package icon

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/srlehn/iconresize/internal/consts"
	"github.com/srlehn/iconresize/internal/errors"
	"github.com/srlehn/iconresize/internal/logx"
)

// Report is the state of one generated icon file.
type Report struct {
	Size int
	File string
	// Dimensions as stored in the file, zero if it couldn't be read.
	Got image.Point
	Err error
}

func (r Report) OK() bool { return r.Err == nil }

func (r Report) String() string {
	if r.Err != nil {
		return fmt.Sprintf(`%s: %v`, r.File, r.Err)
	}
	return fmt.Sprintf(`%s: ok (%dx%d)`, r.File, r.Got.X, r.Got.Y)
}

// Check inspects the icon files in the generator directory, one report
// per target size in generation order. The error matches ErrCheck if any
// file is missing, isn't a PNG or has the wrong dimensions.
func (g *Generator) Check() ([]Report, error) {
	if g == nil {
		return nil, errors.NilReceiver()
	}
	reports := make([]Report, 0, len(consts.TargetSizes))
	var errs []error
	for _, size := range consts.TargetSizes {
		r := g.checkFile(size)
		if r.Err != nil {
			errs = append(errs, fmt.Errorf(`%s: %w`, r.File, r.Err))
			logx.Warn(`icon check failed`, g, `file`, r.File, `err`, r.Err)
		}
		reports = append(reports, r)
	}
	if len(errs) > 0 {
		return reports, errors.Kind(consts.ErrCheck, errors.Join(errs...))
	}
	return reports, nil
}

func (g *Generator) checkFile(size int) Report {
	r := Report{Size: size, File: OutputName(size)}
	f, err := os.Open(g.path(r.File))
	if err != nil {
		r.Err = err
		return r
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		r.Err = errors.Kind(consts.ErrDecode, err)
		return r
	}
	r.Got = image.Point{X: cfg.Width, Y: cfg.Height}
	if format != consts.OutputExt {
		r.Err = errors.Errorf(`%w: %q`, consts.ErrUnsupportedFormat, format)
		return r
	}
	if r.Got.X != size || r.Got.Y != size {
		r.Err = errors.Errorf(`%w: got %dx%d, want %dx%d`, consts.ErrInvalidSize, r.Got.X, r.Got.Y, size, size)
	}
	return r
}
