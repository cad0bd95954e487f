package icon

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/srlehn/iconresize/internal/consts"
	"github.com/srlehn/iconresize/internal/errors"
	"github.com/srlehn/iconresize/internal/logx"
)

var _ logx.LoggerProvider = (*Generator)(nil)

// Generator writes the icon set for the source image found in its directory.
type Generator struct {
	dir         string
	resizer     Resizer
	resizerName string
	encoder     ImageEncoder
	out         io.Writer
	logger      *slog.Logger
}

// NewGenerator applies opts in order. Missing resizers or encoders are
// only reported by CheckCapabilities and Run.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{}
	if err := g.SetOptions(append(opts, setInternalDefaults)...); err != nil {
		return nil, err
	}
	return g, nil
}

// Dir returns the directory searched for the source image and receiving the icons.
func (g *Generator) Dir() string {
	if g == nil {
		return ``
	}
	return g.dir
}

// Logger returns the structured logger, nil if logging is disabled.
func (g *Generator) Logger() *slog.Logger {
	if g == nil {
		return nil
	}
	return g.logger
}

// Resizer returns the configured resizer or looks up the selected name
// (the default resizer if none was chosen) in the registry.
func (g *Generator) Resizer() (Resizer, error) {
	if g == nil {
		return nil, errors.NilReceiver()
	}
	if g.resizer != nil {
		return g.resizer, nil
	}
	name := g.resizerName
	if len(name) == 0 {
		name = consts.ResizerDefaultName
	}
	if rsz := GetRegResizerByName(name); rsz != nil {
		return rsz, nil
	}
	registered := `none`
	if names := RegisteredResizerNames(); len(names) > 0 {
		registered = strings.Join(names, `, `)
	}
	return nil, errors.Errorf(
		`%w: %w: %q (registered: %s); import "%s/resize/all" to register all resizers`,
		consts.ErrMissingCapability, consts.ErrResizerUnavailable, name, registered, consts.ModulePath)
}

// CheckCapabilities fails fast when no resizer or encoder is available.
func (g *Generator) CheckCapabilities() error {
	if g == nil {
		return errors.NilReceiver()
	}
	if _, err := g.Resizer(); err != nil {
		return err
	}
	if g.encoder == nil {
		return errors.Errorf(`%w: no image encoder configured`, consts.ErrMissingCapability)
	}
	return nil
}

// LocateSource returns the name of the first candidate that exists as a
// regular file in the generator directory.
func (g *Generator) LocateSource() (string, error) {
	if g == nil {
		return ``, errors.NilReceiver()
	}
	for _, name := range consts.SourceCandidates {
		fi, err := os.Stat(g.path(name))
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		return name, nil
	}
	return ``, errors.New(consts.ErrSourceNotFound)
}

// LoadAndNormalize decodes the image file and converts it to NRGBA.
// Relative paths are resolved against the generator directory.
func (g *Generator) LoadAndNormalize(path string) (*Image, error) {
	if g == nil {
		return nil, errors.NilReceiver()
	}
	img := NewImageFilename(g.path(path))
	_, err := logx.TimeIt2(img.Normalize, `decoded source image`, g, `file`, img.FileName)
	if err != nil {
		return nil, err
	}
	logx.Debug(`normalized source image`, g,
		`format`, img.Format,
		`bounds`, img.Original.Bounds().Size().String(),
		`alpha`, HasAlpha(img.Original.ColorModel()))
	return img, nil
}

// ResizeAndSave writes img resampled to size×size as icon<size>.png
// and returns the file name.
func (g *Generator) ResizeAndSave(img image.Image, size int) (string, error) {
	if g == nil {
		return ``, errors.NilReceiver()
	}
	if img == nil {
		return ``, errors.NilParam()
	}
	rsz, err := g.Resizer()
	if err != nil {
		return ``, err
	}
	if g.encoder == nil {
		return ``, errors.Errorf(`%w: no image encoder configured`, consts.ErrMissingCapability)
	}
	resized, err := logx.TimeIt2(func() (image.Image, error) {
		return NewImage(img).Resize(rsz, size)
	}, `resized image`, g, `size`, size)
	if err != nil {
		return ``, errors.Kind(consts.ErrEncode, err)
	}
	name := OutputName(size)
	err = logx.TimeIt(func() error { return g.writeImage(name, resized) }, `wrote icon`, g, `file`, name)
	if err != nil {
		return ``, err
	}
	return name, nil
}

// Run locates the source image and writes all icon sizes, printing the
// progress to the configured output.
func (g *Generator) Run() error {
	if g == nil {
		return errors.NilReceiver()
	}
	if err := g.CheckCapabilities(); err != nil {
		logx.Error(`capability check failed`, g, `err`, err)
		return err
	}
	src, err := g.LocateSource()
	if err != nil {
		g.println(consts.MsgSourceNotFound)
		logx.IsErr(err, g, slog.LevelError, `dir`, g.dir)
		return err
	}
	g.printf(consts.MsgUsingSource+"\n", src)
	logx.Info(`selected source image`, g, `file`, src)

	img, err := g.LoadAndNormalize(src)
	if err != nil {
		return logx.Err(err, g, slog.LevelError, `file`, src)
	}
	for _, size := range consts.TargetSizes {
		name, err := g.ResizeAndSave(img, size)
		if err != nil {
			return logx.Err(err, g, slog.LevelError, `size`, size)
		}
		g.printf(consts.MsgCreated+"\n", name, size, size)
	}

	g.println()
	g.println(consts.MsgSuccess)
	g.println(consts.MsgReload)
	return nil
}

// OutputName returns the icon file name for the side length.
func OutputName(size int) string { return fmt.Sprintf(consts.OutputNameFormat, size) }

func (g *Generator) writeImage(name string, img image.Image) error {
	f, err := os.Create(g.path(name))
	if err != nil {
		return errors.Kind(consts.ErrEncode, err)
	}
	if err := g.encoder.Encode(f, img, name); err != nil {
		_ = f.Close()
		return errors.Kind(consts.ErrEncode, err)
	}
	if err := f.Close(); err != nil {
		return errors.Kind(consts.ErrEncode, err)
	}
	return nil
}

func (g *Generator) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(g.dir, name)
}

func (g *Generator) printf(format string, a ...any) {
	if g.out == nil {
		return
	}
	_, _ = fmt.Fprintf(g.out, format, a...)
}

func (g *Generator) println(a ...any) {
	if g.out == nil {
		return
	}
	_, _ = fmt.Fprintln(g.out, a...)
}
