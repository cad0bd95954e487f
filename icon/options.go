package icon

import (
	"io"
	"log/slog"
	"os"

	"github.com/srlehn/iconresize/internal/errors"
)

// Option configures a Generator.
type Option interface {
	ApplyOption(g *Generator) error
}

var _ Option = (OptFunc)(nil)

// OptFunc adapts a function to an Option.
type OptFunc func(*Generator) error

func (o OptFunc) ApplyOption(g *Generator) error { return o(g) }

var _ Option = (Options)(nil)

// Options applies all contained options in order.
type Options []Option

func (o Options) ApplyOption(g *Generator) error { return g.SetOptions([]Option(o)...) }

// SetOptions applies opts in order, nil options are skipped.
func (g *Generator) SetOptions(opts ...Option) error {
	if g == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(g); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetDir sets the directory searched for the source image and receiving the icons.
func SetDir(dir string) Option {
	return OptFunc(func(g *Generator) error { g.dir = dir; return nil })
}

// SetResizer enforces rsz and overrides an earlier SetResizerName.
func SetResizer(rsz Resizer) Option {
	return OptFunc(func(g *Generator) error { g.resizer = rsz; g.resizerName = ``; return nil })
}

// SetResizerName selects a registered resizer, see RegisterResizer.
// The lookup happens when the generator checks its capabilities.
func SetResizerName(name string) Option {
	return OptFunc(func(g *Generator) error { g.resizerName = name; g.resizer = nil; return nil })
}

// SetEncoder sets the encoder of the icon files.
func SetEncoder(enc ImageEncoder) Option {
	return OptFunc(func(g *Generator) error { g.encoder = enc; return nil })
}

// SetOutput sets the writer for the console status lines.
func SetOutput(w io.Writer) Option {
	return OptFunc(func(g *Generator) error { g.out = w; return nil })
}

// SetSLogger logs to h, slog.Default() for a nil h. Logging is off unless enabled.
func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(g *Generator) error {
		if enable {
			if h == nil {
				g.logger = slog.Default()
			} else {
				g.logger = slog.New(h)
			}
		} else {
			g.logger = nil
		}
		return nil
	})
}

var setInternalDefaults Option = OptFunc(func(g *Generator) error {
	if len(g.dir) == 0 {
		g.dir = `.`
	}
	if g.out == nil {
		g.out = os.Stdout
	}
	return nil
})
