package all_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/iconresize/icon"
	_ "github.com/srlehn/iconresize/resize/all"
)

var resizerNames = []string{`bild`, `default`, `gift`, `imaging`, `nfnt`, `rez`, `xdraw`}

func TestAllRegistered(t *testing.T) {
	assert.Equal(t, resizerNames, icon.RegisteredResizerNames())
	for _, name := range resizerNames {
		assert.NotNil(t, icon.GetRegResizerByName(name), name)
	}
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	return m
}

func TestResizersExactSquareSize(t *testing.T) {
	srcs := map[string]*image.NRGBA{
		`downscale non-square`: solid(200, 100, color.NRGBA{R: 200, G: 40, B: 90, A: 255}),
		`upscale`:              solid(24, 20, color.NRGBA{R: 10, G: 120, B: 240, A: 255}),
	}
	for _, name := range resizerNames {
		rsz := icon.GetRegResizerByName(name)
		require.NotNil(t, rsz, name)
		for srcName, src := range srcs {
			for _, side := range icon.TargetSizes() {
				want := image.Point{X: side, Y: side}
				m, err := rsz.Resize(src, want)
				require.NoError(t, err, `%s %s %d`, name, srcName, side)
				require.NotNil(t, m)
				assert.Equal(t, want, m.Bounds().Size(), `%s %s %d`, name, srcName, side)
			}
		}
	}
}

func TestResizersKeepSolidColor(t *testing.T) {
	c := color.NRGBA{R: 200, G: 40, B: 90, A: 255}
	src := solid(200, 100, c)
	for _, name := range resizerNames {
		m, err := icon.GetRegResizerByName(name).Resize(src, image.Point{X: 48, Y: 48})
		require.NoError(t, err, name)
		b := m.Bounds()
		got := color.NRGBAModel.Convert(m.At(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)).(color.NRGBA)
		assert.InDelta(t, c.R, got.R, 3, name)
		assert.InDelta(t, c.G, got.G, 3, name)
		assert.InDelta(t, c.B, got.B, 3, name)
		assert.InDelta(t, c.A, got.A, 3, name)
	}
}

func TestResizersNilImage(t *testing.T) {
	for _, name := range resizerNames {
		_, err := icon.GetRegResizerByName(name).Resize(nil, image.Point{X: 16, Y: 16})
		assert.Error(t, err, name)
	}
}

func TestResizersInvalidSize(t *testing.T) {
	src := solid(8, 8, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	for _, name := range resizerNames {
		rsz := icon.GetRegResizerByName(name)
		for _, size := range []image.Point{{X: 0, Y: 0}, {X: 16, Y: 0}, {X: 0, Y: 16}, {X: -1, Y: -1}, {X: -5, Y: 5}} {
			var (
				m   image.Image
				err error
			)
			require.NotPanics(t, func() { m, err = rsz.Resize(src, size) }, `%s %v`, name, size)
			assert.ErrorIs(t, err, icon.ErrInvalidSize, `%s %v`, name, size)
			assert.Nil(t, m, `%s %v`, name, size)
		}
	}
}

// A black and white stripe pattern with a 2px period shrunk by a
// non-integer factor must blend to grey. Nearest-neighbour sampling
// only picks the original black or white pixels.
func TestResizersAntiAlias(t *testing.T) {
	const srcSide = 100
	src := image.NewNRGBA(image.Rect(0, 0, srcSide, srcSide))
	for y := 0; y < srcSide; y++ {
		for x := 0; x < srcSide; x++ {
			v := uint8(0)
			if x%2 == 0 {
				v = 255
			}
			src.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	for _, name := range resizerNames {
		m, err := icon.GetRegResizerByName(name).Resize(src, image.Point{X: 16, Y: 16})
		require.NoError(t, err, name)
		b := m.Bounds()
		var intermediate, total int
		for y := b.Min.Y + 2; y < b.Max.Y-2; y++ {
			for x := b.Min.X + 2; x < b.Max.X-2; x++ {
				c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
				total++
				if c.R > 64 && c.R < 192 {
					intermediate++
				}
			}
		}
		assert.GreaterOrEqual(t, 10*intermediate, 9*total, `%s: %d of %d pixels blended`, name, intermediate, total)
	}
}
