package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/boxwhisker"
	"github.com/vdobler/boxwhisker/dataset"
	"github.com/vdobler/boxwhisker/scene"
)

func TestDrawElements(t *testing.T) {
	theme := boxwhisker.Theme{
		Styles: map[string]boxwhisker.Style{
			"red":  {Fill: "#ff0000"},
			"blue": {Fill: "#0000ff"},
		},
		Font:     "Helvetica",
		FontSize: 10,
		Text:     "black",
	}
	elems := []scene.Element{
		{
			Layer:    "red",
			Origin:   [2]float64{10, 10},
			Geometry: scene.Geometry{Kind: scene.Rect, X1: 0, Y1: 0, X2: 50, Y2: 40},
			Opacity:  1,
		},
		{
			Layer:    "blue",
			Origin:   [2]float64{100, 10},
			Geometry: scene.Geometry{Kind: scene.Rect, X1: 0, Y1: 0, X2: 50, Y2: 40},
			Opacity:  0,
		},
		{
			Layer:    "blue",
			Origin:   [2]float64{100, 60},
			Geometry: scene.Geometry{Kind: scene.Circle, X1: 20, Y1: 20, R: 10},
			Opacity:  1,
		},
		{
			Layer:    "text",
			Geometry: scene.Geometry{Kind: scene.Text, X1: 150, Y1: 20, DX: -6, Anchor: scene.AnchorEnd, Text: "940"},
			Opacity:  1,
		},
	}

	c := vgimg.New(vg.Points(200), vg.Points(100))
	p := &Painter{Canvas: c, Height: vg.Points(100), Theme: theme}
	require.NoError(t, p.Draw(elems))

	img := c.Image()
	scale := float64(img.Bounds().Dx()) / 200
	at := func(x, y float64) (r, g, b uint32) {
		r, g, b, _ = img.At(int(x*scale), int(y*scale)).RGBA()
		return r >> 8, g >> 8, b >> 8
	}

	// Top left is at the top left.
	r, g, b := at(35, 30)
	assert.True(t, r > 200 && g < 60 && b < 60, "red box: got %d %d %d", r, g, b)

	// Invisible elements are skipped.
	r, g, b = at(125, 30)
	assert.False(t, b > 200 && r < 60 && g < 60, "hidden box: got %d %d %d", r, g, b)

	r, g, b = at(120, 80)
	assert.True(t, b > 200 && r < 60 && g < 60, "circle: got %d %d %d", r, g, b)
}

func TestUnknownKind(t *testing.T) {
	c := vgimg.New(vg.Points(10), vg.Points(10))
	p := &Painter{Canvas: c, Height: vg.Points(10), Theme: boxwhisker.DefaultTheme}
	err := p.Draw([]scene.Element{{Opacity: 1, Geometry: scene.Geometry{Kind: scene.Kind(42)}}})
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	groups, err := dataset.Playground().Groups()
	require.NoError(t, err)
	plt, err := boxwhisker.New(boxwhisker.DefaultOptions())
	require.NoError(t, err)
	frame, err := plt.Update(groups)
	require.NoError(t, err)
	plt.Scene().Settle()

	dir := t.TempDir()
	for _, name := range []string{"plot.png", "plot.svg"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, Save(fn, frame, plt.Options(), plt.Scene().Elements(), boxwhisker.DefaultTheme))
		info, err := os.Stat(fn)
		require.NoError(t, err)
		assert.True(t, info.Size() > 0, name)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "plot.svg"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(svg), "<svg"))

	assert.Error(t, Save(filepath.Join(dir, "plot.gif"), frame, plt.Options(), nil, boxwhisker.DefaultTheme))
}
