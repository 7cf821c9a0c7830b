package outputs

import (
	"image"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/easelkit/easel/component"
	"github.com/easelkit/easel/media"
)

func testArray() *media.Array {
	a := media.NewArray(3, 4, 3)
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			a.Set(y, x, 0, uint8(40*y))
			a.Set(y, x, 1, uint8(60*x))
			a.Set(y, x, 2, 9)
		}
	}
	return a
}

func TestImagePostprocess(t *testing.T) {
	t.Run("auto matches explicit numpy", func(t *testing.T) {
		auto, err := NewImage(ImageOptions{})
		require.NoError(t, err)
		explicit, err := NewImage(ImageOptions{Type: ImageNumpy})
		require.NoError(t, err)

		arr := testArray()
		fromAuto, err := auto.Postprocess(arr)
		require.NoError(t, err)
		fromExplicit, err := explicit.Postprocess(arr)
		require.NoError(t, err)
		assert.Equal(t, fromExplicit, fromAuto)
		assert.True(t, strings.HasPrefix(fromAuto.(string), "data:image/png;base64,"))
	})

	t.Run("pil value encodes via array form", func(t *testing.T) {
		c, err := NewImage(ImageOptions{Type: ImagePIL})
		require.NoError(t, err)

		out, err := c.Postprocess(testArray().Image())
		require.NoError(t, err)

		arrOut, err := explicitNumpyImage(t).Postprocess(testArray())
		require.NoError(t, err)
		assert.Equal(t, arrOut, out)
	})

	t.Run("file value reads from disk", func(t *testing.T) {
		c, err := NewImage(ImageOptions{Type: ImageFile})
		require.NoError(t, err)

		path := writeTestPNG(t)
		out, err := c.Postprocess(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.(string), "data:image/png;base64,"))
	})

	t.Run("missing file propagates os error", func(t *testing.T) {
		c, err := NewImage(ImageOptions{Type: ImageFile})
		require.NoError(t, err)

		_, err = c.Postprocess(filepath.Join(t.TempDir(), "nope.png"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("plot value renders to png", func(t *testing.T) {
		c, err := NewImage(ImageOptions{Type: ImagePlot})
		require.NoError(t, err)

		p := plot.New()
		line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 1}, {X: 1, Y: 0}})
		require.NoError(t, err)
		p.Add(line)

		out, err := c.Postprocess(p)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.(string), "data:image/png;base64,"))
	})

	t.Run("auto rejects unmatched shapes", func(t *testing.T) {
		c, err := NewImage(ImageOptions{})
		require.NoError(t, err)

		_, err = c.Postprocess(12345)
		var shapeErr *component.ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Contains(t, err.Error(), "pixel array")
	})

	t.Run("explicit type rejects mismatched shape", func(t *testing.T) {
		c, err := NewImage(ImageOptions{Type: ImageNumpy})
		require.NoError(t, err)

		_, err = c.Postprocess("not-an-array.png")
		assert.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := NewImage(ImageOptions{Type: "bitmap"})
		var typeErr *component.TypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, []string{"auto", "numpy", "pil", "file", "plot"}, typeErr.Valid)
	})
}

func explicitNumpyImage(t *testing.T) *Image {
	c, err := NewImage(ImageOptions{Type: ImageNumpy})
	require.NoError(t, err)
	return c
}

func writeTestPNG(t *testing.T) string {
	t.Helper()
	c, err := NewImage(ImageOptions{})
	require.NoError(t, err)

	encoded, err := c.Postprocess(testArray())
	require.NoError(t, err)

	dir := t.TempDir()
	name, err := c.Rebuild(dir, encoded)
	require.NoError(t, err)
	return filepath.Join(dir, name.(string))
}

func TestImageRebuild(t *testing.T) {
	t.Run("round trip preserves pixels", func(t *testing.T) {
		c, err := NewImage(ImageOptions{})
		require.NoError(t, err)

		arr := testArray()
		encoded, err := c.Postprocess(arr)
		require.NoError(t, err)

		dir := t.TempDir()
		name, err := c.Rebuild(dir, encoded)
		require.NoError(t, err)

		filename := name.(string)
		assert.Regexp(t, regexp.MustCompile(`^output_\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}\.png$`), filename)

		f, err := os.Open(filepath.Join(dir, filename))
		require.NoError(t, err)
		defer f.Close()

		img, _, err := image.Decode(f)
		require.NoError(t, err)
		assert.Equal(t, arr.Pix, media.ArrayFromImage(img).Pix)
	})

	t.Run("filename token adds uniqueness suffix", func(t *testing.T) {
		c, err := NewImage(ImageOptions{FilenameToken: func() string { return "req-7" }})
		require.NoError(t, err)

		encoded, err := c.Postprocess(testArray())
		require.NoError(t, err)

		name, err := c.Rebuild(t.TempDir(), encoded)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^output_.*_req-7\.png$`), name.(string))
	})

	t.Run("uuid token yields distinct names", func(t *testing.T) {
		assert.NotEqual(t, UUIDToken(), UUIDToken())
	})

	t.Run("rejects non-string wire value", func(t *testing.T) {
		c, err := NewImage(ImageOptions{})
		require.NoError(t, err)

		_, err = c.Rebuild(t.TempDir(), 42)
		var shapeErr *component.ShapeError
		assert.ErrorAs(t, err, &shapeErr)
	})

	t.Run("undecodable payload fails", func(t *testing.T) {
		c, err := NewImage(ImageOptions{})
		require.NoError(t, err)

		_, err = c.Rebuild(t.TempDir(), "data:image/png;base64,AAAA")
		assert.Error(t, err)
	})

	t.Run("failed rebuild leaves no file behind", func(t *testing.T) {
		c, err := NewImage(ImageOptions{})
		require.NoError(t, err)

		dir := t.TempDir()
		_, err = c.Rebuild(dir, "data:image/png;base64,AAAA")
		require.Error(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestImageDeprecatedPlotFlag(t *testing.T) {
	c, err := NewImage(ImageOptions{Plot: true})
	require.NoError(t, err)

	// The flag is normalized away: plot values are accepted directly.
	p := plot.New()
	out, err := c.Postprocess(p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.(string), "data:image/png;base64,"))

	// And non-plot values now mismatch.
	_, err = c.Postprocess(testArray())
	assert.Error(t, err)
}
