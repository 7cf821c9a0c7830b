package outputs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easelkit/easel/component"
)

func TestDefaultsRegistry(t *testing.T) {
	r := Defaults()

	expected := []string{
		"audio", "dataframe", "file", "highlight", "html", "image", "json",
		"key_values", "label", "list", "matrix", "number", "numpy", "pil",
		"plot", "text", "textbox",
	}
	assert.Equal(t, expected, r.Names())
	assert.Same(t, r, Defaults())
}

func TestShortcutEquivalence(t *testing.T) {
	r := Defaults()

	// Resolving a shortcut must match constructing the component with the
	// descriptor's default configuration.
	t.Run("number shortcut declares the number type", func(t *testing.T) {
		c, err := r.Resolve("number")
		require.NoError(t, err)

		out, err := c.(component.Output).Postprocess(3.5)
		require.NoError(t, err)
		assert.Equal(t, "3.5", out)
	})

	t.Run("matrix and list shortcuts declare the array type", func(t *testing.T) {
		for _, name := range []string{"matrix", "list"} {
			c, err := r.Resolve(name)
			require.NoError(t, err)

			out, err := c.(component.Output).Postprocess([]interface{}{1, 2})
			require.NoError(t, err, name)
			assert.Equal(t, &TableValue{Data: [][]interface{}{{1, 2}}}, out, name)
		}
	})

	t.Run("pil shortcut rejects file paths", func(t *testing.T) {
		c, err := r.Resolve("pil")
		require.NoError(t, err)

		_, err = c.(component.Output).Postprocess("/tmp/a.png")
		assert.Error(t, err)
	})

	t.Run("every shortcut resolves to an output", func(t *testing.T) {
		for _, name := range r.Names() {
			c, err := r.Resolve(name)
			require.NoError(t, err, name)
			_, ok := c.(component.Output)
			assert.True(t, ok, name)
		}
	})
}

func TestResolveWithProps(t *testing.T) {
	r := Defaults()

	t.Run("props override defaults", func(t *testing.T) {
		c, err := r.ResolveWith("label", map[string]interface{}{
			"label":           "verdict",
			"num_top_classes": 2,
		})
		require.NoError(t, err)
		assert.Equal(t, "verdict", c.Label())

		out, err := c.(component.Output).Postprocess(map[string]float64{"a": 0.1, "b": 0.3, "c": 0.6})
		require.NoError(t, err)
		assert.Len(t, out.(*LabelValue).Confidences, 2)
	})

	t.Run("unknown prop fails at setup", func(t *testing.T) {
		_, err := r.ResolveWith("text", map[string]interface{}{"font": "mono"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown property "font"`)
	})

	t.Run("unknown shortcut fails at setup", func(t *testing.T) {
		_, err := r.Resolve("imge")
		var unknown *component.UnknownShortcutError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "image", unknown.Suggestion)
	})
}
