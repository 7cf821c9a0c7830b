package outputs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easelkit/easel/component"
)

func TestLabelScalar(t *testing.T) {
	l, err := NewLabel(LabelOptions{})
	require.NoError(t, err)

	t.Run("string category", func(t *testing.T) {
		out, err := l.Postprocess("dog")
		require.NoError(t, err)
		assert.Equal(t, &LabelValue{Label: "dog"}, out)
	})

	t.Run("numeric category is stringified", func(t *testing.T) {
		out, err := l.Postprocess(7)
		require.NoError(t, err)
		assert.Equal(t, &LabelValue{Label: "7"}, out)
	})
}

func TestLabelConfidences(t *testing.T) {
	t.Run("sorted descending with top class first", func(t *testing.T) {
		l, err := NewLabel(LabelOptions{})
		require.NoError(t, err)

		out, err := l.Postprocess(map[string]float64{"cat": 0.2, "dog": 0.7, "bird": 0.1})
		require.NoError(t, err)

		lv := out.(*LabelValue)
		assert.Equal(t, "dog", lv.Label)
		assert.Equal(t, []Confidence{
			{Label: "dog", Confidence: 0.7},
			{Label: "cat", Confidence: 0.2},
			{Label: "bird", Confidence: 0.1},
		}, lv.Confidences)
	})

	t.Run("truncates to num_top_classes", func(t *testing.T) {
		l, err := NewLabel(LabelOptions{NumTopClasses: 2})
		require.NoError(t, err)

		out, err := l.Postprocess(map[string]float64{"cat": 0.2, "dog": 0.7, "bird": 0.1})
		require.NoError(t, err)

		lv := out.(*LabelValue)
		assert.Equal(t, "dog", lv.Label)
		assert.Equal(t, []Confidence{
			{Label: "dog", Confidence: 0.7},
			{Label: "cat", Confidence: 0.2},
		}, lv.Confidences)
	})

	t.Run("ties order by category name", func(t *testing.T) {
		l, err := NewLabel(LabelOptions{})
		require.NoError(t, err)

		out, err := l.Postprocess(map[string]float64{"b": 0.5, "a": 0.5, "c": 0.5})
		require.NoError(t, err)

		lv := out.(*LabelValue)
		assert.Equal(t, "a", lv.Label)
		assert.Equal(t, "a", lv.Confidences[0].Label)
		assert.Equal(t, "b", lv.Confidences[1].Label)
		assert.Equal(t, "c", lv.Confidences[2].Label)
	})

	t.Run("accepts generic maps with numeric scores", func(t *testing.T) {
		l, err := NewLabel(LabelOptions{Type: LabelConfidences})
		require.NoError(t, err)

		out, err := l.Postprocess(map[string]interface{}{"yes": 0.9, "no": 1})
		require.NoError(t, err)
		assert.Equal(t, "no", out.(*LabelValue).Label)
	})
}

func TestLabelShapeErrors(t *testing.T) {
	t.Run("unsupported value shape", func(t *testing.T) {
		l, err := NewLabel(LabelOptions{})
		require.NoError(t, err)

		_, err = l.Postprocess([]string{"dog"})
		var shapeErr *component.ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Contains(t, err.Error(), "map of category to score")
	})

	t.Run("declared label type rejects maps", func(t *testing.T) {
		l, err := NewLabel(LabelOptions{Type: LabelPlain})
		require.NoError(t, err)

		_, err = l.Postprocess(map[string]float64{"dog": 0.7})
		assert.Error(t, err)
	})

	t.Run("declared confidences type rejects scalars", func(t *testing.T) {
		l, err := NewLabel(LabelOptions{Type: LabelConfidences})
		require.NoError(t, err)

		_, err = l.Postprocess("dog")
		assert.Error(t, err)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := NewLabel(LabelOptions{Type: "ranking"})
		var typeErr *component.TypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, []string{"auto", "label", "confidences"}, typeErr.Valid)
	})
}

func TestLabelRebuildIsIdentity(t *testing.T) {
	l, err := NewLabel(LabelOptions{})
	require.NoError(t, err)

	wire := map[string]interface{}{"label": "dog"}
	out, err := l.Rebuild(t.TempDir(), wire)
	require.NoError(t, err)
	assert.Equal(t, wire, out)
}
