package outputs

import (
	"sync"

	"github.com/easelkit/easel/component"
)

// Descriptors returns the fixed shortcut table for every concrete output
// component. The table is enumerated explicitly so registry contents never
// depend on package initialization order.
func Descriptors() []component.Descriptor {
	return []component.Descriptor{
		{Name: "text", Kind: "textbox", Defaults: map[string]interface{}{"type": TextString}, New: newTextboxFromProps},
		{Name: "textbox", Kind: "textbox", Defaults: map[string]interface{}{"type": TextString}, New: newTextboxFromProps},
		{Name: "number", Kind: "textbox", Defaults: map[string]interface{}{"type": TextNumber}, New: newTextboxFromProps},

		{Name: "label", Kind: "label", New: newLabelFromProps},

		{Name: "image", Kind: "image", New: newImageFromProps},
		{Name: "plot", Kind: "image", Defaults: map[string]interface{}{"type": ImagePlot}, New: newImageFromProps},
		{Name: "pil", Kind: "image", Defaults: map[string]interface{}{"type": ImagePIL}, New: newImageFromProps},

		{Name: "key_values", Kind: "key_values", New: newKeyValuesFromProps},
		{Name: "highlight", Kind: "highlight", New: newHighlightedTextFromProps},
		{Name: "audio", Kind: "audio", New: newAudioFromProps},
		{Name: "json", Kind: "json", New: newJSONFromProps},
		{Name: "html", Kind: "html", New: newHTMLFromProps},
		{Name: "file", Kind: "file", New: newFileFromProps},

		{Name: "dataframe", Kind: "dataframe", New: newDataframeFromProps},
		{Name: "numpy", Kind: "dataframe", Defaults: map[string]interface{}{"type": FrameNumpy}, New: newDataframeFromProps},
		{Name: "matrix", Kind: "dataframe", Defaults: map[string]interface{}{"type": FrameArray}, New: newDataframeFromProps},
		{Name: "list", Kind: "dataframe", Defaults: map[string]interface{}{"type": FrameArray}, New: newDataframeFromProps},
	}
}

// Register adds every descriptor to the given registry.
func Register(r *component.Registry) error {
	for _, d := range Descriptors() {
		if err := r.Register(d); err != nil {
			return err
		}
	}
	return nil
}

var (
	defaultRegistry     *component.Registry
	defaultRegistryOnce sync.Once
)

// Defaults returns the process-wide registry holding every built-in
// shortcut. It is built once and read-only afterwards.
func Defaults() *component.Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = component.NewRegistry()
		if err := Register(defaultRegistry); err != nil {
			// The table is fixed; a failure here is a programming error.
			panic(err)
		}
	})
	return defaultRegistry
}
