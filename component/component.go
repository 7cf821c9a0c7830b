package component

// Component is the base contract every widget satisfies: configuration
// capture plus the template-context export consumed by the rendering layer.
type Component interface {
	// Kind returns the component's stable kind identifier (e.g. "image").
	Kind() string

	// Label returns the optional display name.
	Label() string

	// TemplateContext returns the subset of configuration a downstream
	// renderer needs. Implementations extend the base mapping with their
	// own fields and never remove base fields.
	TemplateContext() map[string]interface{}
}

// Output is a component that transforms application values into
// JSON-serializable wire values.
type Output interface {
	Component

	// Postprocess converts an application value into a wire value.
	// The call is pure: it reads only the component's configuration.
	Postprocess(value interface{}) (interface{}, error)
}

// Rebuilder is implemented by components that can turn a wire value back
// into a usable application-side artifact. Rebuild may persist a file under
// dir as a side effect; ownership of that file passes to the caller.
type Rebuilder interface {
	// Rebuild converts a wire value into a usable value. When it writes a
	// file, the returned value is the filename relative to dir.
	Rebuild(dir string, data interface{}) (interface{}, error)
}

// Base provides the shared configuration capture for concrete components.
// Embed it by value; it is immutable after construction.
type Base struct {
	kind  string
	label string
}

// NewBase creates the shared component core.
func NewBase(kind, label string) Base {
	return Base{kind: kind, label: label}
}

// Kind returns the component kind identifier.
func (b Base) Kind() string { return b.kind }

// Label returns the display name, empty when unset.
func (b Base) Label() string { return b.label }

// TemplateContext returns the base rendering context. Subclass components
// copy this map and add their own fields.
func (b Base) TemplateContext() map[string]interface{} {
	return map[string]interface{}{
		"label": b.label,
	}
}
