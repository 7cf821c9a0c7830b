package component

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance bounds how far a typo may be from a registered
// shortcut before suggestions are suppressed.
const maxSuggestionDistance = 2

// Constructor builds a component from a merged property map. Unknown
// property keys are a setup-time error.
type Constructor func(props map[string]interface{}) (Component, error)

// Descriptor declares one shortcut entry: a public name bound to a component
// kind, its default properties, and its constructor. Resolving the shortcut
// is equivalent to calling New with Defaults.
type Descriptor struct {
	Name     string
	Kind     string
	Defaults map[string]interface{}
	New      Constructor
}

// Registry maps shortcut names to component descriptors. It is populated at
// process startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	entries map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Descriptor)}
}

// Register adds a descriptor. Shortcut names are unique across the whole
// registry; a duplicate or incomplete descriptor is a setup-time error.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("shortcut name cannot be empty")
	}
	if d.New == nil {
		return fmt.Errorf("shortcut %q has no constructor", d.Name)
	}
	if _, exists := r.entries[d.Name]; exists {
		return fmt.Errorf("shortcut %q already registered", d.Name)
	}
	r.entries[d.Name] = d
	return nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.entries[name]
	return d, ok
}

// Resolve constructs the component bound to a shortcut name using its
// default properties.
func (r *Registry) Resolve(name string) (Component, error) {
	return r.ResolveWith(name, nil)
}

// ResolveWith constructs the component bound to a shortcut name with props
// overriding the descriptor defaults key by key.
func (r *Registry) ResolveWith(name string, props map[string]interface{}) (Component, error) {
	d, ok := r.entries[name]
	if !ok {
		return nil, &UnknownShortcutError{Name: name, Suggestion: r.nearest(name)}
	}

	merged := make(map[string]interface{}, len(d.Defaults)+len(props))
	for k, v := range d.Defaults {
		merged[k] = v
	}
	for k, v := range props {
		merged[k] = v
	}
	return d.New(merged)
}

// Names returns all registered shortcut names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered shortcuts.
func (r *Registry) Len() int { return len(r.entries) }

// nearest finds the closest registered name within the suggestion bound.
func (r *Registry) nearest(name string) string {
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, candidate := range r.Names() {
		dist := levenshtein.ComputeDistance(name, candidate)
		if dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best
}
