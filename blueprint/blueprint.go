package blueprint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/easelkit/easel/component"
)

// Document is a parsed outputs manifest.
type Document struct {
	Title   string
	Layout  string
	Outputs []Entry
}

// Entry declares one output component: the shortcut to resolve, an optional
// renderer-facing name, and properties overriding the shortcut defaults.
type Entry struct {
	Use   string
	Name  string
	Props map[string]interface{}
}

type rawDocument struct {
	Title   string        `yaml:"title" toml:"title" json:"title"`
	Layout  string        `yaml:"layout" toml:"layout" json:"layout"`
	Outputs []interface{} `yaml:"outputs" toml:"outputs" json:"outputs"`
}

// Parse decodes a manifest in the given format ("yaml", "toml" or "json").
func Parse(data []byte, format string) (*Document, error) {
	var raw rawDocument
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML manifest: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML manifest: %w", err)
		}
	case "json":
		if err := sonic.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown manifest format %q, expected one of: yaml, toml, json", format)
	}

	doc := &Document{Title: raw.Title, Layout: raw.Layout}
	if doc.Layout == "" {
		doc.Layout = "vertical"
	}

	for i, item := range raw.Outputs {
		entry, err := normalizeEntry(item)
		if err != nil {
			return nil, fmt.Errorf("outputs[%d]: %w", i, err)
		}
		doc.Outputs = append(doc.Outputs, entry)
	}
	return doc, nil
}

// ParseFile parses a manifest file, choosing the codec by extension.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, format)
}

func formatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	case ".json":
		return "json", nil
	default:
		return "", fmt.Errorf("unrecognized manifest extension %q", filepath.Ext(path))
	}
}

// normalizeEntry expands the three entry forms into a uniform Entry.
func normalizeEntry(item interface{}) (Entry, error) {
	switch v := item.(type) {
	case string:
		return Entry{Use: v}, nil

	case map[string]interface{}:
		if _, ok := v["use"]; ok {
			return explicitEntry(v)
		}
		return sugarEntry(v)

	default:
		return Entry{}, fmt.Errorf("entry must be a shortcut string or a mapping, got %T", item)
	}
}

func explicitEntry(v map[string]interface{}) (Entry, error) {
	var entry Entry
	for key, val := range v {
		switch key {
		case "use":
			s, ok := val.(string)
			if !ok {
				return Entry{}, fmt.Errorf("use must be a string, got %T", val)
			}
			entry.Use = s
		case "name":
			s, ok := val.(string)
			if !ok {
				return Entry{}, fmt.Errorf("name must be a string, got %T", val)
			}
			entry.Name = s
		case "props":
			m, ok := val.(map[string]interface{})
			if !ok {
				return Entry{}, fmt.Errorf("props must be a mapping, got %T", val)
			}
			entry.Props = m
		default:
			return Entry{}, fmt.Errorf("unknown entry key %q", key)
		}
	}
	return entry, nil
}

// sugarEntry expands the single-key "shortcut#name: props" form.
func sugarEntry(v map[string]interface{}) (Entry, error) {
	if len(v) != 1 {
		return Entry{}, fmt.Errorf("shorthand entry must have exactly one key, got %d", len(v))
	}
	for key, val := range v {
		var entry Entry
		parts := strings.SplitN(key, "#", 2)
		entry.Use = parts[0]
		if len(parts) > 1 {
			entry.Name = parts[1]
		}

		switch props := val.(type) {
		case nil:
		case map[string]interface{}:
			entry.Props = props
		default:
			return Entry{}, fmt.Errorf("props for %q must be a mapping, got %T", key, val)
		}
		return entry, nil
	}
	return Entry{}, fmt.Errorf("empty entry")
}

// Instantiate resolves every entry against the registry. Unknown shortcuts
// and unknown properties are setup-time errors.
func (d *Document) Instantiate(r *component.Registry) ([]component.Component, error) {
	components := make([]component.Component, 0, len(d.Outputs))
	for i, entry := range d.Outputs {
		c, err := r.ResolveWith(entry.Use, entry.Props)
		if err != nil {
			return nil, fmt.Errorf("outputs[%d]: %w", i, err)
		}
		components = append(components, c)
	}
	return components, nil
}

// UISpec resolves the document and assembles the rendering spec consumed by
// the external renderer: each component's kind, name and template context.
func (d *Document) UISpec(r *component.Registry) (map[string]interface{}, error) {
	components, err := d.Instantiate(r)
	if err != nil {
		return nil, err
	}

	specs := make([]interface{}, 0, len(components))
	for i, c := range components {
		spec := map[string]interface{}{
			"type":  c.Kind(),
			"props": c.TemplateContext(),
		}
		if name := d.Outputs[i].Name; name != "" {
			spec["name"] = name
		}
		specs = append(specs, spec)
	}

	return map[string]interface{}{
		"type":       "outputs",
		"title":      d.Title,
		"layout":     d.Layout,
		"components": specs,
	}, nil
}
