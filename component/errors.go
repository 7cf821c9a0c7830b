package component

import (
	"fmt"
	"strings"
)

// TypeError reports a declared type discriminator that is not one of the
// component's documented values. It fails immediately and is never retried.
type TypeError struct {
	Component string
	Declared  string
	Valid     []string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: unknown type %q, expected one of: %s",
		e.Component, e.Declared, strings.Join(e.Valid, ", "))
}

// ShapeError reports a value whose runtime shape matched none of the
// component's accepted shapes (or mismatched an explicitly declared type).
type ShapeError struct {
	Component string
	Value     interface{}
	Accepted  []string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: unsupported value shape %T, accepted shapes: %s",
		e.Component, e.Value, strings.Join(e.Accepted, ", "))
}

// UnknownShortcutError reports a shortcut name absent from the registry.
// Suggestion carries the nearest registered name when one is close enough.
type UnknownShortcutError struct {
	Name       string
	Suggestion string
}

func (e *UnknownShortcutError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown shortcut %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown shortcut %q", e.Name)
}
