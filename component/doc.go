// Package component defines the contract every output widget satisfies and
// the shortcut registry that resolves short public names to configured
// component instances.
//
// A component translates application values into JSON-serializable wire
// values (Postprocess) and, for some kinds, turns wire values back into
// usable artifacts (Rebuild). Transformations are pure and stateless: a
// component only reads its own configuration, so concurrent calls are safe
// without locking.
//
// The registry is built once at startup from an explicit descriptor table
// (see the outputs package) rather than by dynamic discovery, which keeps
// shortcut resolution deterministic. Resolving an unknown shortcut is a
// setup-time configuration error, never a request-time one.
package component
