// Package outputs provides the concrete output components: Textbox, Label,
// Image, KeyValues, HighlightedText, Audio, JSON, HTML, File and Dataframe,
// plus the fixed shortcut descriptor table that seeds a component.Registry.
//
// Components accepting a type discriminator support "auto", which resolves
// the value's concrete representation through an ordered list of shape
// predicates; the first match wins and an unmatched value is an error
// naming the accepted shapes. An explicitly declared type dispatches
// directly and a mismatched value shape is likewise an error.
package outputs
