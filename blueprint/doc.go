// Package blueprint parses declarative output manifests and instantiates
// their components through a shortcut registry.
//
// A manifest lists output entries in one of three forms:
//
//	outputs:
//	  - image                    # bare shortcut, default configuration
//	  - use: label               # explicit form
//	    name: verdict
//	    props: {num_top_classes: 3}
//	  - textbox#greeting:        # single-key sugar, "shortcut#name"
//	      type: str
//
// Manifests may be YAML, TOML or JSON; ParseFile picks the codec from the
// file extension. Unknown shortcuts and unknown properties fail at parse or
// setup time, never at request time.
package blueprint
