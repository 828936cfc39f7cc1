// Package binding loads binding manifests and binds every variable they
// declare to a native memory region.
//
// A manifest names a library, the size of its data region and its
// variables. Each variable has a Go type, optional attributes refining its
// native layout, an optional converter and an offset into the region:
//
//	version: "1"
//	library: libdemo
//	size: 32
//	variables:
//	  - name: counter
//	    type: int64
//	    attributes: [int32]
//	    init: 7
//	  - name: enabled
//	    type: bool
//	    converter: bool
//	    offset: 8
//	  - name: timeout
//	    type: time.Duration
//	    converter: seconds
//
// Manifests may be YAML or TOML, selected by file extension. Offsets left
// out are assigned in declaration order, aligned to the storage width.
//
// Check resolves a manifest into a Layout and reports problems as
// diagnostics; Bind generates all accessors concurrently and applies the
// initial values.
package binding
