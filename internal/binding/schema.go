package binding

// Manifest is the root of a binding manifest.
type Manifest struct {
	// Version of the manifest schema.
	Version string `yaml:"version,omitempty" toml:"version,omitempty"`

	// Library names the native library; it becomes the owner of every accessor name.
	Library string `yaml:"library" toml:"library"`

	// Size of the data region in bytes. Zero means "just large enough".
	Size int64 `yaml:"size,omitempty" toml:"size,omitempty"`

	Variables []Variable `yaml:"variables" toml:"variables"`
}

// Variable declares one native global variable.
type Variable struct {
	Name string `yaml:"name" toml:"name"`

	// Type is the Go type callers see, e.g. "int64" or "time.Duration".
	Type string `yaml:"type" toml:"type"`

	// Attributes refine the native layout, e.g. [unsigned, int16].
	Attributes StringOrArray `yaml:"attributes,omitempty" toml:"attributes,omitempty"`

	// Converter names a registered converter. When empty the converter
	// registered for Type, if any, is used.
	Converter string `yaml:"converter,omitempty" toml:"converter,omitempty"`

	// Offset into the data region. Nil means "after the previous variable".
	Offset *int64 `yaml:"offset,omitempty" toml:"offset,omitempty"`

	// Init is written once the variable is bound.
	Init any `yaml:"init,omitempty" toml:"init,omitempty"`
}

// StringOrArray holds one or more strings.
// YAML and TOML formats supported:
//   - Single string: "unsigned"
//   - Array: [unsigned, int16]
type StringOrArray []string
