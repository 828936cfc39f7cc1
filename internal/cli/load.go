package cli

import (
	"fmt"
	"io"

	"accessor-generator/accessor"
	"accessor-generator/internal/binding"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/primitive"
)

// CheckResult is the YAML form of a checked manifest.
type CheckResult struct {
	Valid       bool             `yaml:"valid"`
	Library     string           `yaml:"library"`
	Size        int64            `yaml:"size"`
	Variables   int              `yaml:"variables"`
	Diagnostics []DiagnosticView `yaml:"diagnostics,omitempty"`
}

// DiagnosticView is one diagnostic as printed by the CLI.
type DiagnosticView struct {
	Severity string `yaml:"severity"`
	Code     string `yaml:"code"`
	Variable string `yaml:"variable,omitempty"`
	Field    string `yaml:"field,omitempty"`
	Message  string `yaml:"message"`
}

// checked is a loaded manifest together with its check results.
type checked struct {
	path     string
	manifest *binding.Manifest
	layout   *binding.Layout
	diags    *diagnostic.Diagnostics
}

func loadAndCheck(path string, env binding.Env) (*checked, error) {
	m, err := binding.LoadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading manifest", err)
	}

	layout, diags := binding.Check(m, env)

	return &checked{path: path, manifest: m, layout: layout, diags: diags}, nil
}

func (c *checked) result() CheckResult {
	res := CheckResult{
		Valid:   c.diags.IsValid(),
		Library: c.manifest.Library,
	}

	if c.layout != nil {
		res.Size = c.layout.Size
		res.Variables = len(c.layout.Bindings)
	}

	for _, d := range c.diags.All() {
		res.Diagnostics = append(res.Diagnostics, DiagnosticView{
			Severity: d.Severity.String(),
			Code:     d.Code,
			Variable: d.Variable,
			Field:    d.Field,
			Message:  d.Message,
		})
	}

	return res
}

// writeDiagnostics prints one line per diagnostic, errors first.
func writeDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%-7s %s\n", d.Severity, d)
	}
}

// failure reports a manifest that did not pass the check.
func (c *checked) failure(f *OutputFormatter) error {
	if f.IsYAML() {
		if err := f.YAML(c.result()); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(f.Writer, "✗ %s: %d error(s)\n", c.path, c.diags.Count(diagnostic.DiagnosticError))
		writeDiagnostics(f.Writer, c.diags)
	}

	return WrapExitError(ExitFailure, "invalid manifest", c.diags.Error())
}

// scratch allocates a region for the layout and an Env whose accessors write into it.
func scratch(layout *binding.Layout, env binding.Env, config accessor.Config) (*primitive.Buffer, binding.Env) {
	buf := primitive.NewBuffer(int(max(layout.Size, 1)))

	config.Owner = layout.Library
	config.Memory = buf.At
	config.Logger = env.Logger
	env.Synthesizer = accessor.NewSynthesizer(config)

	return buf, env
}

func newEnv(opts *RootOptions, stderr io.Writer) binding.Env {
	env := binding.DefaultEnv()
	env.Logger = newLogger(opts, stderr)

	return env
}
