package binding

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"slices"

	"accessor-generator/accessor"
	"accessor-generator/converter"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/match"
	"accessor-generator/options"
	"accessor-generator/primitive"
	"accessor-generator/utils"
)

const maxSuggestions = 3

// Env is what manifests are checked and bound against.
type Env struct {
	Types       *TypeRegistry
	Converters  *converter.Registry
	Synthesizer *accessor.Synthesizer
	Logger      *slog.Logger
}

// DefaultEnv returns an Env with the built-in types and converters
// and a synthesizer writing through the Direct memory view.
func DefaultEnv() Env {
	return Env{
		Types:       NewTypeRegistry(),
		Converters:  converter.Defaults(),
		Synthesizer: accessor.NewSynthesizer(accessor.DefaultConfig()),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (e Env) withDefaults() Env {
	def := Env{}
	if e.Types == nil || e.Converters == nil || e.Synthesizer == nil || e.Logger == nil {
		def = DefaultEnv()
	}

	if e.Types == nil {
		e.Types = def.Types
	}

	if e.Converters == nil {
		e.Converters = def.Converters
	}

	if e.Synthesizer == nil {
		e.Synthesizer = def.Synthesizer
	}

	if e.Logger == nil {
		e.Logger = def.Logger
	}

	return e
}

// Binding is a manifest variable resolved against an Env.
type Binding struct {
	Name       string
	Logical    reflect.Type
	Attributes options.AttributeEnum
	Converter  string
	Converters converter.Pair
	Kind       primitive.KindEnum
	Size       int64
	Offset     int64
	Coercion   primitive.CoercionEnum
	Init       utils.Option[any]
}

// End returns the offset just past the variable's storage.
func (b *Binding) End() int64 { return b.Offset + b.Size }

// Layout is a checked manifest: every variable resolved and placed.
type Layout struct {
	Library  string
	Size     int64
	Bindings []Binding
}

// Lookup returns the binding of the named variable.
func (l *Layout) Lookup(name string) (*Binding, bool) {
	for i := range l.Bindings {
		if l.Bindings[i].Name == name {
			return &l.Bindings[i], true
		}
	}

	return nil, false
}

// Pin returns a copy of m with the region size and every variable offset
// taken from the layout, so reordering the variables no longer moves them.
func (l *Layout) Pin(m *Manifest) *Manifest {
	out := *m
	out.Size = l.Size
	out.Variables = slices.Clone(m.Variables)

	for i := range out.Variables {
		v := &out.Variables[i]
		if b, ok := l.Lookup(v.Name); ok {
			offset := b.Offset
			v.Offset = &offset
		}
	}

	return &out
}

// Check resolves every variable of a manifest and validates the layout.
// Variables with errors are left out of the returned layout.
func Check(m *Manifest, env Env) (*Layout, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}
	if m == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return nil, res
	}

	env = env.withDefaults()

	if m.Size < 0 {
		res.AddError("invalid_size", fmt.Sprintf("region size %d is negative", m.Size), "", "size")
		return nil, res
	}

	layout := &Layout{Library: m.Library, Size: m.Size}
	seen := map[string]struct{}{}

	var next int64

	for i := range m.Variables {
		v := &m.Variables[i]

		if v.Name == "" {
			res.AddError("missing_name", fmt.Sprintf("variable #%d has no name", i+1), "", "name")
			continue
		}

		if _, ok := seen[v.Name]; ok {
			res.AddError("duplicate_variable", fmt.Sprintf("duplicate variable %q", v.Name), v.Name, "name")
			continue
		}

		seen[v.Name] = struct{}{}

		b, ok := resolveVariable(res, m, v, env)
		if !ok {
			continue
		}

		if v.Offset != nil {
			b.Offset = *v.Offset
		} else {
			b.Offset = utils.AlignUp(next, b.Size)
		}

		if b.Offset < 0 {
			res.AddError("invalid_offset", fmt.Sprintf("offset %d is negative", b.Offset), v.Name, "offset")
			continue
		}

		if b.Offset%b.Size != 0 {
			res.AddInfo("unaligned", fmt.Sprintf("offset %d is not a multiple of %d", b.Offset, b.Size), v.Name, "offset")
		}

		next = max(next, b.End())
		layout.Bindings = append(layout.Bindings, b)
	}

	if layout.Size == 0 {
		layout.Size = utils.AlignUp(next, 8)
		res.AddInfo("size_computed", fmt.Sprintf("region size set to %d bytes", layout.Size), "", "size")
	}

	checkRegion(res, layout)

	return layout, res
}

func resolveVariable(res *diagnostic.Diagnostics, m *Manifest, v *Variable, env Env) (Binding, bool) {
	b := Binding{Name: v.Name, Converter: v.Converter}

	logical, err := env.Types.Resolve(v.Type)
	if err != nil {
		res.AddSuggestedError("unknown_type", err.Error(), v.Name, "type",
			match.Suggest(v.Type, env.Types.Names(), maxSuggestions))

		return b, false
	}

	b.Logical = logical

	var attrs options.AttributeEnum
	for _, name := range v.Attributes {
		attr, err := options.ParseAttribute(name)
		if err != nil {
			res.AddSuggestedError("unknown_attribute", err.Error(), v.Name, "attributes",
				match.Suggest(name, options.AttributeNames(), maxSuggestions))

			return b, false
		}

		attrs |= attr
	}

	b.Attributes = attrs

	if v.Converter != "" {
		pair, err := env.Converters.ByName(v.Converter)
		if err != nil {
			res.AddSuggestedError("unknown_converter", err.Error(), v.Name, "converter",
				match.Suggest(v.Converter, env.Converters.Names(), maxSuggestions))

			return b, false
		}

		b.Converters = pair
	} else {
		b.Converters = env.Converters.Resolve(logical, attrs)
		if !b.Converters.IsEmpty() {
			res.AddInfo("converter_resolved", fmt.Sprintf("using the converter registered for %s", TypeName(logical)), v.Name, "converter")
		}
	}

	if converted, ok := b.Converters.LogicalType(); ok && converted != logical {
		res.AddError("converter_type_mismatch",
			fmt.Sprintf("converter %q converts %s, variable is %s", v.Converter, TypeName(converted), TypeName(logical)),
			v.Name, "converter")

		return b, false
	}

	plan, err := env.Synthesizer.Plan(accessor.Request{
		Owner:      m.Library,
		Type:       logical,
		Attributes: attrs,
		Converters: b.Converters,
	})
	if err != nil {
		res.AddError("unsupported_type", err.Error(), v.Name, "type")
		return b, false
	}

	b.Kind = plan.Kind
	b.Size = int64(plan.Op.Size())
	b.Coercion = plan.Coercion()

	if b.Coercion == primitive.CoercionWiden {
		res.AddWarning("lossy_storage",
			fmt.Sprintf("%s is stored in %d bits, wider values are truncated on set", TypeName(plan.Boxed), plan.Op.Bits),
			v.Name, "attributes")
	}

	if v.Init != nil {
		initValue, err := Coerce(v.Init, logical)
		if err != nil {
			res.AddError("invalid_init", err.Error(), v.Name, "init")
			return b, false
		}

		b.Init = utils.Some(initValue)
	}

	return b, true
}

func checkRegion(res *diagnostic.Diagnostics, layout *Layout) {
	for i := range layout.Bindings {
		b := &layout.Bindings[i]
		if b.End() > layout.Size {
			res.AddError("out_of_region",
				fmt.Sprintf("storage [%d, %d) exceeds the %d byte region", b.Offset, b.End(), layout.Size),
				b.Name, "offset")
		}
	}

	sorted := slices.Clone(layout.Bindings)
	slices.SortStableFunc(sorted, func(a, b Binding) int { return cmp.Compare(a.Offset, b.Offset) })

	var widest *Binding

	for i := range sorted {
		cur := &sorted[i]
		if widest != nil && cur.Offset < widest.End() {
			res.AddError("overlapping_storage",
				fmt.Sprintf("storage [%d, %d) overlaps %q at [%d, %d)", cur.Offset, cur.End(), widest.Name, widest.Offset, widest.End()),
				cur.Name, "offset")
		}

		if widest == nil || cur.End() > widest.End() {
			widest = cur
		}
	}
}
