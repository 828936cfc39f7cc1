package accessor

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"text/template"
)

// traceData holds everything the trace listing prints for one plan.
type traceData struct {
	Name     string
	Address  string
	Kind     string
	Op       string
	Bits     int
	Logical  string
	Boxed    string
	Coercion string
	To       string
	From     string
	Decode   string
	Encode   string
}

func buildTraceData(p *Plan) *traceData {
	data := &traceData{
		Name:     p.Name,
		Address:  fmt.Sprintf("%#x", p.Address),
		Kind:     p.Kind.String(),
		Op:       p.Op.Name,
		Bits:     p.Op.Bits,
		Logical:  typeName(p.Logical),
		Boxed:    typeName(p.Boxed),
		Coercion: p.Coercion().String(),
		Decode:   "zeroExtend",
		Encode:   "narrow",
	}

	switch {
	case p.Op.Float:
		data.Decode, data.Encode = "floatFromBits", "floatToBits"
	case p.Signed:
		data.Decode = "signExtend"
	}

	if to, ok := p.Converters.To.Get(); ok {
		data.To = converterName(to)
	}

	if from, ok := p.Converters.From.Get(); ok {
		data.From = converterName(from)
	}

	return data
}

func converterName(c any) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T", c)
}

// WriteTrace prints the Go equivalent of the accessor a plan describes.
// The listing is gofmt-ed when it parses and printed as is otherwise.
func WriteTrace(w io.Writer, p *Plan) error {
	var buf bytes.Buffer
	if err := traceTemplate.Execute(&buf, buildTraceData(p)); err != nil {
		return fmt.Errorf("executing trace template: %w", err)
	}

	src := buf.Bytes()
	if formatted, err := format.Source(src); err == nil {
		src = formatted
	}

	_, err := w.Write(src)

	return err
}

var traceTemplate = template.Must(template.New("trace").Parse(`// {{.Name}} @ {{.Address}}
// kind:    {{.Kind}} (op {{.Op}}, {{.Bits}} bits)
// logical: {{.Logical}}
// boxed:   {{.Boxed}} ({{.Coercion}})
// to:      {{or .To "none"}}
// from:    {{or .From "none"}}

func Get(mem Memory) (any, error) {
	raw := mem.Read{{.Op}}(0)
	boxed := {{.Boxed}}({{.Decode}}(raw, {{.Bits}}))
{{- if .From}}
	return {{.From}}.FromNative(boxed, nil)
{{- else}}
	return boxed, nil
{{- end}}
}

func Set(mem Memory, value any) error {
{{- if .To}}
	out, err := {{.To}}.ToNative(value, nil)
	if err != nil {
		return err
	}
	native := out.({{.Boxed}})
{{- else}}
	native := value.({{.Boxed}})
{{- end}}
	mem.Write{{.Op}}(0, {{.Encode}}(native, {{.Bits}}))
	return nil
}
`))
