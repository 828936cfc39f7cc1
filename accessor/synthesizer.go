package accessor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"

	"accessor-generator/converter"
	"accessor-generator/options"
	"accessor-generator/primitive"
)

// Config holds settings for a Synthesizer.
type Config struct {
	// Owner prefixes every accessor name, DefaultOwner when empty.
	Owner string
	// Platform selects the native width of C long. The zero value means primitive.Native.
	Platform primitive.Platform
	// Classifier resolves native kinds, DefaultClassifier when nil.
	Classifier Classifier
	// Backend instantiates accessors, ClosureBackend when nil.
	Backend Backend
	// Memory binds an address to a memory view, primitive.NewDirect when nil.
	Memory primitive.MemoryFactory
	Logger *slog.Logger

	// Debug prints a listing of every generated accessor to Trace,
	// except for requests carrying the notrace attribute.
	Debug bool
	// Trace receives debug listings, os.Stderr when nil.
	Trace io.Writer
}

// DefaultConfig returns the default synthesizer configuration.
func DefaultConfig() Config {
	return Config{
		Owner:      DefaultOwner,
		Platform:   primitive.Native,
		Classifier: DefaultClassifier{},
		Backend:    ClosureBackend{},
		Memory:     primitive.NewDirect,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Request describes one native variable to generate an accessor for.
type Request struct {
	// Owner overrides Config.Owner for this request.
	Owner      string
	Address    uintptr
	Type       reflect.Type
	Attributes options.AttributeEnum
	Converters converter.Pair
}

// Synthesizer generates accessors. It is safe for concurrent use: its only
// shared state is the read-only op table and the process wide name counter.
type Synthesizer struct {
	config Config
	table  *primitive.OpTable
	logger *slog.Logger
}

// NewSynthesizer creates a Synthesizer, filling unset config fields with defaults.
func NewSynthesizer(config Config) *Synthesizer {
	def := DefaultConfig()

	if config.Owner == "" {
		config.Owner = def.Owner
	}

	if config.Platform.LongBits == 0 {
		config.Platform = def.Platform
	}

	if config.Classifier == nil {
		config.Classifier = def.Classifier
	}

	if config.Backend == nil {
		config.Backend = def.Backend
	}

	if config.Memory == nil {
		config.Memory = def.Memory
	}

	if config.Logger == nil {
		config.Logger = def.Logger
	}

	if config.Trace == nil {
		config.Trace = os.Stderr
	}

	table := primitive.DefaultOpTable()
	if config.Platform != table.Platform() {
		table = primitive.NewOpTable(config.Platform)
	}

	return &Synthesizer{
		config: config,
		table:  table,
		logger: config.Logger,
	}
}

// Table returns the op table the synthesizer resolves kinds with.
func (s *Synthesizer) Table() *primitive.OpTable { return s.table }

// Generate creates an accessor for the native variable at address.
// The logical type is what Get returns and Set accepts; converters, when present,
// decide the type actually stored. No memory is touched.
func (s *Synthesizer) Generate(
	address uintptr,
	logical reflect.Type,
	attrs options.AttributeEnum,
	conv converter.Pair,
) (*Accessor, error) {
	return s.GenerateRequest(Request{
		Address:    address,
		Type:       logical,
		Attributes: attrs,
		Converters: conv,
	})
}

// GenerateRequest is Generate taking a Request.
func (s *Synthesizer) GenerateRequest(req Request) (*Accessor, error) {
	plan, err := s.Plan(req)
	if err != nil {
		s.logger.Debug("accessor rejected", "type", typeName(req.Type), "error", err)
		return nil, err
	}

	if s.config.Debug && !req.Attributes.Has(options.AttributeNoTrace) {
		if err := WriteTrace(s.config.Trace, plan); err != nil {
			s.logger.Warn("writing accessor trace", "name", plan.Name, "error", err)
		}
	}

	acc, err := s.instantiate(plan)
	if err != nil {
		s.logger.Debug("accessor construction failed", "name", plan.Name, "error", err)
		return nil, err
	}

	s.logger.Debug("accessor generated",
		"name", plan.Name,
		"kind", plan.Kind,
		"address", fmt.Sprintf("%#x", plan.Address),
		"boxed", typeName(plan.Boxed),
		"coercion", plan.Coercion(),
	)

	return acc, nil
}

// Plan resolves a request into a named plan without binding memory.
// Every rejection is an *UnsupportedTypeError.
func (s *Synthesizer) Plan(req Request) (*Plan, error) {
	if req.Type == nil {
		return nil, &UnsupportedTypeError{Reason: "missing logical type"}
	}

	boxed, err := boxedType(req.Type, req.Converters)
	if err != nil {
		return nil, err
	}

	unsupported := func(reason string, err error) error {
		return &UnsupportedTypeError{Type: req.Type, Boxed: boxed, Reason: reason, Err: err}
	}

	category := Categorize(boxed)
	if category == CategoryUnsupported {
		return nil, unsupported("", nil)
	}

	kind, err := s.config.Classifier.Classify(boxed, req.Attributes)
	if err != nil {
		if errors.Is(err, ErrUnsupportedType) {
			return nil, err
		}

		return nil, unsupported("", err)
	}

	op, ok := s.table.Lookup(kind)
	if !ok {
		return nil, unsupported(fmt.Sprintf("no native op for %s", kind), nil)
	}

	isFloat := boxed.Kind() == reflect.Float32 || boxed.Kind() == reflect.Float64
	switch {
	case category == CategoryPointer && !kind.IsAddress():
		return nil, unsupported(fmt.Sprintf("pointer stored as %s", kind), nil)
	case category == CategoryNumeric && kind.IsAddress():
		return nil, unsupported("number stored as an address", nil)
	case isFloat != op.Float:
		return nil, unsupported(fmt.Sprintf("no implicit conversion between %s and %s", typeName(boxed), kind), nil)
	}

	name, _ := NewStem(s.ownerOf(req)).Next()

	return &Plan{
		Name:       name,
		Address:    req.Address,
		Kind:       kind,
		Op:         op,
		Logical:    req.Type,
		Boxed:      boxed,
		Category:   category,
		Signed:     kind.IsSigned(),
		BoxedBits:  boxedBits(boxed),
		Attributes: req.Attributes,
		Converters: req.Converters,
	}, nil
}

func (s *Synthesizer) ownerOf(req Request) string {
	if req.Owner != "" {
		return req.Owner
	}

	return s.config.Owner
}

// instantiate binds memory and runs the backend. Failures, panics included,
// become a ConstructionError and no accessor escapes.
func (s *Synthesizer) instantiate(plan *Plan) (acc *Accessor, err error) {
	defer func() {
		if r := recover(); r != nil {
			acc, err = nil, &ConstructionError{Name: plan.Name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	plan.Memory = s.config.Memory(plan.Address)

	unit, err := s.config.Backend.Instantiate(plan)
	if err != nil {
		return nil, &ConstructionError{Name: plan.Name, Err: err}
	}

	if unit == nil {
		return nil, &ConstructionError{Name: plan.Name, Err: errors.New("backend returned no accessor")}
	}

	return &Accessor{plan: plan, unit: unit}, nil
}

// boxedType is the type written to memory: the to-native result type, else the
// from-native input type, else the logical type itself.
func boxedType(logical reflect.Type, conv converter.Pair) (reflect.Type, error) {
	to, hasTo := conv.To.Get()
	from, hasFrom := conv.From.Get()

	switch {
	case hasTo && hasFrom && to.NativeType() != from.NativeType():
		return nil, &UnsupportedTypeError{
			Type: logical,
			Reason: fmt.Sprintf("converters disagree on the native type: %s and %s",
				typeName(to.NativeType()), typeName(from.NativeType())),
		}
	case hasTo:
		return to.NativeType(), nil
	case hasFrom:
		return from.NativeType(), nil
	default:
		return logical, nil
	}
}
