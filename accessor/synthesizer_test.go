package accessor_test

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"accessor-generator/accessor"
	"accessor-generator/converter"
	"accessor-generator/options"
	"accessor-generator/primitive"
)

type (
	celsius int16
	ratio   float32
	handle  uintptr
)

func ExampleSynthesizer_Generate() {
	buf := primitive.NewBuffer(8)
	synth := accessor.NewSynthesizer(accessor.Config{Memory: buf.At})

	acc, err := synth.Generate(buf.Address(), reflect.TypeFor[int64](), options.AttributeInt32, converter.None())
	if err != nil {
		panic(err)
	}

	_ = acc.Set(int64(0x1_0000_0001))
	v, _ := acc.Get()
	fmt.Println(acc.Kind(), acc.Op().Name, acc.Coercion(), v)

	_, err = synth.Generate(buf.Address(), reflect.TypeFor[string](), options.AttributeNone, converter.None())
	fmt.Println(err)

	// Output:
	// KindInt32 Int32 widen 1
	// global variable type not supported: string
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	values := []any{
		int8(math.MinInt8), int8(math.MaxInt8), uint8(255),
		int16(math.MinInt16), uint16(math.MaxUint16),
		int32(0x7FFFFFFF), int32(-1), uint32(math.MaxUint32),
		int64(math.MinInt64), uint64(math.MaxUint64),
		int(-42), uint(42),
		float32(1.5), float32(math.MaxFloat32), math.Pi, math.Inf(-1),
		uintptr(0xdeadbeef), primitive.Pointer(0x1000), handle(0x2000),
		celsius(-273), ratio(0.25),
	}

	for _, v := range values {
		t.Run(fmt.Sprintf("%T(%v)", v, v), func(t *testing.T) {
			t.Parallel()

			r := newRegion(16)
			acc, err := newSynthesizer(t, r).Generate(r.Address(), reflect.TypeOf(v), options.AttributeNone, converter.None())
			require.NoError(t, err)
			assert.Equal(t, primitive.CoercionIdentity, acc.Coercion())

			require.NoError(t, acc.Set(v))
			got, err := acc.Get()
			require.NoError(t, err)
			assert.Equal(t, v, got, spew.Sdump(r.Bytes()))
			assert.Equal(t, int64(1), r.reads.Load())
			assert.Equal(t, int64(1), r.writes.Load())
		})
	}
}

func TestNarrowingKeepsLowBits(t *testing.T) {
	t.Parallel()

	r := newRegion(8)
	for i := range r.Bytes() {
		r.Bytes()[i] = 0xAA
	}

	synth := newSynthesizer(t, r)
	acc, err := synth.Generate(r.Address(), reflect.TypeFor[int64](), options.AttributeInt32, converter.None())
	require.NoError(t, err)
	assert.Equal(t, primitive.KindInt32, acc.Kind())
	assert.Equal(t, primitive.CoercionWiden, acc.Coercion())

	require.NoError(t, acc.Set(int64(0x1_0000_0001)))
	assert.Equal(t, int32(1), r.At(r.Address()).ReadInt32(0))
	assert.Equal(t, []byte{0xAA, 0xAA, 0xAA, 0xAA}, r.Bytes()[4:])

	got, err := acc.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	require.NoError(t, acc.Set(int64(-1)))
	got, err = acc.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), got)

	unsigned, err := synth.Generate(r.Address(), reflect.TypeFor[int64](),
		options.AttributeInt32|options.AttributeUnsigned, converter.None())
	require.NoError(t, err)
	got, err = unsigned.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxUint32), got)
}

func TestWidenBySignedness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		typ   reflect.Type
		attrs options.AttributeEnum
		want  any
	}{
		{"signed 8", reflect.TypeFor[int8](), options.AttributeNone, int8(-1)},
		{"unsigned 8", reflect.TypeFor[uint8](), options.AttributeNone, uint8(255)},
		{"int16 over signed 8", reflect.TypeFor[int16](), options.AttributeInt8, int16(-1)},
		{"int16 over unsigned 8", reflect.TypeFor[int16](), options.AttributeInt8 | options.AttributeUnsigned, int16(255)},
		{"uint32 over signed 8", reflect.TypeFor[uint32](), options.AttributeInt8 | options.AttributeSigned, uint32(math.MaxUint32)},
		{"defined type over 8", reflect.TypeFor[celsius](), options.AttributeInt8, celsius(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newRegion(8)
			r.Bytes()[0] = 0xFF

			acc, err := newSynthesizer(t, r).Generate(r.Address(), tt.typ, tt.attrs, converter.None())
			require.NoError(t, err)
			assert.Equal(t, 8, acc.Op().Bits)

			got, err := acc.Get()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloatWidths(t *testing.T) {
	t.Parallel()

	r := newRegion(8)
	synth := newSynthesizer(t, r)

	acc, err := synth.Generate(r.Address(), reflect.TypeFor[float32](), options.AttributeNone, converter.None())
	require.NoError(t, err)
	require.NoError(t, acc.Set(float32(-0.5)))
	assert.Equal(t, float32(-0.5), r.At(r.Address()).ReadFloat32(0))

	acc, err = synth.Generate(r.Address(), reflect.TypeFor[float64](), options.AttributeNone, converter.None())
	require.NoError(t, err)
	require.NoError(t, acc.Set(math.NaN()))

	got, err := acc.Get()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.(float64)))
}

func TestConverterWiring(t *testing.T) {
	t.Parallel()

	var toCalls, fromCalls int

	pair, err := converter.NewPair(
		func(v int) int32 { toCalls++; return int32(v * 2) },
		func(n int32) int { fromCalls++; return int(n) + 1 },
	)
	require.NoError(t, err)

	r := newRegion(8)
	acc, err := newSynthesizer(t, r).Generate(r.Address(), reflect.TypeFor[int](), options.AttributeNone, pair)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[int32](), acc.BoxedType())
	assert.Equal(t, reflect.TypeFor[int](), acc.LogicalType())

	require.NoError(t, acc.Set(21))
	assert.Equal(t, int32(42), r.At(r.Address()).ReadInt32(0))
	assert.Equal(t, 1, toCalls)

	got, err := acc.Get()
	require.NoError(t, err)
	assert.Equal(t, 43, got)
	assert.Equal(t, 1, fromCalls)
}

func TestBuiltinConverters(t *testing.T) {
	t.Parallel()

	r := newRegion(8)
	synth := newSynthesizer(t, r)
	mem := r.At(r.Address())

	flag, err := synth.Generate(r.Address(), reflect.TypeFor[bool](), options.AttributeNone, converter.Bool)
	require.NoError(t, err)
	require.NoError(t, flag.Set(true))
	assert.Equal(t, int32(1), mem.ReadInt32(0))

	mem.WriteInt32(0, 7)
	got, err := flag.Get()
	require.NoError(t, err)
	assert.Equal(t, true, got)

	timeout, err := synth.Generate(r.Address(), reflect.TypeFor[time.Duration](), options.AttributeNone, converter.Seconds)
	require.NoError(t, err)
	assert.Equal(t, primitive.KindFloat64, timeout.Kind())
	require.NoError(t, timeout.Set(1500*time.Millisecond))
	assert.Equal(t, 1.5, mem.ReadFloat64(0))

	mem.WriteFloat64(0, math.NaN())
	_, err = timeout.Get()
	require.ErrorIs(t, err, converter.ErrRejected)
	assert.NotErrorIs(t, err, accessor.ErrClassCast)
}

func TestFromNativeOnlyDecidesBoxedType(t *testing.T) {
	t.Parallel()

	r := newRegion(8)
	pair, err := converter.NewPair(nil, func(n uint16) string { return fmt.Sprintf("#%d", n) })
	require.NoError(t, err)

	acc, err := newSynthesizer(t, r).Generate(r.Address(), reflect.TypeFor[string](), options.AttributeNone, pair)
	require.NoError(t, err)
	assert.Equal(t, primitive.KindUint16, acc.Kind())

	r.At(r.Address()).WriteInt16(0, -1)
	got, err := acc.Get()
	require.NoError(t, err)
	assert.Equal(t, "#65535", got)

	// without a to-native converter the boxed value is stored directly
	require.NoError(t, acc.Set(uint16(3)))
	got, err = acc.Get()
	require.NoError(t, err)
	assert.Equal(t, "#3", got)
}

func TestUnsupportedTypes(t *testing.T) {
	t.Parallel()

	types := []reflect.Type{
		reflect.TypeFor[string](),
		reflect.TypeFor[bool](),
		reflect.TypeFor[struct{ A int }](),
		reflect.TypeFor[*int32](),
		reflect.TypeFor[complex128](),
		reflect.TypeFor[[]int](),
		reflect.TypeFor[map[int]int](),
		reflect.TypeFor[chan int](),
		reflect.TypeFor[func()](),
		reflect.TypeFor[any](),
		reflect.TypeFor[[4]byte](),
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			t.Parallel()

			r := newRegion(8)
			acc, err := newSynthesizer(t, r).Generate(r.Address(), typ, options.AttributeNone, converter.None())
			require.ErrorIs(t, err, accessor.ErrUnsupportedType)
			assert.Nil(t, acc)

			var ute *accessor.UnsupportedTypeError
			require.ErrorAs(t, err, &ute)
			assert.Equal(t, typ, ute.Type)

			assert.Zero(t, r.binds.Load())
			assert.Zero(t, r.accesses())
		})
	}

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		r := newRegion(8)
		_, err := newSynthesizer(t, r).Generate(r.Address(), nil, options.AttributeNone, converter.None())
		require.ErrorIs(t, err, accessor.ErrUnsupportedType)
	})
}

func TestGenerateTouchesNoMemory(t *testing.T) {
	t.Parallel()

	r := newRegion(8)
	synth := newSynthesizer(t, r)

	types := []reflect.Type{
		reflect.TypeFor[int8](), reflect.TypeFor[uint64](), reflect.TypeFor[float32](),
		reflect.TypeFor[uintptr](), reflect.TypeFor[primitive.Pointer](),
	}
	for _, typ := range types {
		_, err := synth.Generate(r.Address(), typ, options.AttributeNone, converter.None())
		require.NoError(t, err)
	}

	assert.Equal(t, int64(len(types)), r.binds.Load())
	assert.Zero(t, r.accesses())
}

func TestClassCast(t *testing.T) {
	t.Parallel()

	r := newRegion(8)
	acc, err := newSynthesizer(t, r).Generate(r.Address(), reflect.TypeFor[int32](), options.AttributeNone, converter.None())
	require.NoError(t, err)

	for _, v := range []any{"x", int64(1), nil, float32(1), celsius(1)} {
		err := acc.Set(v)
		require.ErrorIs(t, err, accessor.ErrClassCast, "%T", v)

		var cce *accessor.ClassCastError
		require.ErrorAs(t, err, &cce)
		assert.Equal(t, "set", cce.Stage)
		assert.Equal(t, reflect.TypeFor[int32](), cce.Expected)
		assert.Equal(t, reflect.TypeOf(v), cce.Actual)
	}

	assert.Zero(t, r.accesses())

	// the accessor stays usable
	require.NoError(t, acc.Set(int32(5)))
	got, err := acc.Get()
	require.NoError(t, err)
	assert.Equal(t, int32(5), got)
}

type setOnly struct{ set []any }

func (*setOnly) Get() (any, error)     { return nil, nil }
func (s *setOnly) Set(value any) error { s.set = append(s.set, value); return nil }

func TestPrepare(t *testing.T) {
	t.Parallel()

	r := newRegion(8)
	acc, err := newSynthesizer(t, r).Generate(r.Address(), reflect.TypeFor[time.Duration](), options.AttributeNone, converter.Seconds)
	require.NoError(t, err)

	_, err = acc.Prepare("1s")
	require.ErrorIs(t, err, accessor.ErrClassCast)

	commit, err := acc.Prepare(1500 * time.Millisecond)
	require.NoError(t, err)
	assert.Zero(t, r.accesses(), "nothing is written before commit")

	require.NoError(t, commit())
	assert.Equal(t, int64(1), r.writes.Load())
	assert.Equal(t, 1.5, r.At(r.Address()).ReadFloat64(0))

	// units without Prepare defer the whole Set to commit
	unit := &setOnly{}
	synth := accessor.NewSynthesizer(accessor.Config{
		Memory:  r.memory,
		Backend: accessor.BackendFunc(func(*accessor.Plan) (accessor.Variable, error) { return unit, nil }),
	})

	acc, err = synth.Generate(r.Address(), reflect.TypeFor[int32](), options.AttributeNone, converter.None())
	require.NoError(t, err)

	commit, err = acc.Prepare(int32(4))
	require.NoError(t, err)
	assert.Empty(t, unit.set)

	require.NoError(t, commit())
	assert.Equal(t, []any{int32(4)}, unit.set)
}

type strayFrom struct{}

func (strayFrom) FromNative(any, converter.FromNativeContext) (any, error) { return "stray", nil }
func (strayFrom) NativeType() reflect.Type                                 { return reflect.TypeFor[int32]() }

type strayTo struct{}

func (strayTo) ToNative(any, converter.ToNativeContext) (any, error) { return int64(1), nil }
func (strayTo) NativeType() reflect.Type                             { return reflect.TypeFor[int32]() }

func TestConverterResultTypes(t *testing.T) {
	t.Parallel()

	r := newRegion(8)
	synth := newSynthesizer(t, r)

	acc, err := synth.Generate(r.Address(), reflect.TypeFor[int](), options.AttributeNone, converter.Both(nil, strayFrom{}))
	require.NoError(t, err)

	_, err = acc.Get()
	var cce *accessor.ClassCastError
	require.ErrorAs(t, err, &cce)
	assert.Equal(t, "from-native result", cce.Stage)
	assert.Equal(t, reflect.TypeFor[int](), cce.Expected)
	assert.Equal(t, reflect.TypeFor[string](), cce.Actual)

	acc, err = synth.Generate(r.Address(), reflect.TypeFor[int](), options.AttributeNone, converter.Both(strayTo{}, nil))
	require.NoError(t, err)

	err = acc.Set(1)
	require.ErrorAs(t, err, &cce)
	assert.Equal(t, "to-native result", cce.Stage)
	assert.Equal(t, reflect.TypeFor[int32](), cce.Expected)
	assert.Equal(t, reflect.TypeFor[int64](), cce.Actual)
	assert.Zero(t, r.writes.Load())
}

type label int32

func (l label) String() string { return fmt.Sprintf("label-%d", int32(l)) }

type nilFrom struct{}

func (nilFrom) FromNative(any, converter.FromNativeContext) (any, error) { return nil, nil }
func (nilFrom) NativeType() reflect.Type                                 { return reflect.TypeFor[int32]() }

func TestInterfaceLogicalType(t *testing.T) {
	t.Parallel()

	r := newRegion(8)
	synth := newSynthesizer(t, r)
	stringer := reflect.TypeFor[fmt.Stringer]()

	pair := converter.MustPair(
		func(s fmt.Stringer) int32 { return int32(s.(label)) },
		func(v int32) label { return label(v) },
	)

	acc, err := synth.Generate(r.Address(), stringer, options.AttributeNone, pair)
	require.NoError(t, err)

	require.NoError(t, acc.Set(label(3)))
	assert.Equal(t, int32(3), r.At(r.Address()).ReadInt32(0))

	v, err := acc.Get()
	require.NoError(t, err)
	assert.Equal(t, label(3), v)
	assert.Equal(t, "label-3", v.(fmt.Stringer).String())

	typed, err := accessor.Bind[fmt.Stringer](synth, r.Address(), options.AttributeNone, pair)
	require.NoError(t, err)

	s, err := typed.Get()
	require.NoError(t, err)
	assert.Equal(t, "label-3", s.String())

	// nil is a fmt.Stringer but not an int
	acc, err = synth.Generate(r.Address(), stringer, options.AttributeNone, converter.Both(nil, nilFrom{}))
	require.NoError(t, err)

	v, err = acc.Get()
	require.NoError(t, err)
	assert.Nil(t, v)

	acc, err = synth.Generate(r.Address(), reflect.TypeFor[int](), options.AttributeNone, converter.Both(nil, nilFrom{}))
	require.NoError(t, err)

	_, err = acc.Get()
	var cce *accessor.ClassCastError
	require.ErrorAs(t, err, &cce)
	assert.Equal(t, "from-native result", cce.Stage)
	assert.Nil(t, cce.Actual)
}

func TestConverterArgumentType(t *testing.T) {
	t.Parallel()

	r := newRegion(8)
	acc, err := newSynthesizer(t, r).Generate(r.Address(), reflect.TypeFor[bool](), options.AttributeNone, converter.Bool)
	require.NoError(t, err)

	err = acc.Set("yes")
	require.ErrorIs(t, err, accessor.ErrClassCast)
	require.ErrorIs(t, err, converter.ErrArgumentType)

	var cce *accessor.ClassCastError
	require.ErrorAs(t, err, &cce)
	assert.Equal(t, "to-native argument", cce.Stage)
	assert.Equal(t, reflect.TypeFor[bool](), cce.Expected)
	assert.Zero(t, r.accesses())
}

func TestConverterDisagreement(t *testing.T) {
	t.Parallel()

	to, _ := converter.Bool.To.Get()
	from, _ := converter.Duration.From.Get()

	r := newRegion(8)
	_, err := newSynthesizer(t, r).Generate(r.Address(), reflect.TypeFor[bool](), options.AttributeNone, converter.Both(to, from))
	require.ErrorIs(t, err, accessor.ErrUnsupportedType)
	assert.Contains(t, err.Error(), "converters disagree")
}

func TestClassifierMismatch(t *testing.T) {
	t.Parallel()

	errOpaque := errors.New("opaque")

	tests := []struct {
		name string
		typ  reflect.Type
		kind primitive.KindEnum
		err  error
	}{
		{"integer as float", reflect.TypeFor[int64](), primitive.KindFloat64, nil},
		{"float as integer", reflect.TypeFor[float32](), primitive.KindInt32, nil},
		{"number as address", reflect.TypeFor[uint64](), primitive.KindAddress, nil},
		{"pointer as number", reflect.TypeFor[uintptr](), primitive.KindUint64, nil},
		{"unknown kind", reflect.TypeFor[int32](), primitive.KindEnum(99), nil},
		{"classifier error", reflect.TypeFor[int32](), 0, errOpaque},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newRegion(8)
			synth := accessor.NewSynthesizer(accessor.Config{
				Memory: r.memory,
				Classifier: accessor.ClassifierFunc(func(reflect.Type, options.AttributeEnum) (primitive.KindEnum, error) {
					return tt.kind, tt.err
				}),
			})

			_, err := synth.Generate(r.Address(), tt.typ, options.AttributeNone, converter.None())
			require.ErrorIs(t, err, accessor.ErrUnsupportedType)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			}

			assert.Zero(t, r.binds.Load())
		})
	}
}

func TestLongFollowsPlatform(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{32, 64} {
		t.Run(fmt.Sprint(bits), func(t *testing.T) {
			t.Parallel()

			r := newRegion(8)
			synth := accessor.NewSynthesizer(accessor.Config{
				Platform: primitive.Platform{LongBits: bits},
				Memory:   r.memory,
			})

			acc, err := synth.Generate(r.Address(), reflect.TypeFor[int64](), options.AttributeLong, converter.None())
			require.NoError(t, err)
			assert.Equal(t, primitive.KindLong, acc.Kind())
			assert.Equal(t, bits, acc.Op().Bits)

			require.NoError(t, acc.Set(int64(0x1_0000_0002)))
			got, err := acc.Get()
			require.NoError(t, err)

			want := int64(0x1_0000_0002)
			if bits == 32 {
				want = 2
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestConstructionFailure(t *testing.T) {
	t.Parallel()

	errBroken := errors.New("broken backend")

	tests := []struct {
		name    string
		backend accessor.Backend
		memory  func(r *region) primitive.MemoryFactory
	}{
		{
			name: "backend error",
			backend: accessor.BackendFunc(func(*accessor.Plan) (accessor.Variable, error) {
				return nil, errBroken
			}),
		},
		{
			name: "backend panic",
			backend: accessor.BackendFunc(func(*accessor.Plan) (accessor.Variable, error) {
				panic("boom")
			}),
		},
		{
			name: "no accessor",
			backend: accessor.BackendFunc(func(*accessor.Plan) (accessor.Variable, error) {
				return nil, nil
			}),
		},
		{
			name:   "address outside memory",
			memory: func(r *region) primitive.MemoryFactory { return r.At },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newRegion(8)
			cfg := accessor.Config{Backend: tt.backend, Memory: r.memory}
			address := r.Address()
			if tt.memory != nil {
				cfg.Memory = tt.memory(r)
				address = r.Address() + 64
			}

			acc, err := accessor.NewSynthesizer(cfg).Generate(address, reflect.TypeFor[int32](), options.AttributeNone, converter.None())
			require.ErrorIs(t, err, accessor.ErrConstruction)
			assert.Nil(t, acc)

			var ce *accessor.ConstructionError
			require.ErrorAs(t, err, &ce)
			assert.Contains(t, ce.Name, "$VariableAccessor$$")
			assert.Zero(t, r.accesses())
		})
	}

	t.Run("cause is kept", func(t *testing.T) {
		t.Parallel()

		r := newRegion(8)
		synth := accessor.NewSynthesizer(accessor.Config{
			Backend: accessor.BackendFunc(func(*accessor.Plan) (accessor.Variable, error) { return nil, errBroken }),
			Memory:  r.memory,
		})

		_, err := synth.Generate(r.Address(), reflect.TypeFor[int32](), options.AttributeNone, converter.None())
		require.ErrorIs(t, err, errBroken)
	})
}

func TestNames(t *testing.T) {
	t.Parallel()

	r := newRegion(8)
	synth := newSynthesizer(t, r)

	acc, err := synth.Generate(r.Address(), reflect.TypeFor[int32](), options.AttributeNone, converter.None())
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^test\$VariableAccessor\$\$\d+$`), acc.Name())

	acc, err = synth.GenerateRequest(accessor.Request{Owner: "lib", Address: r.Address(), Type: reflect.TypeFor[int32]()})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^lib\$VariableAccessor\$\$\d+$`), acc.Name())

	acc, err = accessor.NewSynthesizer(accessor.Config{Memory: r.memory}).
		Generate(r.Address(), reflect.TypeFor[int32](), options.AttributeNone, converter.None())
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^accessor\$VariableAccessor\$\$\d+$`), acc.Name())
}

func TestConcurrentGenerate(t *testing.T) {
	t.Parallel()

	const n = 64

	r := newRegion(n * 8)
	synths := []*accessor.Synthesizer{newSynthesizer(t, r), newSynthesizer(t, r)}
	accs := make([]*accessor.Accessor, n)

	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			acc, err := synths[i%2].Generate(r.Address()+uintptr(i*8), reflect.TypeFor[int64](), options.AttributeNone, converter.None())
			if err != nil {
				return err
			}

			accs[i] = acc

			return acc.Set(int64(i) * 1000)
		})
	}
	require.NoError(t, g.Wait())

	names := map[string]struct{}{}
	for i, acc := range accs {
		names[acc.Name()] = struct{}{}

		got, err := acc.Get()
		require.NoError(t, err)
		assert.Equal(t, int64(i)*1000, got)
	}

	assert.Len(t, names, n)
}
