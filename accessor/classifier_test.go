package accessor_test

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-generator/accessor"
	"accessor-generator/options"
	"accessor-generator/primitive"
)

func TestCategorize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, accessor.CategoryNumeric, accessor.Categorize(reflect.TypeFor[int8]()))
	assert.Equal(t, accessor.CategoryNumeric, accessor.Categorize(reflect.TypeFor[float64]()))
	assert.Equal(t, accessor.CategoryNumeric, accessor.Categorize(reflect.TypeFor[celsius]()))
	assert.Equal(t, accessor.CategoryPointer, accessor.Categorize(reflect.TypeFor[uintptr]()))
	assert.Equal(t, accessor.CategoryPointer, accessor.Categorize(reflect.TypeFor[unsafe.Pointer]()))
	assert.Equal(t, accessor.CategoryPointer, accessor.Categorize(reflect.TypeFor[primitive.Pointer]()))
	assert.Equal(t, accessor.CategoryUnsupported, accessor.Categorize(reflect.TypeFor[*int]()))
	assert.Equal(t, accessor.CategoryUnsupported, accessor.Categorize(reflect.TypeFor[bool]()))
	assert.Equal(t, accessor.CategoryUnsupported, accessor.Categorize(nil))

	assert.Equal(t, "pointer", accessor.CategoryPointer.String())
}

func TestDefaultClassifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ   reflect.Type
		attrs options.AttributeEnum
		want  primitive.KindEnum
	}{
		{reflect.TypeFor[int8](), options.AttributeNone, primitive.KindInt8},
		{reflect.TypeFor[uint32](), options.AttributeNone, primitive.KindUint32},
		{reflect.TypeFor[uint32](), options.AttributeSigned, primitive.KindInt32},
		{reflect.TypeFor[int64](), options.AttributeInt16, primitive.KindInt16},
		{reflect.TypeFor[int64](), options.AttributeInt8 | options.AttributeUnsigned, primitive.KindUint8},
		{reflect.TypeFor[int32](), options.AttributeInt64, primitive.KindInt64},
		{reflect.TypeFor[int64](), options.AttributeLong, primitive.KindLong},
		{reflect.TypeFor[uint64](), options.AttributeLong, primitive.KindUlong},
		{reflect.TypeFor[int](), options.AttributeNoTrace, primitive.IntegerKind(primitive.AddressBits, true)},
		{reflect.TypeFor[float32](), options.AttributeNone, primitive.KindFloat32},
		{reflect.TypeFor[float64](), options.AttributeNoTrace, primitive.KindFloat64},
		{reflect.TypeFor[uintptr](), options.AttributeNone, primitive.KindAddress},
		{reflect.TypeFor[unsafe.Pointer](), options.AttributeNone, primitive.KindAddress},
	}

	for _, tt := range tests {
		kind, err := accessor.DefaultClassifier{}.Classify(tt.typ, tt.attrs)
		require.NoError(t, err, "%s %s", tt.typ, tt.attrs)
		assert.Equal(t, tt.want, kind, "%s %s", tt.typ, tt.attrs)
	}
}

func TestDefaultClassifierErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ   reflect.Type
		attrs options.AttributeEnum
		msg   string
	}{
		{reflect.TypeFor[string](), options.AttributeNone, "no native representation for string"},
		{reflect.TypeFor[int32](), options.AttributeInt8 | options.AttributeInt16, "conflicting width attributes int8|int16"},
		{reflect.TypeFor[int32](), options.AttributeSignedness, "conflicting signedness attributes signed|unsigned"},
		{reflect.TypeFor[float64](), options.AttributeInt32, "attributes int32 do not apply to float64"},
		{reflect.TypeFor[uintptr](), options.AttributeUnsigned, "attributes unsigned do not apply to uintptr"},
	}

	for _, tt := range tests {
		_, err := accessor.DefaultClassifier{}.Classify(tt.typ, tt.attrs)
		assert.EqualError(t, err, tt.msg)
	}
}
