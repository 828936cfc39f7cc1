package common

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlices(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty([]int(nil)))
	assert.True(t, IsSingle([]int{1}))
	assert.True(t, IsMultiple([]int{1, 2}))

	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string{})
	assert.False(t, ok)

	assert.Equal(t, []int{1, 2}, AppendUnique(AppendUnique([]int{1}, 2), 1))
}

func TestQualifiedName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "time", PkgAlias("time"))
	assert.Equal(t, "binding", PkgAlias("accessor-generator/internal/binding"))
	assert.Empty(t, PkgAlias(""))

	assert.Equal(t, "int32", QualifiedName(reflect.TypeFor[int32]()))
	assert.Equal(t, "time.Duration", QualifiedName(reflect.TypeFor[time.Duration]()))
	assert.Equal(t, "[]int", QualifiedName(reflect.TypeFor[[]int]()))
}
