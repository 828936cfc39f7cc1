package converter_test

import (
	"accessor-generator/converter"
	"accessor-generator/options"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefaults(t *testing.T) {
	t.Parallel()

	r := converter.Defaults()
	assert.Equal(t, []string{"bool", "duration", "seconds", "timestamp"}, r.Names())

	p := r.Resolve(reflect.TypeFor[time.Duration](), options.AttributeNone)
	native, ok := p.NativeType()
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[int64](), native, "duration wins over seconds")

	p = r.Resolve(reflect.TypeFor[bool](), options.AttributeNone)
	native, _ = p.NativeType()
	assert.Equal(t, reflect.TypeFor[int32](), native)

	assert.True(t, r.Resolve(reflect.TypeFor[int32](), options.AttributeNone).IsEmpty())

	_, err := r.ByName("celsius")
	assert.ErrorIs(t, err, converter.ErrUnknownConverter)
	assert.True(t, r.Has("seconds"))
}

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	r := converter.NewRegistry()
	require.NoError(t, r.Register("celsius", converter.MustPair(
		func(c Celsius) float32 { return float32(c) },
		func(v float32) Celsius { return Celsius(v) },
	)))

	assert.Error(t, r.Register("celsius", converter.Bool))
	assert.Error(t, r.Register("", converter.Bool))
	assert.Error(t, r.Register("nothing", converter.None()))
	assert.Panics(t, func() { r.MustRegister("celsius", converter.Bool) })

	p, err := r.ByName("celsius")
	require.NoError(t, err)
	assert.False(t, p.IsEmpty())
	assert.False(t, r.Resolve(reflect.TypeFor[Celsius](), options.AttributeSigned).IsEmpty())
}

func TestRegistryConcurrentUse(t *testing.T) {
	t.Parallel()

	r := converter.Defaults()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Resolve(reflect.TypeFor[time.Time](), options.AttributeNone)
			_ = r.Names()
		}()
	}

	wg.Wait()
}
