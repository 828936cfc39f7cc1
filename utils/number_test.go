package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"accessor-generator/utils"
)

func TestIsInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, utils.IsInRange(-128, int64(-128), 127))
	assert.False(t, utils.IsInRange(-128, int64(128), 127))
	assert.True(t, utils.IsInRange(0, 0.5, 1.0))
}

func TestAlignUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, align, want int64
	}{
		{0, 8, 0},
		{1, 4, 4},
		{4, 4, 4},
		{10, 8, 16},
		{3, 1, 3},
		{3, 0, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.AlignUp(tt.n, tt.align), "AlignUp(%d, %d)", tt.n, tt.align)
	}
}

func TestUnpack2(t *testing.T) {
	t.Parallel()

	a, b := utils.Unpack2([]string{"name", "value", "rest"})
	assert.Equal(t, "name", a)
	assert.Equal(t, "value", b)

	a, b = utils.Unpack2([]string{"name"})
	assert.Equal(t, "name", a)
	assert.Empty(t, b)

	a, b = utils.Unpack2([]string(nil))
	assert.Empty(t, a)
	assert.Empty(t, b)
}
