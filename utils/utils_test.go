package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, IsInRange(1, 1, 3))
	assert.True(t, IsInRange(1, 3, 3))
	assert.False(t, IsInRange(1, 4, 3))
	assert.True(t, IsInRange(-0.5, 0, 0.5))
	assert.False(t, IsInRange[uint8](2, 1, 9))
}

func TestUnpack2(t *testing.T) {
	t.Parallel()

	a, b := Unpack2(strings.SplitN("3,6", ",", 2))
	assert.Equal(t, "3", a)
	assert.Equal(t, "6", b)

	a, b = Unpack2(strings.SplitN("3", ",", 2))
	assert.Equal(t, "3", a)
	assert.Empty(t, b)

	a, b = Unpack2([]string(nil))
	assert.Empty(t, a)
	assert.Empty(t, b)
}
