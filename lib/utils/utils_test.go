package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Min(3, 1, 2))
	assert.Equal(t, 3, Max(3, 1, 2))
	assert.Equal(t, 5, Min(5))
}

func TestIIf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", IIf(true, "a", "b"))
	assert.Equal(t, "b", IIf(false, "a", "b"))
}

func TestPathAbs(t *testing.T) {
	t.Parallel()

	p, err := PathAbs("x/y")
	assert.Nil(t, err)
	assert.True(t, filepath.IsAbs(p))
}
