package rms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutShape(t *testing.T) {
	t.Parallel()

	s := Structure()

	assert.Equal(t, 44, s.GroupCount())
	assert.Equal(t, 149, s.FileCount())

	assert.Equal(t, "src/components/layout", s.Groups()[0].Dir)
	assert.Equal(t, ".github/workflows", s.Groups()[s.GroupCount()-1].Dir)
	assert.Equal(t, []string{"src-tauri/src/error.rs"}, s.Extras)
}

func TestLayoutPathsAreRelative(t *testing.T) {
	t.Parallel()

	s := Structure()

	for _, g := range s.Groups() {
		assert.False(t, strings.HasPrefix(g.Dir, "/"), "dir %v", g.Dir)
		assert.NotContains(t, g.Dir, "..", "dir %v", g.Dir)
		assert.NotContains(t, g.Dir, "\\", "dir %v", g.Dir)

		assert.NotEmpty(t, g.Files, "dir %v", g.Dir)
		for _, f := range g.Files {
			assert.NotContains(t, f, "/", "file %v in %v", f, g.Dir)
		}
	}

	for _, e := range s.Extras {
		assert.False(t, strings.HasPrefix(e, "/"), "extra %v", e)
		assert.NotContains(t, e, "..", "extra %v", e)
	}
}
