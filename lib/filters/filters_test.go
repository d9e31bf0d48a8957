package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyRuleMatchesEverything(t *testing.T) {
	t.Parallel()

	f, err := ParsePathFilter("")
	assert.Nil(t, err)

	assert.True(t, f("src/widgets/Button.ext"))
	assert.True(t, f(".gitkeep"))
}

func TestGlobRule(t *testing.T) {
	t.Parallel()

	f, err := ParsePathFilter("src/**")
	assert.Nil(t, err)

	assert.True(t, f("src/widgets/Button.ext"))
	assert.True(t, f("src/index.ts"))
	assert.False(t, f("docs/API.md"))
}

func TestAlternatives(t *testing.T) {
	t.Parallel()

	f, err := ParsePathFilter("docs/** | scripts/**")
	assert.Nil(t, err)

	assert.True(t, f("docs/API.md"))
	assert.True(t, f("scripts/setup.sh"))
	assert.False(t, f("src/index.ts"))
}

func TestInvalidGlob(t *testing.T) {
	t.Parallel()

	_, err := ParsePathFilter("src/[")
	assert.NotNil(t, err)
}
