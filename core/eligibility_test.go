package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibilityCache_Stable(t *testing.T) {
	patterns, err := CompileNamePatterns([]string{"^web-.*"})
	require.NoError(t, err)

	c := NewEligibilityCache()
	assert.True(t, c.Eligible("web-1", patterns))
	assert.False(t, c.Eligible("db-1", patterns))

	// Subsequent lookups must return the same answer regardless of
	// whether the patterns passed in would now say otherwise.
	assert.True(t, c.Eligible("web-1", nil))
	assert.False(t, c.Eligible("db-1", nil))
}

func TestCompileNamePatterns_EmptyMatchesAll(t *testing.T) {
	patterns, err := CompileNamePatterns(nil)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.True(t, patterns[0].MatchString("anything"))
}

func TestCompileNamePatterns_GlobStar(t *testing.T) {
	patterns, err := CompileNamePatterns([]string{"*"})
	require.NoError(t, err)
	assert.True(t, patterns[0].MatchString("anything"))
}
