package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_UsesInjectedValues(t *testing.T) {
	oldV, oldC, oldB := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = oldV, oldC, oldB })

	Version, GitCommit, BuildTime = "v1.2.3", "0123456789abcdef", "2025-06-01T00:00:00Z"
	assert.Equal(t, "v1.2.3 (commit 0123456789ab, built 2025-06-01T00:00:00Z)", String())
}

func TestString_NeverEmpty(t *testing.T) {
	s := String()
	assert.NotContains(t, s, "commit ,")
	assert.False(t, strings.HasSuffix(s, "built )"))
}

func TestShortCommit(t *testing.T) {
	assert.Equal(t, "abc", shortCommit("abc"))
	assert.Equal(t, "unknown", orUnknown(""))
}
