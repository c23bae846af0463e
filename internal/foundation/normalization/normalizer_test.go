package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type policy string

const (
	policyIgnore policy = "ignore"
	policyWarn   policy = "warn"
	policyThrow  policy = "throw"
)

func newPolicyNormalizer() *Normalizer[policy] {
	return New("policy", map[string]policy{
		"ignore": policyIgnore,
		"warn":   policyWarn,
		"throw":  policyThrow,
	}, policyWarn)
}

func TestNormalize(t *testing.T) {
	n := newPolicyNormalizer()
	tests := []struct {
		name  string
		input string
		want  policy
	}{
		{"exact", "throw", policyThrow},
		{"upper case", "IGNORE", policyIgnore},
		{"padded", "  warn ", policyWarn},
		{"unknown falls back", "explode", policyWarn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestParse(t *testing.T) {
	n := newPolicyNormalizer()

	v, err := n.Parse("Throw")
	require.NoError(t, err)
	assert.Equal(t, policyThrow, v)

	v, err = n.Parse("")
	require.NoError(t, err)
	assert.Equal(t, policyWarn, v)

	_, err = n.Parse("explode")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid policy")
	assert.Contains(t, err.Error(), "ignore, throw, warn")
}

func TestValidAndKeys(t *testing.T) {
	n := newPolicyNormalizer()
	assert.True(t, n.Valid(policyIgnore))
	assert.False(t, n.Valid(policy("explode")))
	assert.Equal(t, []string{"ignore", "throw", "warn"}, n.Keys())
}
