package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_WithFrontmatter(t *testing.T) {
	fm, body, had, err := Split([]byte("---\nslug: /pointers\n---\n# Pointers\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "slug: /pointers\n", string(fm))
	require.Equal(t, "# Pointers\n", string(body))
}

func TestSplit_EmptyFrontmatter(t *testing.T) {
	fm, body, had, err := Split([]byte("---\n---\nbody"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, "body", string(body))
}

func TestSplit_CRLF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\r\nid: intro\r\n---\r\ntext"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "id: intro\r\n", string(fm))
	require.Equal(t, "text", string(body))
}

func TestSplit_ClosingAtEOF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\nid: x\n---"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "id: x\n", string(fm))
	require.Empty(t, body)
}

func TestSplit_MissingClose(t *testing.T) {
	_, _, _, err := Split([]byte("---\nid: x\nno close\n"))
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestParse(t *testing.T) {
	f, body, err := Parse([]byte("---\nid: getting-started\nslug: /\ntitle: Start\ndraft: true\n---\nHello\n"))
	require.NoError(t, err)
	require.Equal(t, Fields{ID: "getting-started", Slug: "/", Title: "Start", Draft: true}, f)
	require.Equal(t, "Hello\n", string(body))
}

func TestParse_InvalidYAML(t *testing.T) {
	_, _, err := Parse([]byte("---\nid: [unterminated\n---\n"))
	require.Error(t, err)
}
