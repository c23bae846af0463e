// Package frontmatter splits and decodes the YAML front matter of doc files.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Fields are the front matter keys that affect doc identity and routing.
type Fields struct {
	ID       string `yaml:"id"`
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title"`
	Draft    bool   `yaml:"draft"`
	Unlisted bool   `yaml:"unlisted"`
}

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a delimiter, had is false and body is
// the full input. CRLF documents are handled.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, err error) {
	nl := newline(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// A closing delimiter at EOF without trailing newline still counts.
		tail := []byte(nl + "---")
		if bytes.HasSuffix(content, tail) {
			return content[start : len(content)-len(tail)+len(nl)], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	end := start + idx + len(nl)
	return content[start:end], content[start+idx+len(closeSeq):], true, nil
}

// Parse splits content and decodes the routing fields of its front matter.
func Parse(content []byte) (Fields, []byte, error) {
	raw, body, had, err := Split(content)
	if err != nil {
		return Fields{}, nil, err
	}
	var f Fields
	if had && len(bytes.TrimSpace(raw)) > 0 {
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return Fields{}, nil, err
		}
	}
	return f, body, nil
}

func newline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
