package site

import (
	"encoding/json"
	"fmt"
)

// PresetClassic is the Docusaurus classic preset.
const PresetClassic = "classic"

// Preset is a named option bundle. It encodes as the builder's
// [name, options] tuple.
type Preset struct {
	Name    string
	Options PresetOptions
}

func (p Preset) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Name, p.Options})
}

func (p Preset) MarshalYAML() (any, error) {
	return []any{p.Name, p.Options}, nil
}

// UnmarshalJSON accepts the tuple form produced by MarshalJSON.
func (p *Preset) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("preset: expected [name, options], got %d elements", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &p.Name); err != nil {
		return fmt.Errorf("preset name: %w", err)
	}
	var raw struct {
		Docs  DocsConfig      `json:"docs"`
		Blog  json.RawMessage `json:"blog"`
		Theme PresetTheme     `json:"theme"`
	}
	if err := json.Unmarshal(tuple[1], &raw); err != nil {
		return fmt.Errorf("preset %s options: %w", p.Name, err)
	}
	blog, err := decodeBlog(raw.Blog)
	if err != nil {
		return fmt.Errorf("preset %s blog: %w", p.Name, err)
	}
	p.Options = PresetOptions{Docs: raw.Docs, Blog: blog, Theme: raw.Theme}
	return nil
}
