package locale

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Selection routes one category name to a backend.
type Selection struct {
	Category string
	Backend  string
}

// Selections keeps the order entries appear in the file.
type Selections []Selection

// UnmarshalYAML decodes a mapping of category name to backend name.
func (s *Selections) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("locale: select must be a mapping, line %d", node.Line)
	}
	out := make(Selections, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var category, backend string
		if err := node.Content[i].Decode(&category); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&backend); err != nil {
			return err
		}
		out = append(out, Selection{Category: category, Backend: backend})
	}
	*s = out
	return nil
}

// UnmarshalJSON decodes a JSON object of category name to backend name.
func (s *Selections) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("locale: select must be an object")
	}
	var out Selections
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return err
		}
		var backend string
		if err := dec.Decode(&backend); err != nil {
			return err
		}
		out = append(out, Selection{Category: key.(string), Backend: backend})
	}
	if _, err := dec.Token(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	*s = out
	return nil
}

// BackendConfig is the file form of a backend selection.
type BackendConfig struct {
	Select     Selections        `json:"select" yaml:"select"`
	Options    map[string]string `json:"options" yaml:"options"`
	Categories []string          `json:"categories" yaml:"categories"`
}

// LoadBackendConfig reads a .yaml, .yml or .json backend configuration.
func LoadBackendConfig(path string) (*BackendConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locale: read %s: %w", path, err)
	}
	cfg, err := decodeBackendConfig(path, data)
	if err != nil {
		return nil, fmt.Errorf("locale: decode %s: %w", path, err)
	}
	return cfg, nil
}

func decodeBackendConfig(path string, data []byte) (*BackendConfig, error) {
	cfg := &BackendConfig{}
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedConfig, ext)
	}
	if _, err := cfg.CategoryMask(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply selects backends on m. The "all" entry is applied first so that
// specific categories override it; the rest follow file order.
func (c *BackendConfig) Apply(m *Manager) error {
	if c == nil || m == nil {
		return nil
	}
	type step struct {
		backend    string
		categories Category
	}
	var first, rest []step
	for _, sel := range c.Select {
		categories, err := ParseCategory(sel.Category)
		if err != nil {
			return err
		}
		if categories == AllCategories {
			first = append(first, step{sel.Backend, categories})
			continue
		}
		rest = append(rest, step{sel.Backend, categories})
	}
	for _, s := range append(first, rest...) {
		m.Select(s.backend, s.categories)
	}
	return nil
}

// CategoryMask ORs the configured categories. An empty list means every
// category.
func (c *BackendConfig) CategoryMask() (Category, error) {
	if c == nil || len(c.Categories) == 0 {
		return AllCategories, nil
	}
	return ParseCategories(c.Categories...)
}
