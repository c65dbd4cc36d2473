package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultContent []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid content")

// Load reads content from a YAML file. An empty path loads the built-in
// content.
func Load(path string) (*Content, error) {
	data := defaultContent
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the records the page relies on.
func (c *Content) Validate() error {
	if strings.TrimSpace(c.Hero.Name) == "" {
		return fmt.Errorf("%w: hero name is required", ErrInvalid)
	}
	seen := make(map[int]bool, len(c.Projects))
	for i, p := range c.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("%w: project %d has no title", ErrInvalid, i)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate project id %d", ErrInvalid, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
