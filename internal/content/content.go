// Package content holds the static copy of the portfolio page.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultDocument []byte

// Content is everything the page shell renders that is not fetched at runtime.
type Content struct {
	Brand    string    `yaml:"brand"`
	Photo    string    `yaml:"photo"`
	Hero     Hero      `yaml:"hero"`
	About    About     `yaml:"about"`
	Projects []Project `yaml:"projects"`
	Contact  Contact   `yaml:"contact"`
	Footer   string    `yaml:"footer"`
	GitHub   GitHub    `yaml:"github"`
}

type Hero struct {
	Greeting string `yaml:"greeting"`
	Name     string `yaml:"name"`
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
}

type About struct {
	Title  string   `yaml:"title"`
	Text   string   `yaml:"text"`
	Skills []string `yaml:"skills"`
}

type Project struct {
	Icon        string   `yaml:"icon"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

type Contact struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Submit   string `yaml:"submit"`
}

type GitHub struct {
	Handle string `yaml:"handle"`
}

// Default returns the embedded content.
func Default() (*Content, error) {
	return Parse(defaultDocument)
}

// Load reads content from path, or the embedded document when path is empty.
// Fields missing from the file keep their embedded values.
func Load(path string) (*Content, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes a YAML content document.
func Parse(raw []byte) (*Content, error) {
	c := &Content{}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Content) validate() error {
	if c.Hero.Name == "" {
		return fmt.Errorf("content: hero.name is required")
	}
	if c.GitHub.Handle == "" {
		return fmt.Errorf("content: github.handle is required")
	}
	return nil
}
