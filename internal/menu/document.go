package menu

import (
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Labels are the two toggle-control captions.
type Labels struct {
	Open  string `yaml:"open,omitempty"`
	Close string `yaml:"close,omitempty"`
}

// Document is the on-disk menu file. Every field is optional; unset fields
// leave the corresponding option untouched.
type Document struct {
	Logo                  string   `yaml:"logo,omitempty"`
	Position              string   `yaml:"position,omitempty"`
	Colors                []string `yaml:"colors,omitempty"`
	AccentColor           string   `yaml:"accentColor,omitempty"`
	MenuButtonColor       string   `yaml:"menuButtonColor,omitempty"`
	OpenMenuButtonColor   string   `yaml:"openMenuButtonColor,omitempty"`
	ChangeMenuColorOnOpen *bool    `yaml:"changeMenuColorOnOpen,omitempty"`
	CloseOnClickAway      *bool    `yaml:"closeOnClickAway,omitempty"`
	DisplayItemNumbering  *bool    `yaml:"displayItemNumbering,omitempty"`
	Labels                Labels   `yaml:"labels,omitempty"`
	Items                 []Item   `yaml:"items,omitempty"`
}

// ReadDocument loads and validates a menu file.
func ReadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read menu file: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ParseDocument decodes YAML and validates the colours and items it
// declares.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse menu file: %w", err)
	}
	if err := doc.validateColors(); err != nil {
		return Document{}, err
	}
	if err := ValidateItems(doc.Items); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// ValidateColor checks that value is a #rgb or #rrggbb hex colour.
func ValidateColor(name, value string) error {
	if _, err := colorful.Hex(value); err != nil {
		return fmt.Errorf("%s: invalid colour %q: %w", name, value, err)
	}
	return nil
}

func (d Document) validateColors() error {
	named := []struct{ name, value string }{
		{"accentColor", d.AccentColor},
		{"menuButtonColor", d.MenuButtonColor},
		{"openMenuButtonColor", d.OpenMenuButtonColor},
	}
	for _, c := range named {
		if c.value == "" {
			continue
		}
		if err := ValidateColor(c.name, c.value); err != nil {
			return err
		}
	}
	for i, c := range d.Colors {
		if err := ValidateColor(fmt.Sprintf("colors[%d]", i), c); err != nil {
			return err
		}
	}
	return nil
}

// ValidateItems checks labels, links and requirements.
func ValidateItems(items []Item) error {
	for i, item := range items {
		if strings.TrimSpace(item.Label) == "" {
			return fmt.Errorf("item %d: label is required", i)
		}
		if !item.HasSubmenu() && !strings.HasPrefix(item.Link, "/") {
			return fmt.Errorf("item %q: link must start with / (got %q)", item.Label, item.Link)
		}
		switch item.Requires {
		case RequireNone, RequireSignedIn, RequireAdmin:
		default:
			return fmt.Errorf("item %q: unknown requirement %q", item.Label, item.Requires)
		}
		for j, sub := range item.Submenu {
			if strings.TrimSpace(sub.Label) == "" {
				return fmt.Errorf("item %q: submenu entry %d has no label", item.Label, j)
			}
			if !strings.HasPrefix(sub.Link, "/") {
				return fmt.Errorf("item %q: submenu link must start with / (got %q)", item.Label, sub.Link)
			}
		}
	}
	return nil
}
