package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/crta-dev/crta/internal/errors"
)

// Template describes one entry in the catalog.
type Template struct {
	// Key is the identifier used by flags and prompts.
	Key string

	// DisplayName is the human-readable name shown in menus.
	DisplayName string

	// Description is a one-line summary shown next to the name.
	Description string

	// Dir is the template's source directory on disk.
	Dir string
}

// Catalog is an immutable, ordered set of templates. It is built once at
// startup and passed explicitly into resolution and materialization so
// tests can substitute their own tables.
type Catalog struct {
	templates  []Template
	defaultKey string
}

// New builds a catalog from an ordered list of templates.
func New(templates []Template, defaultKey string) Catalog {
	return Catalog{
		templates:  append([]Template(nil), templates...),
		defaultKey: defaultKey,
	}
}

// Builtin returns the catalog of templates shipped with the tool, with
// source directories bound under root.
func Builtin(root string) Catalog {
	return New([]Template{
		{
			Key:         "jsx-basic",
			DisplayName: "React (JSX, basic)",
			Description: "Minimal React + Tailwind starter with App Router",
			Dir:         filepath.Join(root, "jsx-basic"),
		},
		{
			Key:         "javascript",
			DisplayName: "React (JSX)",
			Description: "Full React + Tailwind starter with routing, context, and hooks",
			Dir:         filepath.Join(root, "jsx"),
		},
		{
			Key:         "typescript",
			DisplayName: "React (TSX)",
			Description: "Full React + Tailwind starter in TypeScript",
			Dir:         filepath.Join(root, "tsx"),
		},
	}, "javascript")
}

// DefaultRoot returns the templates directory shipped next to the
// executable. Falls back to "templates" in the working directory when the
// executable path cannot be determined.
func DefaultRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "templates"
	}
	return filepath.Join(filepath.Dir(exe), "templates")
}

// Get returns the template for a key.
func (c Catalog) Get(key string) (Template, error) {
	for _, t := range c.templates {
		if t.Key == key {
			return t, nil
		}
	}
	return Template{}, errors.New("E210").
		WithDetail("Template '" + key + "' not found").
		WithSuggestion("Available templates: " + strings.Join(c.Keys(), ", "))
}

// Templates returns all templates in catalog order.
func (c Catalog) Templates() []Template {
	return append([]Template(nil), c.templates...)
}

// Keys returns all template keys in catalog order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c.templates))
	for _, t := range c.templates {
		keys = append(keys, t.Key)
	}
	return keys
}

// DefaultKey returns the key used when no template is selected.
func (c Catalog) DefaultKey() string {
	return c.defaultKey
}

// Len returns the number of templates.
func (c Catalog) Len() int {
	return len(c.templates)
}
