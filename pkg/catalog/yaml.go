package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML merges a YAML document of the form
//
//	en:
//	  validation.required: "%{field} is required"
//	uk:
//	  validation.required: "Поле %{field} обов'язкове"
//
// into the catalog. Later loads override earlier entries for the same
// locale and key.
func (c *Catalog) LoadYAML(data []byte) error {
	var doc map[string]map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Join(ErrInvalidYAML, err)
	}
	for locale := range doc {
		if locale == "" {
			return ErrEmptyLocale
		}
	}
	c.merge(doc)
	return nil
}

// LoadDir loads every .yml/.yaml file found directly under dir in fsys.
// Files load in lexical order, so later files override earlier ones.
func (c *Catalog) LoadDir(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return errors.Join(ErrLoadingDir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", name, err)
		}
		if err := c.LoadYAML(data); err != nil {
			return fmt.Errorf("catalog: load %s: %w", name, err)
		}
	}
	return nil
}
