package catalog

import (
	"os"

	"github.com/dmitrymomot/formkit/pkg/config"
)

// Settings configure a catalog from the environment.
type Settings struct {
	Locale string `env:"FORMKIT_LOCALE" envDefault:"en"`
	Dir    string `env:"FORMKIT_CATALOG_DIR"`
}

// FromEnv builds a catalog using FORMKIT_LOCALE as the fallback locale and,
// when FORMKIT_CATALOG_DIR is set, loads every catalog file from that
// directory. Explicit options are applied after the environment, so they
// win.
func FromEnv(opts ...Option) (*Catalog, error) {
	var s Settings
	if err := config.Load(&s); err != nil {
		return nil, err
	}

	c := New(append([]Option{WithFallback(s.Locale)}, opts...)...)
	if s.Dir != "" {
		if err := c.LoadDir(os.DirFS(s.Dir), "."); err != nil {
			return nil, err
		}
	}
	return c, nil
}
