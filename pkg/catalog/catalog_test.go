package catalog_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/catalog"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/rule"
)

func TestT(t *testing.T) {
	c := catalog.New(
		catalog.WithFallback("en"),
		catalog.WithTranslations(map[string]map[string]string{
			"en": {
				"validation.required":   "%{field} is required",
				"validation.min_length": "%{field} must be at least %{min} characters",
			},
			"uk": {
				"validation.required": "Поле %{field} обов'язкове",
			},
		}),
	)

	t.Run("renders a template with values", func(t *testing.T) {
		got := c.T("en", "validation.min_length", map[string]any{"field": "username", "min": 3})
		assert.Equal(t, "username must be at least 3 characters", got)
	})

	t.Run("falls back to the fallback locale", func(t *testing.T) {
		got := c.T("uk", "validation.min_length", map[string]any{"field": "username", "min": 3})
		assert.Equal(t, "username must be at least 3 characters", got)
	})

	t.Run("prefers the requested locale", func(t *testing.T) {
		got := c.T("uk", "validation.required", map[string]any{"field": "username"})
		assert.Equal(t, "Поле username обов'язкове", got)
	})

	t.Run("falls back to the key and logs on a total miss", func(t *testing.T) {
		var buf bytes.Buffer
		c := catalog.New(catalog.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

		got := c.T("en", "validation.unknown", nil)
		assert.Equal(t, "validation.unknown", got)
		assert.Contains(t, buf.String(), "missing translation")
	})

	t.Run("keeps unknown placeholders as is", func(t *testing.T) {
		got := c.T("en", "validation.required", map[string]any{"other": 1})
		assert.Equal(t, "%{field} is required", got)
	})
}

func TestLoadYAML(t *testing.T) {
	t.Run("merges documents", func(t *testing.T) {
		c := catalog.New()
		require.NoError(t, c.LoadYAML([]byte("en:\n  a: first\n")))
		require.NoError(t, c.LoadYAML([]byte("en:\n  b: second\nuk:\n  a: перший\n")))

		assert.Equal(t, "first", c.T("en", "a", nil))
		assert.Equal(t, "second", c.T("en", "b", nil))
		assert.Equal(t, "перший", c.T("uk", "a", nil))
	})

	t.Run("later loads override earlier entries", func(t *testing.T) {
		c := catalog.New()
		require.NoError(t, c.LoadYAML([]byte("en:\n  a: old\n")))
		require.NoError(t, c.LoadYAML([]byte("en:\n  a: new\n")))
		assert.Equal(t, "new", c.T("en", "a", nil))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		c := catalog.New()
		err := c.LoadYAML([]byte("en: [not-a-map"))
		assert.ErrorIs(t, err, catalog.ErrInvalidYAML)
	})

	t.Run("rejects empty locale codes", func(t *testing.T) {
		c := catalog.New()
		err := c.LoadYAML([]byte("\"\":\n  a: x\n"))
		assert.ErrorIs(t, err, catalog.ErrEmptyLocale)
	})
}

func TestLoadDir(t *testing.T) {
	t.Run("loads yaml files and skips the rest", func(t *testing.T) {
		fsys := fstest.MapFS{
			"base.yml":   {Data: []byte("en:\n  a: base\n")},
			"extra.yaml": {Data: []byte("uk:\n  a: додаток\n")},
			"notes.txt":  {Data: []byte("ignored")},
		}

		c := catalog.New()
		require.NoError(t, c.LoadDir(fsys, "."))
		assert.Equal(t, "base", c.T("en", "a", nil))
		assert.Equal(t, "додаток", c.T("uk", "a", nil))
	})

	t.Run("fails on a missing directory", func(t *testing.T) {
		c := catalog.New()
		err := c.LoadDir(fstest.MapFS{}, "missing")
		assert.ErrorIs(t, err, catalog.ErrLoadingDir)
	})

	t.Run("reports the offending file", func(t *testing.T) {
		fsys := fstest.MapFS{
			"bad.yml": {Data: []byte("en: [broken")},
		}
		c := catalog.New()
		err := c.LoadDir(fsys, ".")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.yml")
	})
}

func TestMatch(t *testing.T) {
	c := catalog.New(
		catalog.WithFallback("en"),
		catalog.WithTranslations(map[string]map[string]string{
			"en": {"a": "x"},
			"uk": {"a": "x"},
			"de": {"a": "x"},
		}),
	)

	t.Run("picks an exact match", func(t *testing.T) {
		assert.Equal(t, "uk", c.Match("uk"))
	})

	t.Run("resolves regional variants", func(t *testing.T) {
		assert.Equal(t, "de", c.Match("de-AT"))
	})

	t.Run("falls back when nothing matches", func(t *testing.T) {
		assert.Equal(t, "en", c.Match("ja"))
		assert.Equal(t, "en", c.Match())
	})

	t.Run("skips unparseable preferences", func(t *testing.T) {
		assert.Equal(t, "uk", c.Match("!!!", "uk"))
	})

	t.Run("lists locales with the fallback first", func(t *testing.T) {
		assert.Equal(t, []string{"en", "de", "uk"}, c.Locales())
	})
}

func TestLocalize(t *testing.T) {
	c := catalog.New(
		catalog.WithTranslations(map[string]map[string]string{
			"en": {"validation.min_length": "%{field} needs %{min}+ characters"},
		}),
	)

	t.Run("translates known keys and keeps authored messages otherwise", func(t *testing.T) {
		vs := rule.Apply("username", "ab",
			rule.MinLen(3, "Username is too short."),
			rule.Func("Custom failure.", func(string) bool { return false }),
		)
		require.Len(t, vs, 2)

		got := c.Localize("en", vs)
		assert.Equal(t, []string{
			"username needs 3+ characters",
			"Custom failure.",
		}, got)
	})

	t.Run("keeps the authored message when the key is unknown", func(t *testing.T) {
		vs := rule.Apply("username", "", rule.NotEmpty("A username is required."))
		got := c.Localize("en", vs)
		assert.Equal(t, []string{"A username is required."}, got)
	})

	t.Run("returns nil for no violations", func(t *testing.T) {
		assert.Nil(t, c.Localize("en", nil))
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("configures fallback and loads the catalog directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "messages.yml"),
			[]byte("de:\n  validation.required: \"%{field} ist erforderlich\"\n"),
			0o644,
		))

		config.ResetCache()
		t.Setenv("FORMKIT_LOCALE", "de")
		t.Setenv("FORMKIT_CATALOG_DIR", dir)

		c, err := catalog.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "de", c.Match("fr"))
		assert.Equal(t, "username ist erforderlich",
			c.T("de", "validation.required", map[string]any{"field": "username"}))
	})
}
