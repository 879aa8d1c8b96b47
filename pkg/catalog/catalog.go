package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/rule"
)

// Catalog holds localized message templates keyed by locale and translation
// key, and renders rule violations into user-facing text. Lookup falls back
// to the configured fallback locale, and finally to the violation's authored
// message, so a missing catalog never hides a failure from the user.
type Catalog struct {
	mu           sync.RWMutex
	fallback     string
	translations map[string]map[string]string
	matcher      language.Matcher
	locales      []string
	log          *slog.Logger
}

type settings struct {
	fallback     string
	translations map[string]map[string]string
	log          *slog.Logger
}

// Option configures a Catalog.
type Option func(*settings)

// WithFallback sets the locale used when a lookup misses; defaults to "en".
func WithFallback(locale string) Option {
	return func(s *settings) {
		if locale != "" {
			s.fallback = locale
		}
	}
}

// WithTranslations seeds the catalog with locale -> key -> template entries.
func WithTranslations(translations map[string]map[string]string) Option {
	return func(s *settings) {
		s.translations = translations
	}
}

// WithLogger sets the logger used to report missing translations.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a catalog. Without options it is empty with an "en" fallback,
// which makes Localize pass authored messages through untouched.
func New(opts ...Option) *Catalog {
	cfg := settings{
		fallback: "en",
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Catalog{
		fallback:     cfg.fallback,
		translations: make(map[string]map[string]string),
		log:          cfg.log,
	}
	c.merge(cfg.translations)
	return c
}

// merge folds entries into the catalog and refreshes the locale matcher.
func (c *Catalog) merge(doc map[string]map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for locale, entries := range doc {
		dst := c.translations[locale]
		if dst == nil {
			dst = make(map[string]string, len(entries))
			c.translations[locale] = dst
		}
		for key, tmpl := range entries {
			dst[key] = tmpl
		}
	}
	c.rebuild()
}

// rebuild recomputes the matcher; the caller holds mu. The fallback locale
// sits first so an unmatchable preference resolves to it.
func (c *Catalog) rebuild() {
	others := make([]string, 0, len(c.translations))
	for locale := range c.translations {
		if locale != c.fallback {
			others = append(others, locale)
		}
	}
	sort.Strings(others)

	c.locales = append([]string{c.fallback}, others...)
	tags := make([]language.Tag, len(c.locales))
	for i, locale := range c.locales {
		tags[i] = language.Make(locale)
	}
	c.matcher = language.NewMatcher(tags)
}

// Locales returns the known locales, fallback first.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.locales))
	copy(out, c.locales)
	return out
}

// Match negotiates the best loaded locale for the caller's preferences,
// e.g. the parsed Accept-Language list or the device locale. Unparseable
// preferences are skipped; no match resolves to the fallback locale.
func (c *Catalog) Match(preferred ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	want := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		if tag, err := language.Parse(p); err == nil {
			want = append(want, tag)
		}
	}
	_, index, _ := c.matcher.Match(want...)
	return c.locales[index]
}

// T renders the template stored under key for the given locale,
// interpolating %{name} placeholders from values. A miss falls back to the
// fallback locale, then to the key itself, with a warning logged.
func (c *Catalog) T(locale, key string, values map[string]any) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if tmpl, ok := c.lookup(locale, key); ok {
		return interpolate(tmpl, values)
	}
	c.log.Warn("catalog: missing translation",
		slog.String("locale", locale),
		slog.String("key", key),
	)
	return interpolate(key, values)
}

// Localize renders violations into user-facing messages for the given
// locale, preserving violation order. A violation without a translation key,
// or whose key is not in the catalog, keeps its authored message.
func (c *Catalog) Localize(locale string, vs rule.Violations) []string {
	if vs.IsEmpty() {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(vs))
	for i, v := range vs {
		if v.Key == "" {
			out[i] = v.Message
			continue
		}
		tmpl, ok := c.lookup(locale, v.Key)
		if !ok {
			out[i] = v.Message
			continue
		}
		out[i] = interpolate(tmpl, v.Values)
	}
	return out
}

// lookup finds a template for locale/key, trying the fallback locale second;
// the caller holds mu.
func (c *Catalog) lookup(locale, key string) (string, bool) {
	if entries, ok := c.translations[locale]; ok {
		if tmpl, ok := entries[key]; ok {
			return tmpl, true
		}
	}
	if locale != c.fallback {
		if entries, ok := c.translations[c.fallback]; ok {
			if tmpl, ok := entries[key]; ok {
				return tmpl, true
			}
		}
	}
	return "", false
}

// Placeholders take the form %{name}.
var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func interpolate(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := values[name]; ok {
			return fmt.Sprintf("%v", v)
		}
		return match
	})
}
