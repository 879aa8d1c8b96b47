// Package catalog localizes validation failures.
//
// Rules carry a translation key and values next to their authored message;
// the catalog maps those keys to per-locale templates with %{name}
// placeholders and renders violations into user-facing text. When a key is
// missing, or a rule never had one, the authored message is used as is, so
// localization is always an overlay, never a requirement.
//
// Catalogs are plain YAML documents, locale to key to template:
//
//	en:
//	  validation.required: "%{field} is required"
//	  validation.min_length: "%{field} must be at least %{min} characters"
//
// Locale negotiation uses golang.org/x/text language matching: Match picks
// the best loaded locale for the caller's preference list and resolves to
// the fallback locale otherwise.
//
// # Usage
//
//	c := catalog.New(catalog.WithFallback("en"))
//	if err := c.LoadYAML(raw); err != nil { ... }
//
//	locale := c.Match(deviceLocales...)
//	messages := c.Localize(locale, usernameField.Violations())
//
// FromEnv wires the fallback locale and an optional catalog directory from
// FORMKIT_LOCALE and FORMKIT_CATALOG_DIR.
package catalog
