// Package i18n provides the translation lookup used by the compiler and the
// runtime payload: a two-level catalog keyed by locale then message key, with
// English as the final fallback.
package i18n

import "strings"

// Catalog maps locale -> message key -> message.
type Catalog map[string]map[string]string

// Lookup resolves a key against a locale, falling back from the exact locale
// to its base language ("de-AT" -> "de") and finally to English.
func (c Catalog) Lookup(locale, key string) (string, bool) {
	if c == nil || key == "" {
		return "", false
	}
	for _, candidate := range localeChain(locale) {
		if messages, ok := c[candidate]; ok {
			if message, ok := messages[key]; ok && message != "" {
				return message, true
			}
		}
	}
	return "", false
}

// T resolves a key and returns fallback when no catalog entry exists.
func (c Catalog) T(locale, key, fallback string) string {
	if message, ok := c.Lookup(locale, key); ok {
		return message
	}
	return fallback
}

// Placeholder resolves a field placeholder: explicit value first, then the
// `placeholder_<key>` catalog entry, then a derived "Enter <label>" string.
func (c Catalog) Placeholder(locale, explicit, fieldKey, label string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	if fieldKey != "" {
		if message, ok := c.Lookup(locale, "placeholder_"+fieldKey); ok {
			return message
		}
	}
	prefix := c.T(locale, "placeholder.enter", "Enter")
	return prefix + " " + strings.ToLower(label)
}

// Merge overlays other on top of c and returns the result; other wins on
// conflicts. Neither input is mutated.
func (c Catalog) Merge(other Catalog) Catalog {
	out := make(Catalog, len(c)+len(other))
	for locale, messages := range c {
		clone := make(map[string]string, len(messages))
		for key, message := range messages {
			clone[key] = message
		}
		out[locale] = clone
	}
	for locale, messages := range other {
		if out[locale] == nil {
			out[locale] = make(map[string]string, len(messages))
		}
		for key, message := range messages {
			out[locale][key] = message
		}
	}
	return out
}

func localeChain(locale string) []string {
	locale = strings.TrimSpace(locale)
	chain := make([]string, 0, 3)
	if locale != "" {
		chain = append(chain, locale)
		if base, _, found := strings.Cut(locale, "-"); found && base != "" {
			chain = append(chain, base)
		}
	}
	if locale != "en" {
		chain = append(chain, "en")
	}
	return chain
}
