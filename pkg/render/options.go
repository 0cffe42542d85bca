package render

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultPadding is the outer padding applied when the embedding page does not
// override it.
const DefaultPadding = "24px"

// paddingPattern accepts a numeric value with a CSS length unit, or bare 0.
// This is the validation gate for the public `padding` query parameter.
var paddingPattern = regexp.MustCompile(`^(0|\d+(\.\d+)?(px|em|rem|%|vw|vh))$`)

// Options carry per-request rendering inputs that are not part of the stored
// definition.
type Options struct {
	// Locale selects the translation catalog; empty means the definition's
	// default language.
	Locale string
	// Padding overrides the outer padding of the rendered form. Must have
	// passed ValidatePadding.
	Padding string
	// Values pre-populates rendered controls keyed by submission key, used by
	// the builder preview to restore in-progress input.
	Values map[string]string
}

// ValidatePadding checks a padding override against the accepted pattern and
// returns the value to use.
func ValidatePadding(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPadding, nil
	}
	if !paddingPattern.MatchString(raw) {
		return "", fmt.Errorf("render: invalid padding %q", raw)
	}
	return raw, nil
}
