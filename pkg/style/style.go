// Package style derives the embedded stylesheet from layout settings and the
// accent color. Compile is a pure function: same settings, same stylesheet.
package style

import (
	"fmt"
	"strings"

	"github.com/chauffeurkit/bookform/pkg/config"
)

// Compile renders the full stylesheet for a compiled form document.
func Compile(layout config.LayoutSettings, accentColor string) string {
	accent := normalizeHex(accentColor, config.DefaultAccentColor)
	tint := rgba(accent, 0.12)
	dark := layout.DarkMode != nil && *layout.DarkMode

	var b strings.Builder
	b.Grow(4096)

	fmt.Fprintf(&b, `:root {
  --bf-accent: %s;
  --bf-accent-tint: %s;
  --bf-radius: %dpx;
  --bf-bg: %s;
  --bf-bg-dark: %s;
  --bf-text: %s;
  --bf-muted: %s;
  --bf-border: %s;
}
`, accent, tint, layout.CornerRadius, layout.LightBackground, layout.DarkBackground,
		pick(dark, "#f9fafb", "#111827"),
		pick(dark, "#9ca3af", "#6b7280"),
		pick(dark, "#374151", "#e5e7eb"))

	b.WriteString(`
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, "Segoe UI", Roboto, sans-serif; color: var(--bf-text); }
.bf-container {
  background: ` + pick(dark, "var(--bf-bg-dark)", "var(--bf-bg)") + `;
  border-radius: var(--bf-radius);
  padding: var(--bf-padding, 24px);
`)
	if layout.ContainerStyle == "flat" {
		b.WriteString("  border: 1px solid var(--bf-border);\n")
	} else {
		b.WriteString("  box-shadow: 0 4px 16px rgba(0, 0, 0, 0.08);\n")
	}
	b.WriteString("}\n")

	b.WriteString(`
.bf-field { display: grid; gap: 6px; margin-bottom: 14px; }
.bf-field label { font-size: 14px; font-weight: 500; }
.bf-field .bf-optional { color: var(--bf-muted); font-weight: 400; }
.bf-field .bf-required { color: #dc2626; }
.bf-input, .bf-select, .bf-textarea {
  width: 100%;
  padding: 10px 12px;
  font-size: 15px;
  border: 1px solid var(--bf-border);
  border-radius: var(--bf-radius);
  background: transparent;
  color: inherit;
}
.bf-input:focus, .bf-select:focus, .bf-textarea:focus {
  outline: none;
  border-color: var(--bf-accent);
  box-shadow: 0 0 0 3px var(--bf-accent-tint);
}
.bf-clear { position: absolute; right: 8px; top: 50%; transform: translateY(-50%); border: none; background: none; cursor: pointer; color: var(--bf-muted); display: none; }
.bf-input-wrap { position: relative; }
.bf-input-wrap.bf-has-value .bf-clear { display: block; }
.bf-address-widget { min-height: 44px; }
.bf-error { color: #dc2626; font-size: 14px; margin: 8px 0; min-height: 1em; }
`)

	// Button skins. Primary and secondary actions share the same skin so the
	// two styles never mix inside one document.
	if layout.ButtonStyle == "outline" {
		b.WriteString(`
.bf-btn { border-radius: var(--bf-radius); padding: 10px 22px; font-size: 15px; cursor: pointer; background: transparent; border: 2px solid var(--bf-accent); color: var(--bf-accent); }
.bf-btn:hover { background: var(--bf-accent-tint); }
.bf-btn-secondary { border-color: var(--bf-border); color: var(--bf-muted); }
`)
	} else {
		b.WriteString(`
.bf-btn { border-radius: 9999px; padding: 10px 22px; font-size: 15px; cursor: pointer; background: var(--bf-accent); border: 1px solid var(--bf-accent); color: #fff; }
.bf-btn:hover { filter: brightness(1.08); }
.bf-btn-secondary { background: transparent; color: var(--bf-accent); }
`)
	}
	b.WriteString(".bf-btn:disabled { opacity: 0.55; cursor: not-allowed; }\n")
	fmt.Fprintf(&b, ".bf-actions { display: flex; gap: 10px; justify-content: %s; margin-top: 18px; }\n",
		buttonJustify(layout.ButtonPosition))

	b.WriteString(`
.bf-progress { display: flex; gap: 4px; margin-bottom: 20px; }
.bf-progress-step { flex: 1; text-align: center; font-size: 13px; color: var(--bf-muted); padding-top: 8px; border-top: 3px solid var(--bf-border); }
.bf-progress-step.bf-active { color: var(--bf-accent); border-top-color: var(--bf-accent); font-weight: 600; }
.bf-progress-step.bf-done { border-top-color: var(--bf-accent); }
.bf-type-selector { display: flex; flex-wrap: wrap; gap: 8px; margin-bottom: 18px; }
.bf-type-btn { border: 1px solid var(--bf-border); border-radius: var(--bf-radius); background: transparent; color: inherit; padding: 8px 14px; cursor: pointer; }
.bf-type-btn.bf-active { border-color: var(--bf-accent); background: var(--bf-accent-tint); color: var(--bf-accent); }
.bf-vehicle-card { display: flex; gap: 12px; align-items: center; border: 1px solid var(--bf-border); border-radius: var(--bf-radius); padding: 12px; margin-bottom: 10px; cursor: pointer; }
.bf-vehicle-card.bf-selected { border-color: var(--bf-accent); background: var(--bf-accent-tint); }
.bf-payment-btn { border: 1px solid var(--bf-border); border-radius: var(--bf-radius); background: transparent; color: inherit; padding: 10px 16px; cursor: pointer; margin-right: 8px; }
.bf-payment-btn.bf-selected { border-color: var(--bf-accent); background: var(--bf-accent-tint); }
.bf-fare { font-size: 18px; font-weight: 600; margin: 14px 0; }
.bf-extra-row { display: flex; justify-content: space-between; align-items: center; margin-bottom: 8px; }
.bf-qty { display: inline-flex; gap: 8px; align-items: center; }
.bf-qty button { width: 28px; height: 28px; border-radius: 50%; border: 1px solid var(--bf-border); background: transparent; color: inherit; cursor: pointer; }
.bf-waypoint-row { display: flex; gap: 8px; align-items: center; margin: 8px 0; }
.bf-add-waypoint { border: 1px dashed var(--bf-accent); color: var(--bf-accent); background: transparent; border-radius: var(--bf-radius); padding: 6px 12px; cursor: pointer; font-size: 13px; }
.bf-popover { position: absolute; z-index: 20; background: ` + pick(dark, "var(--bf-bg-dark)", "var(--bf-bg)") + `; border: 1px solid var(--bf-border); border-radius: var(--bf-radius); box-shadow: 0 8px 24px rgba(0, 0, 0, 0.12); padding: 12px; }
.bf-summary-row { display: flex; justify-content: space-between; gap: 10px; padding: 6px 0; border-bottom: 1px solid var(--bf-border); font-size: 14px; }
.bf-summary-row span:first-child { color: var(--bf-muted); }
.bf-btn-link { border: none; background: none; color: var(--bf-accent); cursor: pointer; font-size: 13px; padding: 0; }
.bf-header { display: flex; align-items: center; gap: 12px; margin-bottom: 16px; }
.bf-logo { max-height: 40px; }
.bf-title { font-size: 20px; margin: 0; flex: 1; }
.bf-language { width: auto; }
.bf-step-title { font-size: 17px; margin: 0 0 12px; }
.bf-notes ul { margin: 0; padding-left: 18px; color: var(--bf-muted); font-size: 14px; }
.bf-confirmation { font-size: 16px; text-align: center; padding: 24px 0; }
.bf-step { display: none; }
.bf-step.bf-current { display: block; }
.bf-hidden { display: none !important; }

@media (max-width: 480px) {
  .bf-popover { position: fixed; left: 0; right: 0; bottom: 0; width: 100%; border-radius: var(--bf-radius) var(--bf-radius) 0 0; }
  .bf-actions { flex-direction: column; }
  .bf-btn { width: 100%; }
}
`)

	return b.String()
}

func buttonJustify(position string) string {
	switch position {
	case "left":
		return "flex-start"
	case "center":
		return "center"
	default:
		return "flex-end"
	}
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// normalizeHex expands 3-digit hex colors and falls back when unparseable.
func normalizeHex(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) == 4 && raw[0] == '#' {
		expanded := []byte{'#', raw[1], raw[1], raw[2], raw[2], raw[3], raw[3]}
		raw = string(expanded)
	}
	if len(raw) != 7 || raw[0] != '#' {
		return fallback
	}
	for _, ch := range raw[1:] {
		if !isHexDigit(byte(ch)) {
			return fallback
		}
	}
	return strings.ToLower(raw)
}

// rgba converts a normalized #rrggbb color into an rgba() tint.
func rgba(hex string, alpha float64) string {
	r := hexByte(hex[1], hex[2])
	g := hexByte(hex[3], hex[4])
	b := hexByte(hex[5], hex[6])
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, alpha)
}

func hexByte(hi, lo byte) int {
	return hexDigit(hi)<<4 | hexDigit(lo)
}

func hexDigit(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	}
	return 0
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
