package style

import (
	"strings"
	"testing"

	"github.com/chauffeurkit/bookform/pkg/config"
)

func baseLayout() config.LayoutSettings {
	return config.LayoutSettings{
		ContainerStyle:  "shadow",
		CornerRadius:    8,
		LightBackground: "#ffffff",
		DarkBackground:  "#111827",
		ButtonStyle:     "filled",
		ButtonPosition:  "right",
	}
}

func TestCompileDeterministic(t *testing.T) {
	layout := baseLayout()
	if Compile(layout, "#2563eb") != Compile(layout, "#2563eb") {
		t.Error("identical inputs must produce identical stylesheets")
	}
}

func TestCompileAccentVariables(t *testing.T) {
	css := Compile(baseLayout(), "#ff0000")
	if !strings.Contains(css, "--bf-accent: #ff0000;") {
		t.Error("accent variable missing")
	}
	if !strings.Contains(css, "rgba(255, 0, 0, 0.12)") {
		t.Error("accent tint not derived from the accent color")
	}
}

func TestCompileShortHexExpands(t *testing.T) {
	css := Compile(baseLayout(), "#F00")
	if !strings.Contains(css, "--bf-accent: #ff0000;") {
		t.Error("3-digit hex should expand to 6 digits")
	}
}

func TestCompileInvalidAccentFallsBack(t *testing.T) {
	css := Compile(baseLayout(), "tomato")
	if !strings.Contains(css, "--bf-accent: "+config.DefaultAccentColor+";") {
		t.Error("invalid accent should use the default")
	}
}

func TestCompileContainerStyles(t *testing.T) {
	flat := baseLayout()
	flat.ContainerStyle = "flat"
	if !strings.Contains(Compile(flat, ""), "border: 1px solid var(--bf-border)") {
		t.Error("flat container should use a border")
	}
	if !strings.Contains(Compile(baseLayout(), ""), "box-shadow") {
		t.Error("shadow container should use a box shadow")
	}
}

func TestCompileButtonSkins(t *testing.T) {
	filled := Compile(baseLayout(), "")
	if !strings.Contains(filled, "border-radius: 9999px") {
		t.Error("filled buttons should be pill shaped")
	}

	outline := baseLayout()
	outline.ButtonStyle = "outline"
	css := Compile(outline, "")
	if !strings.Contains(css, "border: 2px solid var(--bf-accent)") {
		t.Error("outline buttons should carry an accent border")
	}
	if strings.Contains(css, "border-radius: 9999px") {
		t.Error("outline skin must not leak the filled pill radius")
	}
}

func TestCompileButtonPosition(t *testing.T) {
	tests := []struct {
		position string
		want     string
	}{
		{"left", "justify-content: flex-start"},
		{"center", "justify-content: center"},
		{"right", "justify-content: flex-end"},
		{"", "justify-content: flex-end"},
	}
	for _, tc := range tests {
		layout := baseLayout()
		layout.ButtonPosition = tc.position
		if !strings.Contains(Compile(layout, ""), tc.want) {
			t.Errorf("position %q: expected %q in output", tc.position, tc.want)
		}
	}
}

func TestCompileDarkMode(t *testing.T) {
	dark := true
	layout := baseLayout()
	layout.DarkMode = &dark
	css := Compile(layout, "")
	if !strings.Contains(css, "background: var(--bf-bg-dark)") {
		t.Error("dark mode should use the dark background")
	}
	if !strings.Contains(Compile(baseLayout(), ""), "background: var(--bf-bg)") {
		t.Error("light mode should use the light background")
	}
}

func TestCompileResponsiveBreakpoint(t *testing.T) {
	if !strings.Contains(Compile(baseLayout(), ""), "@media (max-width: 480px)") {
		t.Error("mobile breakpoint missing")
	}
}
