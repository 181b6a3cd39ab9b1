package starclass

import (
	"context"
	"strings"
	"testing"
)

func TestToolSetNamesAndOrder(t *testing.T) {
	ts := NewServer().ToolSet()

	want := []string{"get_star_info", "classify_star", "get_mood"}
	tools := ts.Tools()
	if len(tools) != len(want) {
		t.Fatalf("got %d tools, want %d", len(tools), len(want))
	}
	for i, tool := range tools {
		if tool.Name != want[i] {
			t.Errorf("tools[%d] = %q, want %q", i, tool.Name, want[i])
		}
	}
}

func TestGetStarInfoKnownStar(t *testing.T) {
	ts := NewServer().ToolSet()

	content, err := ts.Call(context.Background(), "get_star_info", map[string]any{"star_name": "Betelgeuse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(content) != 1 {
		t.Fatalf("got %d content items", len(content))
	}
	text := content[0].Text
	for _, want := range []string{"Betelgeuse", "M-type supergiant", "3500K", "100000 solar luminosities"} {
		if !strings.Contains(text, want) {
			t.Errorf("result missing %q:\n%s", want, text)
		}
	}
}

func TestGetStarInfoUnknownStar(t *testing.T) {
	ts := NewServer().ToolSet()

	content, err := ts.Call(context.Background(), "get_star_info", map[string]any{"star_name": "Proxima"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := content[0].Text
	if !strings.Contains(text, "no information") {
		t.Errorf("got %q", text)
	}
	// The fallback lists the catalog so the caller can retry.
	for _, name := range []string{"Sun", "Sirius", "Betelgeuse", "Vega"} {
		if !strings.Contains(text, name) {
			t.Errorf("fallback missing %q:\n%s", name, text)
		}
	}
}

func TestClassifyStarSpectralClasses(t *testing.T) {
	tests := []struct {
		temperature float64
		class       string
		color       string
	}{
		{35000, "O", "blue"},
		{30000, "O", "blue"},
		{15000, "B", "blue-white"},
		{9000, "A", "white"},
		{6500, "F", "yellow-white"},
		{5778, "G", "yellow"},
		{4000, "K", "orange"},
		{3000, "M", "red"},
	}

	for _, tt := range tests {
		class, color := spectralClass(tt.temperature)
		if class != tt.class || color != tt.color {
			t.Errorf("spectralClass(%g) = %q/%q, want %q/%q", tt.temperature, class, color, tt.class, tt.color)
		}
	}
}

func TestClassifyStarLuminosityClasses(t *testing.T) {
	tests := []struct {
		luminosity float64
		want       string
	}{
		{100000, "supergiant"},
		{10000, "supergiant"},
		{5000, "bright giant"},
		{500, "giant"},
		{1, "main sequence"},
		{0.1, "main sequence"},
		{0.01, "white dwarf"},
	}

	for _, tt := range tests {
		if got := luminosityClass(tt.luminosity); got != tt.want {
			t.Errorf("luminosityClass(%g) = %q, want %q", tt.luminosity, got, tt.want)
		}
	}
}

func TestClassifyStarResultText(t *testing.T) {
	ts := NewServer().ToolSet()

	content, err := ts.Call(context.Background(), "classify_star", map[string]any{
		"temperature": float64(3500),
		"luminosity":  float64(100000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := content[0].Text
	for _, want := range []string{"Spectral class: M", "Color: red", "Type: supergiant", "Cooler than the Sun", "Brighter than the Sun"} {
		if !strings.Contains(text, want) {
			t.Errorf("result missing %q:\n%s", want, text)
		}
	}
}

func TestClassifyStarRejectsNonPositiveValues(t *testing.T) {
	ts := NewServer().ToolSet()

	tests := []map[string]any{
		{"temperature": float64(0), "luminosity": float64(1)},
		{"temperature": float64(5778), "luminosity": float64(0)},
		{"temperature": float64(-100), "luminosity": float64(1)},
	}

	for _, args := range tests {
		content, err := ts.Call(context.Background(), "classify_star", args)
		if err != nil {
			t.Fatalf("invalid values must not be a handler error, got %v", err)
		}
		text := content[0].Text
		if !strings.HasPrefix(text, "Error:") {
			t.Errorf("got %q, want an error text", text)
		}
		if strings.Contains(text, "Inf") {
			t.Errorf("comparison must not print infinities, got %q", text)
		}
	}
}

func TestClassifyStarMissingParameters(t *testing.T) {
	ts := NewServer().ToolSet()

	content, err := ts.Call(context.Background(), "classify_star", map[string]any{"temperature": float64(5000)})
	if err != nil {
		t.Fatalf("missing parameters must not be a handler error, got %v", err)
	}
	if !strings.HasPrefix(content[0].Text, "Error:") {
		t.Errorf("got %q", content[0].Text)
	}
}

func TestGetMood(t *testing.T) {
	s := NewServer()
	s.pick = func(int) int { return 0 }
	ts := s.ToolSet()

	content, err := ts.Call(context.Background(), "get_mood", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(content[0].Text, "Ada") {
		t.Errorf("got %q", content[0].Text)
	}

	content, err = ts.Call(context.Background(), "get_mood", map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(content[0].Text, "world") {
		t.Errorf("default name must be used, got %q", content[0].Text)
	}
}
