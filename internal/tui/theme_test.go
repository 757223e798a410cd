package tui

import (
	"testing"

	"github.com/venalora/stillpoint/internal/models"
)

func TestSetTheme(t *testing.T) {
	resetTheme(t)

	SetTheme(models.ThemeBlue)
	if CurrentTheme.Name != "Blue" {
		t.Fatalf("theme = %q, want Blue", CurrentTheme.Name)
	}

	SetTheme(models.ThemeName("neon"))
	if CurrentTheme.Name != "Blue" {
		t.Fatal("unknown theme replaced the active one")
	}
}

func TestEveryThemeIsComplete(t *testing.T) {
	for _, name := range models.ThemeNames {
		theme, ok := Themes[name]
		if !ok {
			t.Fatalf("no theme registered for %q", name)
		}
		if theme.Name == "" {
			t.Fatalf("theme %q has no display name", name)
		}
	}
}
