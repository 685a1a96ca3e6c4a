// Package theme defines the color palette and its optional override
// file.
package theme

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines customizable colors for rendering.
type Theme struct {
	CommentColor string `json:"commentColor"`
	HeaderColor  string `json:"headerColor"`
	DirtyColor   string `json:"dirtyColor"`
	DividerColor string `json:"dividerColor"`
}

func darkTheme() Theme {
	return Theme{
		CommentColor: "108",
		HeaderColor:  "63",
		DirtyColor:   "214",
		DividerColor: "240",
	}
}

func lightTheme() Theme {
	return Theme{
		CommentColor: "22",
		HeaderColor:  "27",
		DirtyColor:   "166",
		DividerColor: "244",
	}
}

// DefaultTheme returns the dark palette.
func DefaultTheme() Theme {
	return darkTheme()
}

// GetTheme returns the requested base theme.
func GetTheme(name string) Theme {
	switch name {
	case "light":
		return lightTheme()
	default:
		return darkTheme()
	}
}

// LoadThemeFromRoot merges .replacium/theme.json at root over the
// dark defaults. Missing or malformed files fall back silently.
func LoadThemeFromRoot(root string) Theme {
	t := DefaultTheme()
	path := filepath.Join(root, ".replacium", "theme.json")
	b, err := os.ReadFile(path)
	if err != nil {
		return t
	}
	var u Theme
	if err := json.Unmarshal(b, &u); err != nil {
		return t
	}
	if u.CommentColor != "" {
		t.CommentColor = u.CommentColor
	}
	if u.HeaderColor != "" {
		t.HeaderColor = u.HeaderColor
	}
	if u.DirtyColor != "" {
		t.DirtyColor = u.DirtyColor
	}
	if u.DividerColor != "" {
		t.DividerColor = u.DividerColor
	}
	return t
}

func (t Theme) CommentText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.CommentColor)).Render(s)
}

func (t Theme) HeaderText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.HeaderColor)).Render(s)
}

func (t Theme) DirtyText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DirtyColor)).Render(s)
}

func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DividerColor)).Render(s)
}
