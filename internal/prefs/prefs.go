// Package prefs persists editor defaults to .replacium/prefs.yaml
// under the edited root.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prefs represents persisted editor preferences.
type Prefs struct {
	CaseSensitive bool `yaml:"caseSensitive"`
	WholeWord     bool `yaml:"wholeWord"`
	Regex         bool `yaml:"regex"`
	LeftWidth     int  `yaml:"leftWidth,omitempty"`
}

func prefsPath(root string) string {
	return filepath.Join(root, ".replacium", "prefs.yaml")
}

// Load reads preferences from the root's dot directory. A missing or
// malformed file yields zero-value defaults.
func Load(root string) Prefs {
	var p Prefs
	b, err := os.ReadFile(prefsPath(root))
	if err != nil {
		return p
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Prefs{}
	}
	if p.LeftWidth < 0 {
		p.LeftWidth = 0
	}
	return p
}

// Save writes preferences, creating the dot directory if needed.
func Save(root string, p Prefs) error {
	b, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	path := prefsPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("prefs dir: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
