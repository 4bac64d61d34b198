package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
)

// GenerateDefaultContent renders the default settings as a TOML document
// with every value commented out, so a generated config file changes
// nothing until the user uncomments a line.
func GenerateDefaultContent() (string, error) {
	raw, err := gotoml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("failed to marshal default settings: %w", err)
	}

	var b strings.Builder
	b.WriteString("# debrief configuration\n")
	b.WriteString("# Uncomment a line to override the default value.\n")
	b.WriteString("# Environment variables (DEBRIEF_*) take priority over this file.\n\n")
	b.WriteString(commentOutValues(string(raw)))
	return b.String(), nil
}

// WriteDefault writes the commented default configuration to path, creating
// parent directories as needed. Refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	content, err := GenerateDefaultContent()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// commentOutValues comments every assignment line of a TOML document,
// leaving blank lines, existing comments, and section headers untouched.
func commentOutValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
