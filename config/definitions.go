package config

import (
	"fmt"
	"os"
	"strings"

	"worksheet-docs/models"

	"gopkg.in/yaml.v3"
)

// LoadWorksheet reads a worksheet definition file.
func LoadWorksheet(path string) (*models.Worksheet, error) {
	var ws models.Worksheet
	if err := readYAML(path, &ws); err != nil {
		return nil, err
	}

	ws.Title = ResolveEnv(ws.Title)
	ws.Folder = ResolveEnv(ws.Folder)
	if ws.Page.Width == 0 {
		ws.Page.Width = models.DefaultPageWidth
	}
	if ws.Page.Height == 0 {
		ws.Page.Height = models.DefaultPageHeight
	}

	if err := ValidateWorksheet(&ws); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &ws, nil
}

// LoadActivity reads an inquiry activity definition file.
func LoadActivity(path string) (*models.Activity, error) {
	var act models.Activity
	if err := readYAML(path, &act); err != nil {
		return nil, err
	}

	act.Name = ResolveEnv(act.Name)
	for i := range act.Fields {
		act.Fields[i].Value = ResolveEnv(act.Fields[i].Value)
	}

	if err := ValidateActivity(&act); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &act, nil
}

func ValidateWorksheet(ws *models.Worksheet) error {
	if strings.TrimSpace(ws.Title) == "" {
		return fmt.Errorf("%w: worksheet title is required", ErrInvalid)
	}
	if len(ws.Problems) == 0 {
		return fmt.Errorf("%w: worksheet needs at least one problem", ErrInvalid)
	}
	if len(ws.Answers) > 0 && len(ws.Answers) != len(ws.Problems) {
		return fmt.Errorf("%w: %d answers for %d problems", ErrInvalid, len(ws.Answers), len(ws.Problems))
	}
	if ws.Page.Width < 0 || ws.Page.Height < 0 {
		return fmt.Errorf("%w: page size must be positive", ErrInvalid)
	}
	return nil
}

func ValidateActivity(act *models.Activity) error {
	if strings.TrimSpace(act.Name) == "" {
		return fmt.Errorf("%w: activity name is required", ErrInvalid)
	}
	for _, f := range act.Fields {
		if !strings.HasPrefix(f.Placeholder, "{") || !strings.HasSuffix(f.Placeholder, "}") {
			return fmt.Errorf("%w: placeholder %q must be wrapped in braces", ErrInvalid, f.Placeholder)
		}
	}
	return nil
}

// ResolveEnv expands "env:NAME" to the value of NAME. Unset variables
// resolve to the empty string.
func ResolveEnv(value string) string {
	if key, ok := strings.CutPrefix(value, "env:"); ok {
		return os.Getenv(key)
	}
	return value
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read definition %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse definition %s: %w", path, err)
	}
	return nil
}
