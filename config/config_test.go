package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_AppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(`{}`))
	if err != nil {
		t.Fatalf("expected config to validate: %v", err)
	}

	if cfg.Database.Path != "./timecard.db" {
		t.Fatalf("unexpected database path: %s", cfg.Database.Path)
	}
	if cfg.Summary.WindowDays != 14 {
		t.Fatalf("unexpected window days: %d", cfg.Summary.WindowDays)
	}
	if len(cfg.Projects.Defaults) != 2 {
		t.Fatalf("unexpected default projects: %v", cfg.Projects.Defaults)
	}
}

func TestValidateYAMLContent_ExampleTemplateValidates(t *testing.T) {
	t.Parallel()

	if _, err := ValidateYAMLContent([]byte(ExampleYAML())); err != nil {
		t.Fatalf("expected example template to validate: %v", err)
	}
}

func TestValidateYAMLContent_RejectsZeroWindow(t *testing.T) {
	t.Parallel()

	content := []byte(`summary:
  window_days: 0
`)

	if _, err := ValidateYAMLContent(content); err == nil {
		t.Fatalf("expected validation error for window_days 0")
	}
}

func TestValidateYAMLContent_RejectsDuplicateDefaultProjects(t *testing.T) {
	t.Parallel()

	content := []byte(`projects:
  defaults:
    - "Lunch"
    - "lunch"
`)

	_, err := ValidateYAMLContent(content)
	if err == nil {
		t.Fatalf("expected validation error for duplicate default project")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateYAMLContent_RejectsEmptyDefaultProject(t *testing.T) {
	t.Parallel()

	content := []byte(`projects:
  defaults:
    - "  "
`)

	if _, err := ValidateYAMLContent(content); err == nil {
		t.Fatalf("expected validation error for empty default project")
	}
}
