package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyDatabasePath      = "database.path"
	KeySummaryWindowDays = "summary.window_days"
	KeyProjectDefaults   = "projects.defaults"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Summary  SummaryConfig  `mapstructure:"summary"`
	Projects ProjectsConfig `mapstructure:"projects"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type SummaryConfig struct {
	// WindowDays is the default inclusive width of the summary date window,
	// ending today.
	WindowDays int `mapstructure:"window_days" validate:"gte=1,lte=366"`
}

type ProjectsConfig struct {
	// Defaults seed the project registry on first use.
	Defaults []string `mapstructure:"defaults"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# timecard configuration
database:
  path: "./timecard.db"

summary:
  # Default date window for "timecard summary": the last N days ending today.
  window_days: 14

projects:
  # Seeded into the project registry on first use.
  defaults:
    - "Lunch"
    - "Meetings"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateProjectDefaults(cfg.Projects.Defaults); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, "./timecard.db")
	v.SetDefault(KeySummaryWindowDays, 14)
	v.SetDefault(KeyProjectDefaults, []string{"Lunch", "Meetings"})
}

func validateProjectDefaults(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return fmt.Errorf("validation failed: projects.defaults[%d] must not be empty", i)
		}
		key := strings.ToLower(trimmed)
		if _, exists := seen[key]; exists {
			return fmt.Errorf("validation failed: duplicate default project %q", name)
		}
		seen[key] = struct{}{}
	}
	return nil
}
