package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/growth-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML, JSON or TOML file. The
// format is chosen by extension; anything other than .toml is read as YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration and fills in
// display defaults. Scenario inputs are not checked here: a scenario with
// non-numeric inputs is reported as invalid when it runs.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.ValidateDisplay(&config.Display); err != nil {
		return fmt.Errorf("display settings: %w", err)
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		name := strings.TrimSpace(scenario.Name)
		if name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, name)
		}
		seen[name] = true
	}

	return nil
}

// ValidateDisplay normalizes the locale, defaulting to English, and rejects unknown ones.
func (ip *InputParser) ValidateDisplay(display *domain.DisplaySettings) error {
	locale := strings.ToLower(strings.TrimSpace(display.Locale))
	switch locale {
	case "":
		locale = domain.LocaleEnglish
	case domain.LocaleEnglish, domain.LocaleKorean:
	default:
		return fmt.Errorf("locale must be %q or %q, got %q", domain.LocaleEnglish, domain.LocaleKorean, display.Locale)
	}
	display.Locale = locale
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Display: domain.DisplaySettings{
			Locale: domain.LocaleKorean,
		},
		Scenarios: []domain.Scenario{
			{
				Name:      "savings 2% x5",
				RawInputs: domain.RawInputs{Principal: "1,000,000", Rate: "2", Times: "5"},
			},
			{
				Name:      "monthly 0.5% x12",
				RawInputs: domain.RawInputs{Principal: "30,000,000", Rate: "0.5", Times: "12"},
			},
			{
				Name:      "rate only",
				RawInputs: domain.RawInputs{Rate: "7", Times: "10"},
			},
			{
				Name:      "doubling x3",
				RawInputs: domain.RawInputs{Principal: "50,000,000", Rate: "100", Times: "3"},
			},
		},
	}
}

// SaveConfiguration writes a configuration as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
