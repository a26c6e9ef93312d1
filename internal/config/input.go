package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan settings files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads settings from a YAML or JSON file. The format follows the extension;
// anything other than .json is read as YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if strings.EqualFold(filepath.Ext(filename), ".json") {
		return ip.ParseJSON(data)
	}
	return ip.ParseYAML(data)
}

// ParseYAML decodes and validates YAML settings.
func (ip *InputParser) ParseYAML(data []byte) (*domain.Settings, error) {
	var settings domain.Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateSettings(&settings); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return &settings, nil
}

// ParseJSON decodes and validates JSON settings.
func (ip *InputParser) ParseJSON(data []byte) (*domain.Settings, error) {
	var settings domain.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if err := ip.ValidateSettings(&settings); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return &settings, nil
}

// ValidateSettings validates the loaded settings, including every configured phase.
func (ip *InputParser) ValidateSettings(settings *domain.Settings) error {
	if err := calculation.ValidateSettings(settings); err != nil {
		return err
	}

	for _, in := range calculation.PhaseInputs(settings) {
		if err := calculation.ValidateParameters(in.Params); err != nil {
			return fmt.Errorf("phase %s validation failed: %w", in.Phase, err)
		}
		if err := ip.validateBand(settings.Phases[in.Phase].SavingsBand); err != nil {
			return fmt.Errorf("phase %s validation failed: %w", in.Phase, err)
		}
	}
	return nil
}

func (ip *InputParser) validateBand(band *domain.SavingsBand) error {
	if band == nil {
		return nil
	}
	if band.Min.IsNegative() {
		return fmt.Errorf("%w: savings band minimum cannot be negative", calculation.ErrInvalidParameters)
	}
	if !band.Max.IsZero() && band.Max.LessThan(band.Min) {
		return fmt.Errorf("%w: savings band maximum %s is below minimum %s",
			calculation.ErrInvalidParameters, band.Max, band.Min)
	}
	return nil
}

// SaveSettings writes settings as YAML.
func (ip *InputParser) SaveSettings(filename string, settings *domain.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// DefaultSettings returns the settings a new user starts with.
func DefaultSettings() *domain.Settings {
	return &domain.Settings{
		Age:                    30,
		AnnualSalary:           decimal.NewFromInt(2500000),
		AnnualExpense:          decimal.NewFromInt(600000),
		AnnualInflationPercent: decimal.NewFromInt(6),
		InflationEnabled:       false,
		Phases: map[domain.PhaseName]domain.PhaseSettings{
			domain.PhaseAccumulation: {
				MonthlyContribution:     decimal.NewFromInt(30000),
				AnnualReturnRatePercent: decimal.NewFromInt(12),
				TargetMultiple:          decimal.NewFromInt(5),
			},
			domain.PhaseGrowth: {
				MonthlyContribution:     decimal.NewFromInt(30000),
				AnnualReturnRatePercent: decimal.NewFromInt(12),
				TargetMultiple:          decimal.NewFromInt(25),
			},
			domain.PhaseAbundant: {
				MonthlyContribution:     decimal.Zero,
				AnnualReturnRatePercent: decimal.NewFromInt(12),
				TargetMultiple:          decimal.NewFromInt(50),
			},
		},
	}
}
