// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the builder configuration that can be loaded from a JSON
// file. All fields are optional; missing values fall back to Defaults.
type Config struct {
	// Sources
	OOHXMLURL   string `json:"ooh_xml_url,omitempty" validate:"omitempty,url"`   // OOH XML compilation URL
	OEWSPageURL string `json:"oews_page_url,omitempty" validate:"omitempty,url"` // OEWS page to scan for the workbook link

	// Output
	Output string `json:"output,omitempty"` // Path of the generated careers.json

	// Tuition+fees rates (annual, from NCES Table 330.20; update per year)
	TwoYearTuition  float64 `json:"two_year_tuition" validate:"gte=0"`
	FourYearTuition float64 `json:"four_year_tuition" validate:"gte=0"`

	// Targets is the fixed, ordered list of occupation titles the output
	// must cover, independent of what the sources contain.
	Targets []string `json:"targets,omitempty"`

	// Behavior
	TimeoutSeconds int  `json:"timeout_seconds,omitempty" validate:"gte=0"`
	Verbose        bool `json:"verbose,omitempty"`
}

// Defaults returns the documented default configuration: the public BLS
// endpoints, zero tuition rates, and the standard target list.
func Defaults() Config {
	return Config{
		OOHXMLURL:      "https://www.bls.gov/ooh/xml-compilation.xml",
		OEWSPageURL:    "https://www.bls.gov/oes/2023/may/oes_mi.htm",
		Output:         "careers.json",
		TimeoutSeconds: 120,
		Targets: []string{
			"Software Developers",
			"Registered Nurses",
			"Accountants and Auditors",
			"Elementary School Teachers, Except Special Education",
			"Electricians",
			"Plumbers, Pipefitters, and Steamfitters",
			"Web Developers",
			"Computer Systems Analysts",
			"Physical Therapist Assistants",
			"Occupational Therapy Assistants",
			"Dental Hygienists",
			"Radiologic Technologists and Technicians",
			"Project Management Specialists",
			"Graphic Designers",
			"Market Research Analysts and Marketing Specialists",
			"Construction Managers",
			"Carpenters",
			"Firefighters",
			"Police and Sheriff's Patrol Officers",
			"Environmental Scientists and Specialists, Including Health",
		},
	}
}

// Load reads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct tags plus semantic
// rules the tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	for i, target := range c.Targets {
		if target == "" {
			return fmt.Errorf("config error: targets[%d] is empty", i)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Bool fields are not merged; CLI flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OOHXMLURL == "" {
		result.OOHXMLURL = defaults.OOHXMLURL
	}
	if result.OEWSPageURL == "" {
		result.OEWSPageURL = defaults.OEWSPageURL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if len(result.Targets) == 0 {
		result.Targets = defaults.Targets
	}

	// Tuition rates merge only when unset; zero is a legitimate configured
	// value (the rates default to zero until filled in from NCES data), so
	// zero-vs-unset is indistinguishable and defaults are zero anyway.
	if result.TwoYearTuition == 0 {
		result.TwoYearTuition = defaults.TwoYearTuition
	}
	if result.FourYearTuition == 0 {
		result.FourYearTuition = defaults.FourYearTuition
	}

	return result
}
