// Package config loads the runtime configuration: server settings from
// environment variables and the form rule surface (field bounds, regex
// patterns, editability) with optional overrides from an INI file.
package config

import (
	"fmt"
	"regexp"

	"github.com/caarlos0/env/v11"
	"gopkg.in/ini.v1"
)

// Default form rule values, used unless overridden by the rules file.
const (
	DefaultPageSize = 5
	DefaultNameMin  = 2
	DefaultNameMax  = 50

	DefaultEmailPattern    = `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`
	DefaultLinkedinPattern = `^https://[a-z]{2,3}\.linkedin\.com/.*$`
	DefaultPINPattern      = `^\d{6}$`
)

// Config is the full runtime configuration.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	RulesPath string `env:"RULES_FILE"`
	SeedDemo  bool   `env:"SEED_DEMO"`

	Rules Rules `env:"-"`
}

// Rules is the form rule surface consumed by validation and the views.
type Rules struct {
	Editable bool
	PageSize int
	NameMin  int
	NameMax  int
	Email    *regexp.Regexp
	Linkedin *regexp.Regexp
	PIN      *regexp.Regexp
}

// Load reads configuration from the environment and, when RULES_FILE is
// set, applies overrides from that INI file.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	rules := rawRules{
		Editable: true,
		PageSize: DefaultPageSize,
		NameMin:  DefaultNameMin,
		NameMax:  DefaultNameMax,
		Email:    DefaultEmailPattern,
		Linkedin: DefaultLinkedinPattern,
		PIN:      DefaultPINPattern,
	}
	if cfg.RulesPath != "" {
		if err := rules.applyFile(cfg.RulesPath); err != nil {
			return nil, err
		}
	}

	compiled, err := rules.compile()
	if err != nil {
		return nil, err
	}
	cfg.Rules = compiled
	return cfg, nil
}

// DefaultRules returns the built-in rule set with no file overrides.
// Patterns are compiled from constants, so failure is a programmer error.
func DefaultRules() Rules {
	return Rules{
		Editable: true,
		PageSize: DefaultPageSize,
		NameMin:  DefaultNameMin,
		NameMax:  DefaultNameMax,
		Email:    regexp.MustCompile(DefaultEmailPattern),
		Linkedin: regexp.MustCompile(DefaultLinkedinPattern),
		PIN:      regexp.MustCompile(DefaultPINPattern),
	}
}

// rawRules carries rule values before pattern compilation.
type rawRules struct {
	Editable bool
	PageSize int
	NameMin  int
	NameMax  int
	Email    string
	Linkedin string
	PIN      string
}

// applyFile overlays values from the [form] section of an INI file.
// Absent keys keep their current values.
func (r *rawRules) applyFile(path string) error {
	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("load rules file: %w", err)
	}

	section := file.Section("form")
	if key := section.Key("editable"); key.String() != "" {
		v, err := key.Bool()
		if err != nil {
			return fmt.Errorf("rules file: editable: %w", err)
		}
		r.Editable = v
	}
	if key := section.Key("page_size"); key.String() != "" {
		v, err := key.Int()
		if err != nil || v < 1 {
			return fmt.Errorf("rules file: page_size must be a positive integer")
		}
		r.PageSize = v
	}
	if key := section.Key("name_min"); key.String() != "" {
		v, err := key.Int()
		if err != nil || v < 1 {
			return fmt.Errorf("rules file: name_min must be a positive integer")
		}
		r.NameMin = v
	}
	if key := section.Key("name_max"); key.String() != "" {
		v, err := key.Int()
		if err != nil || v < 1 {
			return fmt.Errorf("rules file: name_max must be a positive integer")
		}
		r.NameMax = v
	}
	if v := section.Key("email_pattern").String(); v != "" {
		r.Email = v
	}
	if v := section.Key("linkedin_pattern").String(); v != "" {
		r.Linkedin = v
	}
	if v := section.Key("pin_pattern").String(); v != "" {
		r.PIN = v
	}
	return nil
}

func (r rawRules) compile() (Rules, error) {
	if r.NameMin > r.NameMax {
		return Rules{}, fmt.Errorf("rules file: name_min %d exceeds name_max %d", r.NameMin, r.NameMax)
	}
	email, err := regexp.Compile(r.Email)
	if err != nil {
		return Rules{}, fmt.Errorf("compile email pattern: %w", err)
	}
	linkedin, err := regexp.Compile(r.Linkedin)
	if err != nil {
		return Rules{}, fmt.Errorf("compile linkedin pattern: %w", err)
	}
	pin, err := regexp.Compile(r.PIN)
	if err != nil {
		return Rules{}, fmt.Errorf("compile pin pattern: %w", err)
	}
	return Rules{
		Editable: r.Editable,
		PageSize: r.PageSize,
		NameMin:  r.NameMin,
		NameMax:  r.NameMax,
		Email:    email,
		Linkedin: linkedin,
		PIN:      pin,
	}, nil
}
