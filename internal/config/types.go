package config

import (
	"gopkg.in/yaml.v3"
)

// Config is the full curio.yaml document. Every field is optional; a
// missing file means the defaults apply.
type Config struct {
	Theme      string `yaml:"theme,omitempty" validate:"omitempty,oneof=default dark light"`
	StartRoute string `yaml:"start_route,omitempty" validate:"omitempty,route"`
	LogFile    string `yaml:"log_file,omitempty"`
	Debug      bool   `yaml:"debug,omitempty"`
	Chart      Chart  `yaml:"chart,omitempty"`
	Demo       Demo   `yaml:"demo,omitempty"`
}

// Chart holds chart rendering preferences.
type Chart struct {
	Palette []string `yaml:"palette,omitempty" validate:"omitempty,min=1,dive,hex_color"`
}

// Demo toggles optional showcase content. Both toggles default to on.
type Demo struct {
	SignInProviders bool `yaml:"sign_in_providers"`
	Discounts       bool `yaml:"discounts"`
}

// UnmarshalYAML keeps the demo toggles on unless the document turns them
// off explicitly.
func (d *Demo) UnmarshalYAML(value *yaml.Node) error {
	type rawDemo struct {
		SignInProviders *bool `yaml:"sign_in_providers"`
		Discounts       *bool `yaml:"discounts"`
	}

	var raw rawDemo
	if err := value.Decode(&raw); err != nil {
		return err
	}

	d.SignInProviders = raw.SignInProviders == nil || *raw.SignInProviders
	d.Discounts = raw.Discounts == nil || *raw.Discounts
	return nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Theme:      "default",
		StartRoute: "home",
		Demo: Demo{
			SignInProviders: true,
			Discounts:       true,
		},
	}
}
