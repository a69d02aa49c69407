package config

import (
	"fmt"
	"os"

	"formrunner/domain/entities"

	"gopkg.in/yaml.v3"
)

// Profile is a scripted alternative to the interactive prompts: a YAML
// file carrying a complete run description.
type Profile struct {
	FormURL    string   `yaml:"form_url"`
	Count      int      `yaml:"count"`
	Names      []string `yaml:"names"`
	MaxWorkers int      `yaml:"max_workers"`
	RateLimit  float64  `yaml:"rate_limit"`
	Headless   *bool    `yaml:"headless"`
}

// LoadProfile reads and parses a run profile.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

// RunSpec converts the profile into a run spec. defaultHeadless applies
// when the profile leaves headless unset.
func (p *Profile) RunSpec(defaultHeadless bool) entities.RunSpec {
	headless := defaultHeadless
	if p.Headless != nil {
		headless = *p.Headless
	}

	return entities.RunSpec{
		FormURL:    p.FormURL,
		Count:      p.Count,
		Names:      p.Names,
		MaxWorkers: p.MaxWorkers,
		RateLimit:  p.RateLimit,
		Headless:   headless,
	}
}
