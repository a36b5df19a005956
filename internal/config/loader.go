package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadAll reads the roster and scenario data from dir: party.yaml,
// enemies.yaml and scenario.yaml.
func LoadAll(dir string) (*PartyConfig, *EnemiesConfig, *ScenarioConfig, error) {
	var pc PartyConfig
	var ec EnemiesConfig
	var sc ScenarioConfig
	if err := loadYAML(filepath.Join(dir, "party.yaml"), &pc); err != nil {
		return nil, nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "enemies.yaml"), &ec); err != nil {
		return nil, nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "scenario.yaml"), &sc); err != nil {
		return nil, nil, nil, err
	}
	if sc.DT <= 0 {
		sc.DT = 0.1
	}
	if sc.MaxTime <= 0 {
		sc.MaxTime = 120
	}
	return &pc, &ec, &sc, nil
}
