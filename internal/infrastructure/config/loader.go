package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config file names inside the config directory
const (
	RulesFile    = "rules.yaml"
	EntitiesFile = "entities.yaml"
	LevelsFile   = "levels.yaml"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Rules    *RulesConfig
	Entities *EntitiesConfig
	Levels   *LevelsConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// decode reads one YAML file into out
func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadRules loads rules.yaml
func (l *Loader) LoadRules() (*RulesConfig, error) {
	var cfg RulesConfig
	if err := l.decode(RulesFile, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", RulesFile, err)
	}
	return &cfg, nil
}

// LoadEntities loads entities.yaml
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.decode(EntitiesFile, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EntitiesFile, err)
	}
	return &cfg, nil
}

// LoadLevels loads levels.yaml
func (l *Loader) LoadLevels() (*LevelsConfig, error) {
	var cfg LevelsConfig
	if err := l.decode(LevelsFile, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", LevelsFile, err)
	}
	return &cfg, nil
}

// LoadAll loads all configurations (rules, entities, levels)
func (l *Loader) LoadAll() (*GameConfig, error) {
	rules, err := l.LoadRules()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Rules:    rules,
		Entities: entities,
		Levels:   levels,
	}, nil
}
