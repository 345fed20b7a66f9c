// Package config provides YAML-based configuration loading for the game:
// where the word list and save record live, selection limits, timer choices
// and logging.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for the game.
type Config struct {
	Corpus CorpusConfig `yaml:"corpus"`
	Game   GameConfig   `yaml:"game"`
	Save   SaveConfig   `yaml:"save"`
	Scores ScoresConfig `yaml:"scores"`
	Log    LogConfig    `yaml:"log"`
}

// CorpusConfig defines the dictionary source.
type CorpusConfig struct {
	Path          string `yaml:"path"` // Empty = embedded word list
	MaxWordLength int    `yaml:"max_word_length"`
}

// GameConfig defines puzzle generation and timer parameters.
type GameConfig struct {
	SetSize         int   `yaml:"set_size"`
	MaxDrawAttempts int   `yaml:"max_draw_attempts"`
	TimerMinutes    []int `yaml:"timer_minutes"` // 0 = no timer
}

// SaveConfig defines the game-state record.
type SaveConfig struct {
	Path       string `yaml:"path"`
	StrictBool bool   `yaml:"strict_bool"`
}

// ScoresConfig defines the high-score database.
type ScoresConfig struct {
	DB string `yaml:"db"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = stderr for commands, discarded while playing
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if c.Corpus.MaxWordLength < 1 {
		errs = append(errs, fmt.Errorf("corpus.max_word_length must be positive, got %d", c.Corpus.MaxWordLength))
	}
	if c.Game.SetSize < 1 {
		errs = append(errs, fmt.Errorf("game.set_size must be positive, got %d", c.Game.SetSize))
	}
	if c.Game.MaxDrawAttempts < 1 {
		errs = append(errs, fmt.Errorf("game.max_draw_attempts must be positive, got %d", c.Game.MaxDrawAttempts))
	}
	if len(c.Game.TimerMinutes) == 0 {
		errs = append(errs, errors.New("game.timer_minutes must list at least one option"))
	}
	for _, m := range c.Game.TimerMinutes {
		if m < 0 {
			errs = append(errs, fmt.Errorf("game.timer_minutes has negative option %d", m))
		}
	}
	if c.Save.Path == "" {
		errs = append(errs, errors.New("save.path must be set"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
