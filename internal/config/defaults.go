package config

import (
	_ "embed"
)

//go:embed defaults/icash.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Corpus: CorpusConfig{
			Path:          "",
			MaxWordLength: 5,
		},
		Game: GameConfig{
			SetSize:         3,
			MaxDrawAttempts: 1000,
			TimerMinutes:    []int{0, 1, 3, 5, 7, 10},
		},
		Save: SaveConfig{
			Path:       "~/.icash/save_file.txt",
			StrictBool: false,
		},
		Scores: ScoresConfig{
			DB: "~/.icash/scores.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
