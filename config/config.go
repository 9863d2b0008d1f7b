// Package config loads the optional zhot.toml settings file.
//
// Everything has a sensible default; a missing file is a normal condition
// (the defaults apply), while an unreadable or malformed file is an error
// worth stopping for.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Defaults applied before the file (if any) is read.
const (
	DefaultDiagramSize = 1000
	DefaultDiagramPath = "diagram.svg"
)

// DiagramConfig controls the rendered rules diagram.
type DiagramConfig struct {
	// Size is the square canvas side in px.
	Size int `toml:"size"`
	// Output is the SVG file path the diagram is written to.
	Output string `toml:"output"`
}

// GameConfig controls the interactive session.
type GameConfig struct {
	// Seed locks the session RNG when non-zero; zero means time-seeded.
	Seed int64 `toml:"seed"`
}

// Config is the full settings file.
type Config struct {
	Diagram DiagramConfig `toml:"diagram"`
	Game    GameConfig    `toml:"game"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Diagram: DiagramConfig{Size: DefaultDiagramSize, Output: DefaultDiagramPath},
	}
}

// Load reads path as TOML over the defaults. A missing file yields the
// defaults and no error; anything else that goes wrong is reported.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config.Load: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config.Load %q: %w", path, err)
	}

	if cfg.Diagram.Size <= 0 {
		cfg.Diagram.Size = DefaultDiagramSize
	}
	if cfg.Diagram.Output == "" {
		cfg.Diagram.Output = DefaultDiagramPath
	}
	return cfg, nil
}
