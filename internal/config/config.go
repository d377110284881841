package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rail44/kata/internal/formatter"
	"github.com/rail44/kata/internal/log"
)

// FileName is the configuration file searched for by Load.
const FileName = "kata.toml"

// Config represents the complete configuration for kata
type Config struct {
	LogLevel string `toml:"log_level"`
	Format   string `toml:"format"`

	// IgnoreCase switches vowel counting and anagram checks to case-insensitive mode.
	IgnoreCase bool `toml:"ignore_case"`

	// Secret range for the interactive guessing game, inclusive.
	GuessMin int `toml:"guess_min"`
	GuessMax int `toml:"guess_max"`

	// Path of the file the configuration was read from, empty when defaults are used.
	Path string `toml:"-"`
}

// Default returns the configuration used when no kata.toml exists
func Default() *Config {
	return &Config{
		LogLevel: string(log.LevelInfo),
		Format:   formatter.Text,
		GuessMin: 1,
		GuessMax: 100,
	}
}

// Load searches for kata.toml upward from startPath. A missing file is not an
// error; defaults are returned instead.
func Load(startPath string) (*Config, error) {
	configPath, err := findConfigFile(startPath)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return LoadFile(configPath)
}

// LoadFile reads the configuration from an explicit path
func LoadFile(configPath string) (*Config, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(configData), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Path = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile searches for kata.toml starting from the given path
func findConfigFile(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}

	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("%s: %w", FileName, os.ErrNotExist)
}

// Validate checks that all fields hold usable values
func (c *Config) Validate() error {
	var problems []string

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if !formatter.Supported(c.Format) {
		problems = append(problems, fmt.Sprintf("unknown format %q (want one of %s)", c.Format, strings.Join(formatter.Names(), ", ")))
	}
	if c.GuessMin > c.GuessMax {
		problems = append(problems, fmt.Sprintf("guess_min %d is greater than guess_max %d", c.GuessMin, c.GuessMax))
	} else if guessRangeWidth(c.GuessMin, c.GuessMax) >= math.MaxInt {
		problems = append(problems, fmt.Sprintf("guess range %d..%d is too wide", c.GuessMin, c.GuessMax))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
	}
	return nil
}

// guessRangeWidth returns hi-lo without overflow, assuming lo <= hi.
// The secret is drawn from width+1 values, so width must stay below math.MaxInt.
func guessRangeWidth(lo, hi int) uint64 {
	return uint64(hi) - uint64(lo)
}
