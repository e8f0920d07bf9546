// Package config resolves dsaprep settings from flags, the environment,
// an optional .env file and a YAML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nasir-khan01/dsaprep/internal/progress"
	"github.com/nasir-khan01/dsaprep/internal/store"
)

// ErrInvalidConfig is returned when a config file fails validation.
var ErrInvalidConfig = errors.New("config: invalid")

const (
	EnvDB     = "DSAPREP_DB"
	EnvConfig = "DSAPREP_CONFIG"
)

// Streak sets the day counts at which the streak badge upgrades.
type Streak struct {
	Hot       int `yaml:"hot"`
	Legendary int `yaml:"legendary"`
}

// Config is the user-editable configuration.
type Config struct {
	// DefaultList scopes commands when --list is omitted. Empty means all lists.
	DefaultList  string              `yaml:"default_list"`
	DBPath       string              `yaml:"db_path,omitempty"`
	Milestones   progress.Thresholds `yaml:"milestones"`
	Streak       Streak              `yaml:"streak"`
	ActivityDays int                 `yaml:"activity_days"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Milestones:   progress.DefaultThresholds(),
		Streak:       Streak{Hot: 7, Legendary: 30},
		ActivityDays: 7,
	}
}

// Validate checks thresholds and ranges.
func (c Config) Validate() error {
	if err := increasing("milestones.solved", c.Milestones.Solved); err != nil {
		return err
	}
	if err := increasing("milestones.reviews", c.Milestones.Reviews); err != nil {
		return err
	}
	if c.Streak.Hot < 1 {
		return fmt.Errorf("%w: streak.hot must be positive, got %d", ErrInvalidConfig, c.Streak.Hot)
	}
	if c.Streak.Legendary <= c.Streak.Hot {
		return fmt.Errorf("%w: streak.legendary (%d) must exceed streak.hot (%d)",
			ErrInvalidConfig, c.Streak.Legendary, c.Streak.Hot)
	}
	if c.ActivityDays < 1 || c.ActivityDays > 366 {
		return fmt.Errorf("%w: activity_days must be between 1 and 366, got %d", ErrInvalidConfig, c.ActivityDays)
	}
	return nil
}

func increasing(name string, vals []int) error {
	for i, v := range vals {
		if v < 1 {
			return fmt.Errorf("%w: %s[%d] must be positive, got %d", ErrInvalidConfig, name, i, v)
		}
		if i > 0 && v <= vals[i-1] {
			return fmt.Errorf("%w: %s must be strictly increasing", ErrInvalidConfig, name)
		}
	}
	return nil
}

// Load reads a YAML config file on top of the defaults. Keys missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// DefaultPath returns $XDG_CONFIG_HOME/dsaprep/config.yaml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "dsaprep", "config.yaml"), nil
}

// Options carries values given on the command line. Empty fields fall
// through to the next source.
type Options struct {
	DBPath     string
	ConfigPath string
	// EnvFile defaults to ".env" in the working directory.
	EnvFile string
}

// Resolved is the effective configuration plus where it came from.
type Resolved struct {
	Config
	// DBPath is the database actually opened. Config.DBPath keeps the
	// file's own value so printing the config does not echo it back.
	DBPath     string
	ConfigPath string
	// ConfigFound is false when no config file exists and defaults apply.
	ConfigFound bool
}

// Resolve applies flags > environment > .env > config file > defaults.
// A config path given by flag or environment must exist; the default path
// may be absent.
func Resolve(opts Options) (Resolved, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Resolved{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	res := Resolved{ConfigPath: opts.ConfigPath}
	explicit := true
	if res.ConfigPath == "" {
		res.ConfigPath = os.Getenv(EnvConfig)
	}
	if res.ConfigPath == "" {
		explicit = false
		p, err := DefaultPath()
		if err != nil {
			return Resolved{}, err
		}
		res.ConfigPath = p
	}

	cfg, err := Load(res.ConfigPath)
	switch {
	case err == nil:
		res.ConfigFound = true
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		cfg = Default()
	default:
		return Resolved{}, err
	}
	res.Config = cfg

	switch {
	case opts.DBPath != "":
		res.DBPath = opts.DBPath
	case os.Getenv(EnvDB) != "":
		res.DBPath = os.Getenv(EnvDB)
	case cfg.DBPath == "":
		p, err := store.DefaultDBPath()
		if err != nil {
			return Resolved{}, err
		}
		res.DBPath = p
	default:
		res.DBPath = cfg.DBPath
	}
	if err := store.EnsureDir(res.DBPath); err != nil {
		return Resolved{}, fmt.Errorf("create data dir: %w", err)
	}
	return res, nil
}
