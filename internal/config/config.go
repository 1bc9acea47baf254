package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/jlym/frienddir/internal/profile"
	"github.com/jlym/frienddir/internal/storage"
)

const (
	EnvMaxNameLength = "FRIENDDIR_MAX_NAME_LENGTH"
	EnvMaxFriends    = "FRIENDDIR_MAX_FRIENDS"
	EnvTimeFormat    = "FRIENDDIR_TIME_FORMAT"
	EnvLogLevel      = "FRIENDDIR_LOG_LEVEL"
	EnvLogFormat     = "FRIENDDIR_LOG_FORMAT"
)

type Config struct {
	Directory DirectoryConfig `yaml:"directory"`
	Profile   ProfileConfig   `yaml:"profile"`
	Log       LogConfig       `yaml:"log"`
}

type DirectoryConfig struct {
	MaxNameLength int `yaml:"max_name_length" validate:"min=1"`
	MaxFriends    int `yaml:"max_friends" validate:"min=1"`
}

type ProfileConfig struct {
	TimeFormat string `yaml:"time_format" validate:"required"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the settings used when no file or environment overrides
// are given.
func Default() *Config {
	return &Config{
		Directory: DirectoryConfig{
			MaxNameLength: storage.DefaultLimits.MaxNameLength,
			MaxFriends:    storage.DefaultLimits.MaxFriends,
		},
		Profile: ProfileConfig{
			TimeFormat: profile.DefaultTimeFormat,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

func (c *Config) Limits() storage.Limits {
	return storage.Limits{
		MaxNameLength: c.Directory.MaxNameLength,
		MaxFriends:    c.Directory.MaxFriends,
	}
}

// Load reads path over the defaults, then a .env file in the working
// directory if one exists, then FRIENDDIR_* environment variables. An empty
// path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading config failed, path=%q", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing config failed, path=%q", path)
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading .env failed")
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvMaxNameLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parsing %s failed", EnvMaxNameLength)
		}
		c.Directory.MaxNameLength = n
	}
	if v := os.Getenv(EnvMaxFriends); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parsing %s failed", EnvMaxFriends)
		}
		c.Directory.MaxFriends = n
	}
	if v := os.Getenv(EnvTimeFormat); v != "" {
		c.Profile.TimeFormat = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	return nil
}
