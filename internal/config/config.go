package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const devConnectionString = "file:./local.db?cache=shared&mode=rwc"

type Config struct {
	DB        DBConfig        `toml:"database"`
	Log       LogConfig       `toml:"log"`
	Reminders RemindersConfig `toml:"reminders"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type LogConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"` // Rotated log file; empty disables file logging.
	JSON   bool   `toml:"json"`
	Stdout bool   `toml:"stdout"`
}

type RemindersConfig struct {
	Timezone       string `toml:"timezone"`        // IANA zone name, or "Local".
	DefaultMessage string `toml:"default_message"` // fmt pattern taking the exercise name.
	Concurrency    int    `toml:"concurrency"`
}

func Default() *Config {
	return &Config{
		DB: DBConfig{
			ConnectionString: "file:./cadence.db?cache=shared&mode=rwc",
		},
		Log: LogConfig{
			Level:  "info",
			Stdout: true,
		},
		Reminders: RemindersConfig{
			Timezone:       "Local",
			DefaultMessage: "Time to do %s",
			Concurrency:    4,
		},
	}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "cadence")
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads the config file at path over the defaults. A missing file
// leaves the defaults untouched. Environment overrides are applied last.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	// .env is optional.
	_ = godotenv.Load()

	if url := os.Getenv("CADENCE_DATABASE_URL"); url != "" {
		cfg.DB.ConnectionString = url
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = devConnectionString
	}

	if cfg.Reminders.Concurrency < 1 {
		cfg.Reminders.Concurrency = 1
	}

	return cfg, nil
}
