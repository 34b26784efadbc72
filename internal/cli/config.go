package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds CLI configuration
type Config struct {
	StorageType string
	DataFile    string
	RedisURL    string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		StorageType: "file",
		DataFile:    defaultDataFile(),
		RedisURL:    "",
		Output:      "text",
		Verbose:     false,
	}
}

// Load merges the optional config file (~/.gamenight/config.yaml) and
// GAMENIGHT_* environment variables into the config. Flags set explicitly
// on the command line take precedence over both.
func (c *Config) Load(flags *pflag.FlagSet) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".gamenight"))
	}

	v.SetEnvPrefix("GAMENIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("storage", c.StorageType)
	v.SetDefault("data-file", c.DataFile)
	v.SetDefault("redis-url", c.RedisURL)
	v.SetDefault("output", c.Output)
	v.SetDefault("verbose", c.Verbose)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	if !flags.Changed("storage") {
		c.StorageType = v.GetString("storage")
	}
	if !flags.Changed("data-file") {
		c.DataFile = v.GetString("data-file")
	}
	if !flags.Changed("redis-url") {
		c.RedisURL = v.GetString("redis-url")
	}
	if !flags.Changed("output") {
		c.Output = v.GetString("output")
	}
	if !flags.Changed("verbose") {
		c.Verbose = v.GetBool("verbose")
	}

	return nil
}

func defaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".gamenight", "gamenight.json")
	}
	return filepath.Join(home, ".gamenight", "gamenight.json")
}
