package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug       = "debug"
	ConfigThreads     = "threads"
	ConfigOpeningWord = "opening-word"
	ConfigMaxRounds   = "max-rounds"
	ConfigSeed        = "seed"
	ConfigGameLog     = "game-log"
	ConfigBatchCSV    = "batch-csv"
)

// Config wraps viper. Flags take precedence over WORDLE_-prefixed
// environment variables, which take precedence over the defaults.
type Config struct {
	v *viper.Viper

	// Args holds the non-flag arguments left over after parsing: the
	// subcommand and its word-list paths.
	Args []string
}

func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("wordle", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigThreads, runtime.NumCPU(), "number of threads for evaluation and batch runs")
	fs.String(ConfigOpeningWord, "tears", "the fixed first guess used by automated modes")
	fs.Int(ConfigMaxRounds, 6, "the round budget per game")
	fs.Uint64(ConfigSeed, 0, "rng seed for secret selection; 0 picks one at random")
	fs.String(ConfigGameLog, "", "path for a per-game YAML log in batch mode")
	fs.String(ConfigBatchCSV, "", "path for the per-game CSV results in batch mode")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.v.SetEnvPrefix("wordle")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.Args = fs.Args()
	return nil
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetUint64(key string) uint64 {
	return c.v.GetUint64(key)
}

// SanitizedSettings returns the settings for startup logging.
func (c *Config) SanitizedSettings() string {
	keys := []string{
		ConfigThreads, ConfigOpeningWord, ConfigMaxRounds,
		ConfigSeed, ConfigGameLog, ConfigBatchCSV,
	}
	settings := make([]string, 0, len(keys))
	for _, key := range keys {
		settings = append(settings, fmt.Sprintf("%s=%v", key, c.v.Get(key)))
	}
	return strings.Join(settings, " ")
}
