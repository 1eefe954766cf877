package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agiangrant/ctdinput/input"
	"github.com/agiangrant/ctdinput/internal/logging"
)

const envPrefix = "ctdinput"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ctdinput",
	Short: "Replay and inspect widget input scripts",
	Long: `ctdinput drives the input core of the widget toolkit from recorded
scripts and prints every callback the widgets receive.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "TOML file with an [input] table (default: built-in timings)")
	flags.Float64("double-click-speed", 0, "double click window in seconds")
	flags.Float64("key-repeat-delay", 0, "seconds before a held key repeats")
	flags.Float64("key-repeat-rate", 0, "seconds between repeats")
	flags.String("log-level", "warn", "debug, info, warn or error")
}

// newViper binds the command's flags and CTDINPUT_* environment variables.
// Explicit flags win over the environment.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

// effectiveConfig loads the config file, then applies flag and environment
// overrides on top.
func effectiveConfig(v *viper.Viper) (input.Config, error) {
	cfg := input.DefaultConfig()
	if path := v.GetString("config"); path != "" {
		loaded, err := input.LoadConfig(path)
		if err != nil {
			return input.Config{}, err
		}
		cfg = loaded
	}

	overrides := []struct {
		key string
		dst *time.Duration
	}{
		{"double-click-speed", &cfg.DoubleClickSpeed},
		{"key-repeat-delay", &cfg.KeyRepeatDelay},
		{"key-repeat-rate", &cfg.KeyRepeatRate},
	}
	for _, o := range overrides {
		if v.IsSet(o.key) {
			*o.dst = input.Seconds(v.GetFloat64(o.key))
		}
	}

	if err := cfg.Validate(); err != nil {
		return input.Config{}, err
	}
	return cfg, nil
}

func newLogger(v *viper.Viper) (*slog.Logger, error) {
	level, err := logging.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, err
	}
	return logging.New(os.Stderr, level), nil
}
