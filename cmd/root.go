package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rail44/kata/internal/config"
	"github.com/rail44/kata/internal/kata"
	"github.com/rail44/kata/internal/log"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "kata",
	Short: "Beginner programming exercises",
	Long: `Kata runs small beginner exercises (FizzBuzz, sums, palindromes,
anagrams, Fibonacci and friends) from the command line.

Settings are read from kata.toml, searched upward from the current
directory, and can be overridden with flags or KATA_* environment variables
(KATA_LOG_LEVEL, KATA_FORMAT, KATA_IGNORE_CASE, KATA_GUESS_MIN, KATA_GUESS_MAX).`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is kata.toml in the current or a parent directory)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: error, warn, info or debug")
	rootCmd.PersistentFlags().String("format", "", "output format: text, json, yaml or markdown")
	rootCmd.PersistentFlags().Bool("ignore-case", false, "count vowels and compare anagrams case-insensitively")

	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("ignore-case", rootCmd.PersistentFlags().Lookup("ignore-case"))

	viper.BindEnv("guess-min", "KATA_GUESS_MIN")
	viper.BindEnv("guess-max", "KATA_GUESS_MAX")

	viper.SetEnvPrefix("kata")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads kata.toml, applies flag and environment overrides and sets up logging
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return err
	}

	if viper.IsSet("log-level") && viper.GetString("log-level") != "" {
		cfg.LogLevel = viper.GetString("log-level")
	}
	if viper.IsSet("format") && viper.GetString("format") != "" {
		cfg.Format = viper.GetString("format")
	}
	if viper.IsSet("ignore-case") {
		cfg.IgnoreCase = viper.GetBool("ignore-case")
	}
	if err := intOverride("guess-min", &cfg.GuessMin); err != nil {
		return err
	}
	if err := intOverride("guess-max", &cfg.GuessMax); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if err := log.SetLevel(level); err != nil {
		return err
	}
	if cfg.Path != "" {
		log.Debug("using config file", slog.String("path", cfg.Path))
	}
	return nil
}

// intOverride replaces *dst with the viper value for key when one is set
func intOverride(key string, dst *int) error {
	if !viper.IsSet(key) {
		return nil
	}
	raw := strings.TrimSpace(viper.GetString(key))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = n
	return nil
}

func newRunner() *kata.Runner {
	return kata.NewRunner(kata.NewDefaultRegistry(kata.Options{IgnoreCase: cfg.IgnoreCase}), log.Default())
}
