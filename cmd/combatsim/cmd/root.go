// Package cmd is the cobra command tree for combatsim, grounded on the
// teacher's cmd/cli/cmd package.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/daiweLi/Fast-Combat-Simulation/pkg/logger"
)

var (
	cfgFile  string
	logLevel string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "combatsim",
	Short: "Deterministic aircraft-vs-missile combat simulation",
	Long: `combatsim drives a fixed-step aircraft and proportional-navigation
missile simulation from a scenario file, or interactively when none is
given, and prints an after-action summary when the run ends.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.combatsim/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenarioCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}

	logger.SetLevel(logger.ParseLevel(logLevel))
	logger.SetNoColor(noColor)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("$HOME/.combatsim")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// isInteractive reports whether stdout is attached to a terminal, used to
// decide whether run falls back to the survey-driven scenario builder.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
