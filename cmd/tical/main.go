package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tical/config"
	"tical/internal/buildinfo"
)

var rootCmd = &cobra.Command{
	Use:   "tical",
	Short: "tical - a TI style calculator collection",
	Long: `tical bundles three calculator front ends over one evaluator:
an interactive command-line session, a desktop graphing calculator,
and a browser calculator page.

Running tical with no arguments starts the interactive session.`,
	Version:           buildinfo.Long(),
	PersistentPreRunE: before,
	SilenceUsage:      true,
	Args:              cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

type cliConfig struct {
	logLevel   string
	configPath string
	radians    bool
}

// Default configuration is stored here. Will be overwritten by flags.
var cliOpts = cliConfig{
	logLevel:   "error",
	configPath: defaultConfigPath(),
}

// cfg is the merged file configuration, loaded in before.
var cfg config.Config

func init() {
	rootCmd.PersistentFlags().StringVar(&cliOpts.configPath, "config", cliOpts.configPath, "Path to the TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&cliOpts.logLevel, "log-level", cliOpts.logLevel, "Log messages including and over the specified level: debug, info, warn, error, fatal, panic")
	rootCmd.PersistentFlags().BoolVar(&cliOpts.radians, "radians", false, "Interpret trigonometric arguments in radians instead of degrees")

	rootCmd.AddCommand(evalCmd, guiCmd, serveCmd)
}

func before(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(cliOpts.logLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	cfg, err = config.Load(cliOpts.configPath)
	if err != nil {
		return err
	}
	if cliOpts.radians {
		cfg.AngleUnit = "rad"
	}
	return nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tical", "tical.toml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
