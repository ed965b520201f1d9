package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rocket/internal/app"
	"rocket/internal/config"
	"rocket/internal/system"
)

var (
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagCreate   bool
)

var rootCmd = &cobra.Command{
	Use:   "rocket [file...]",
	Short: "rocket – a small multi-buffer terminal editor",
	Long:  "rocket opens each file in its own buffer, or an unsaved scratch buffer when none are given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		if flagLogFile != "" {
			c.LogFile = flagLogFile
		}
		if flagLogLevel != "" {
			c.LogLevel = flagLogLevel
		}
		if flagCreate {
			c.CreateMissing = true
		}
		closer, err := system.SetupLogger(c.LogFile, c.LogLevel)
		if err != nil {
			return err
		}
		defer closer.Close()
		return app.Start(app.Options{Paths: args, Config: c})
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&flagConfig, "config", "c", "", "config file (default <user config dir>/rocket/config.yaml)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "append debug logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagCreate, "create", false, "open missing files as new buffers")
}

// configPath resolves --config or the default location.
func configPath() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}
	return config.Path()
}

func loadConfig() (config.Config, error) {
	p, err := configPath()
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(p)
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
