package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rocket/internal/config"
	"rocket/internal/settings"
)

func init() {
	configCmd.Flags().BoolVarP(&configWizard, "wizard", "w", false, "edit the config interactively")
	configCmd.AddCommand(configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}

// wizard flag
var configWizard bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create the config file if missing and print its location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		if configWizard {
			return settings.Run(path)
		}
		out := cmd.OutOrStdout()
		existed := fileExists(path)
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		if existed {
			fmt.Fprintf(out, "• keeping %s\n", path)
		} else {
			if err := config.Save(path, c); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ created %s\n", path)
		}
		fmt.Fprintf(out, "  theme: %s\n  tab_width: %d\n  log_level: %s\n", c.Theme, c.TabWidth, c.LogLevel)
		if c.LogFile != "" {
			fmt.Fprintf(out, "  log_file: %s\n", c.LogFile)
		}
		if names := c.BindingNames(); len(names) > 0 {
			fmt.Fprintf(out, "  bindings: %s\n", strings.Join(names, ", "))
		}
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := config.MarshalSchema(config.Schema())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
