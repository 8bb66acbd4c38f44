package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/codepad/internal/config"
)

var preferenceKeys = []string{config.KeyTheme, config.KeyLanguage, config.KeyServerURL, config.KeyNotifications}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change saved preferences",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one preference, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		return printPreferences(cmd.OutOrStdout(), cfg, args)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Save a preference",
	Long: `Saves a preference to the config file. Known keys:
  theme                  light or dark
  language               python, c, cpp, java or r
  server_url             base URL of the execution/assistant service
  notifications_enabled  true or false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// printPreferences writes key = value lines. Unset keys print as "(unset)".
func printPreferences(out io.Writer, cfg *config.Config, args []string) error {
	keys := preferenceKeys
	if len(args) == 1 {
		known := false
		for _, k := range preferenceKeys {
			if k == args[0] {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown preference %q", args[0])
		}
		keys = args
	}

	for _, k := range keys {
		v, ok := cfg.Get(k)
		if !ok {
			v = "(unset)"
		}
		fmt.Fprintf(out, "%s = %s\n", k, v)
	}
	return nil
}
