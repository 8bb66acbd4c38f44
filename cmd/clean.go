package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/codepad/internal/config"
	"github.com/zhubert/codepad/internal/logger"
)

var (
	skipConfirm bool
	resetConfig bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log and, optionally, saved preferences",
	Long: `Removes codepad's debug log. With --config the saved preferences
(theme, language, server URL, snippets) are removed as well, so the next
start uses the defaults.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&resetConfig, "config", false, "Also remove the config file")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	configFile := ""
	if resetConfig {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		configFile = cfg.Path()
	}
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout(), logger.DefaultLogPath, configFile)
}

// runCleanWithReader allows injecting the prompt input and paths for testing.
// An empty configFile leaves the config alone.
func runCleanWithReader(input io.Reader, out io.Writer, logFile, configFile string) error {
	var targets []string
	for _, p := range []string{logFile, configFile} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			targets = append(targets, p)
		}
	}

	if len(targets) == 0 {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	for _, p := range targets {
		fmt.Fprintf(out, "  - %s\n", p)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	removed, err := logger.ClearLogs(logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}
	if configFile != "" {
		if err := os.Remove(configFile); err == nil {
			removed++
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error removing %s: %v\n", configFile, err)
		}
	}

	fmt.Fprintf(out, "Removed %d file(s).\n", removed)
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
