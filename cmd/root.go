package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/codepad/internal/api"
	"github.com/zhubert/codepad/internal/app"
	"github.com/zhubert/codepad/internal/clipboard"
	"github.com/zhubert/codepad/internal/config"
	"github.com/zhubert/codepad/internal/logger"
	"github.com/zhubert/codepad/internal/snippets"
)

var (
	debugMode             bool
	quietMode             bool
	serverURL             string
	languageID            string
	noFullscreen          bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "codepad",
	Short: "Terminal code pad with a run console and an AI assistant",
	Long: `Codepad is a terminal code pad. Write a snippet in the editor, feed it
stdin, and run it on the execution service; the output lands in the console
next to the editor. A collapsible assistant panel answers questions about
your code.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to warnings and errors")
	rootCmd.Flags().StringVar(&serverURL, "server", "", "Execution/assistant service URL (overrides config and "+config.ServerEnvVar+")")
	rootCmd.Flags().StringVarP(&languageID, "language", "l", "", "Language to start with (e.g. python, cpp, java)")
	rootCmd.Flags().BoolVar(&noFullscreen, "no-fullscreen", false, "Start in the normal screen instead of fullscreen")
}

func initConfig() {
	switch {
	case quietMode:
		logger.SetLevel(logger.LevelWarn)
	case debugMode:
		logger.SetDebug(true)
	default:
		logger.SetDebug(false)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("codepad %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("codepad %s\n", version)
}

// resolveStartup validates the flag overrides against the loaded config and
// returns the server URL and language the app starts with.
func resolveStartup(cfg *config.Config) (string, string, error) {
	server := cfg.GetServerURL()
	if serverURL != "" {
		server = serverURL
	}
	if err := config.ValidateServerURL(server); err != nil {
		return "", "", err
	}

	lang := snippets.Resolve(cfg.GetLanguage())
	if languageID != "" {
		if _, ok := snippets.Lookup(languageID); !ok {
			return "", "", fmt.Errorf("unknown language %q (supported: %v)", languageID, snippets.IDs())
		}
		lang = languageID
	}
	return server, lang, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	server, lang, err := resolveStartup(cfg)
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	log := logger.WithComponent("cmd")
	log.Info("starting codepad", "version", version, "server", server, "language", lang)

	if err := clipboard.Init(); err != nil {
		log.Warn("system clipboard unavailable, falling back to OSC52", "error", err)
	}

	client := api.NewClient(server, cfg.GetRequestTimeout())
	platform := app.NewTerminalPlatform()

	m := app.New(app.Options{
		Config:          cfg,
		Runner:          client,
		Assistant:       client,
		Platform:        platform,
		Language:        lang,
		Version:         version,
		StartFullscreen: !noFullscreen,
	})
	p := tea.NewProgram(m)
	platform.SetSender(p.Send)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
