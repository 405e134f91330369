// Package cli provides the command-line interface for promptify.
package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"promptify/internal/api"
	"promptify/internal/config"
	"promptify/internal/metrics"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose   bool
	serverURL string

	// Global config and API client
	cfg       config.Config
	apiClient *api.Client
	collector *metrics.Collector
	logger    *slog.Logger

	closeLogger func() error
)

// rootCmd represents the base command when called without any subcommands.
// Bare `promptify` opens the interactive chat UI.
var rootCmd = &cobra.Command{
	Use:   "promptify",
	Short: "Chat with your documents",
	Long: `Promptify is a terminal client for a retrieval-augmented generation
backend. Chat with an assistant grounded in your documents, and manage
the document collection: add text, upload files, register links, search,
and delete.

Run without a subcommand to open the interactive UI.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version and help need no backend.
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		if serverURL != "" {
			cfg.ServerURL = serverURL
		}
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}

		// The interactive UI owns the terminal, so its logs go to the log
		// file only. One-shot commands also log to stderr.
		if cmd.Name() == "chat" || cmd == cmd.Root() {
			logger, closeLogger = config.SetupFileLogger(cfg.LogFile, cfg.LogLevel)
		} else {
			logger, closeLogger = config.SetupLogger(cfg.LogFile, cfg.LogLevel)
		}

		collector = metrics.NewCollector()
		apiClient = api.New(cfg.ServerURL,
			api.WithTimeout(cfg.Timeout),
			api.WithCollector(collector),
			api.WithLogger(logger),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeLogger != nil {
			_ = closeLogger()
		}
	},
	RunE: runChat,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend base URL (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(statsCmd)
}

// confirm reads a y/N answer from stdin.
func confirm() bool {
	fmt.Print("\nContinue? [y/N]: ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
