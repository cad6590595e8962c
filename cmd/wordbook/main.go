package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/client"
	"github.com/at-ishikawa/wordbook/internal/config"
)

var (
	configFile string
	serverURL  string
	api        API
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errRequestFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "wordbook",
		Short:         "Store and look up definitions on a wordbook server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug mode")
	flags.StringVar(&serverURL, "server", "", "server base URL. Overrides client.base_url in the config")
	flags.Var(&api, "api", fmt.Sprintf("API to use. Possible values are %v", allAPIs))

	rootCmd.AddCommand(
		newDefineCommand(),
		newLookupCommand(),
	)
	return rootCmd
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func newDefineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "define WORD DEFINITION...",
		Short: "Store the definition of a word",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return fmt.Errorf("newClient() > %w", err)
			}
			defer func() {
				_ = c.Close()
			}()

			result, err := c.Define(cmd.Context(), args[0], strings.Join(args[1:], " "))
			return render(cmd.OutOrStdout(), result, err)
		},
	}
}

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup WORD",
		Short: "Look up the definition of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return fmt.Errorf("newClient() > %w", err)
			}
			defer func() {
				_ = c.Close()
			}()

			result, err := c.Lookup(cmd.Context(), args[0])
			return render(cmd.OutOrStdout(), result, err)
		},
	}
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// newClient builds a client from the config, with the command line flags taking precedence.
func newClient() (*client.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loadConfig() > %w", err)
	}

	baseURL := cfg.Client.BaseURL
	if serverURL != "" {
		baseURL = serverURL
	}
	selected := cfg.Client.API
	if api != "" {
		selected = api.String()
	}
	slog.Default().Debug("Creating a client",
		slog.String("baseURL", baseURL),
		slog.String("api", selected),
	)

	return client.New(baseURL,
		client.WithAPI(selected),
		client.WithRetryAttempts(cfg.Client.RetryAttempts),
		client.WithTimeout(time.Duration(cfg.Client.TimeoutSeconds)*time.Second),
	)
}
