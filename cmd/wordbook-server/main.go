package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/wordbook/internal/bootstrap"
	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/server"
)

var configFile string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "wordbook-server",
		Short:         "Wordbook dictionary HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	return rootCmd
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func run(ctx context.Context) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("godotenv.Load() > %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	srv, err := newHTTPServer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("newHTTPServer() > %w", err)
	}

	app := bootstrap.New(time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second)
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("Server is running", slog.String("url", fmt.Sprintf("http://%s/", srv.Addr)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func newHTTPServer(ctx context.Context, cfg *config.Config) (*http.Server, error) {
	validator, err := dictionary.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("dictionary.NewValidator() > %w", err)
	}

	store := dictionary.NewMemoryStore()
	if cfg.Dictionary.SeedFile != "" {
		entries, err := dictionary.ReadSeedFile(cfg.Dictionary.SeedFile, validator)
		if err != nil {
			return nil, fmt.Errorf("dictionary.ReadSeedFile() > %w", err)
		}
		if err := dictionary.Seed(ctx, store, entries); err != nil {
			return nil, fmt.Errorf("dictionary.Seed() > %w", err)
		}
		slog.Default().Info("Loaded seed definitions",
			slog.String("file", cfg.Dictionary.SeedFile),
			slog.Int("words", store.Len()),
		)
	}

	handler, err := server.NewHandler(cfg.Server, store, validator)
	if err != nil {
		return nil, fmt.Errorf("server.NewHandler() > %w", err)
	}

	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeoutSeconds) * time.Second,
	}, nil
}
