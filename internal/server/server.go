package server

import (
	"fmt"
	"net/http"

	"github.com/at-ishikawa/wordbook/internal/assets"
	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

// NewHandler builds the full HTTP handler: middleware around a Router with static assets as configured.
func NewHandler(cfg config.ServerConfig, store dictionary.Store, validator *dictionary.Validator) (http.Handler, error) {
	options := Options{
		RootStoreAlias: cfg.RootStoreAlias,
	}
	if cfg.Static.Enabled {
		root, err := assets.FrontEnd(cfg.Static.Directory)
		if err != nil {
			return nil, fmt.Errorf("assets.FrontEnd() > %w", err)
		}
		options.Static = NewStaticHandler(root, cfg.Static.Index)
	}

	return Chain(
		NewRouter(store, validator, options),
		RecoveryMiddleware,
		RequestIDMiddleware,
		LoggingMiddleware,
		CORSMiddleware(cfg.CORS.AllowedOrigins),
	), nil
}
