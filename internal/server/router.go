// Package server provides the HTTP surface of the dictionary: the router, the
// store and search handlers in their two wire shapes, static assets and middleware.
package server

import (
	"net/http"
	"sync/atomic"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

const (
	PathStore       = "/store/"
	PathSearch      = "/search/"
	PathDefinitions = "/api/definitions"
)

// Options configures a Router.
type Options struct {
	// RootStoreAlias routes "/" to the legacy store handler instead of static assets.
	RootStoreAlias bool
	// Static serves every path not matched by an API route. A nil Static answers 404.
	Static http.Handler
}

// Router dispatches requests by exact path to the store and search handlers.
type Router struct {
	store     dictionary.Store
	validator *dictionary.Validator
	options   Options

	requestIDs atomic.Int64
}

// NewRouter creates a Router over store.
func NewRouter(store dictionary.Store, validator *dictionary.Validator, options Options) *Router {
	return &Router{
		store:     store,
		validator: validator,
		options:   options,
	}
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch path := r.URL.Path; {
	case path == PathStore:
		rt.handleLegacyStore(w, r)
	case path == "/" && rt.options.RootStoreAlias:
		rt.handleLegacyStore(w, r)
	case path == PathSearch:
		rt.handleLegacySearch(w, r)
	case path == PathDefinitions || path == PathDefinitions+"/":
		rt.handleDefinitions(w, r)
	case rt.options.Static != nil:
		rt.options.Static.ServeHTTP(w, r)
	default:
		sendText(w, http.StatusNotFound, notFoundText)
	}
}

// nextRequestID returns the next partner API request id, starting from 1.
func (rt *Router) nextRequestID() int64 {
	return rt.requestIDs.Add(1)
}
