package server

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".json": "application/json; charset=utf-8",
}

// StaticHandler serves files from a document root. "/" serves the index file.
type StaticHandler struct {
	root  fs.FS
	index string
}

func NewStaticHandler(root fs.FS, index string) *StaticHandler {
	return &StaticHandler{
		root:  root,
		index: index,
	}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	urlPath := r.URL.Path
	if urlPath == "/" {
		urlPath = "/" + h.index
	}
	name := strings.TrimPrefix(path.Clean(urlPath), "/")
	if !fs.ValidPath(name) || name == "." {
		sendText(w, http.StatusNotFound, notFoundText)
		return
	}

	info, err := fs.Stat(h.root, name)
	if err != nil || info.IsDir() {
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Default().WarnContext(r.Context(), "failed to stat a static asset",
				slog.String("name", name),
				slog.Any("error", err),
			)
		}
		sendText(w, http.StatusNotFound, notFoundText)
		return
	}

	contents, err := fs.ReadFile(h.root, name)
	if err != nil {
		slog.Default().WarnContext(r.Context(), "failed to read a static asset",
			slog.String("name", name),
			slog.Any("error", err),
		)
		sendText(w, http.StatusNotFound, notFoundText)
		return
	}

	w.Header().Set("Content-Type", contentTypeOf(name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(contents)
}

func contentTypeOf(name string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}
