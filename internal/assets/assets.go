// Package assets provides the front-end served for paths outside the API.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

//go:embed web
var embedded embed.FS

// FrontEnd returns the document root for static assets.
// A non-empty directory is served from the filesystem; otherwise the embedded front-end is used.
func FrontEnd(directory string) (fs.FS, error) {
	if directory != "" {
		info, err := os.Stat(directory)
		if err != nil {
			return nil, fmt.Errorf("os.Stat(%s) > %w", directory, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", directory)
		}
		slog.Default().Debug("serving static assets from the filesystem", slog.String("directory", directory))
		return os.DirFS(directory), nil
	}

	root, err := fs.Sub(embedded, "web")
	if err != nil {
		return nil, fmt.Errorf("fs.Sub(web) > %w", err)
	}
	return root, nil
}
