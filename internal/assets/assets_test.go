package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontEnd(t *testing.T) {
	tests := []struct {
		name         string
		directory    func(t *testing.T) string
		wantFile     string
		wantContains string
		wantErr      bool
	}{
		{
			name:         "uses embedded front-end when no directory is given",
			directory:    func(t *testing.T) string { return "" },
			wantFile:     "store.html",
			wantContains: "storeForm",
		},
		{
			name: "uses filesystem directory when given",
			directory: func(t *testing.T) string {
				dir := t.TempDir()
				require.NoError(t, os.WriteFile(filepath.Join(dir, "store.html"), []byte("custom page"), 0644))
				return dir
			},
			wantFile:     "store.html",
			wantContains: "custom page",
		},
		{
			name: "missing directory",
			directory: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing")
			},
			wantErr: true,
		},
		{
			name: "file instead of directory",
			directory: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "file.txt")
				require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
				return path
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := FrontEnd(tt.directory(t))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			contents, err := fs.ReadFile(root, tt.wantFile)
			require.NoError(t, err)
			assert.Contains(t, string(contents), tt.wantContains)
		})
	}
}

func TestFrontEnd_EmbeddedFiles(t *testing.T) {
	root, err := FrontEnd("")
	require.NoError(t, err)

	for _, name := range []string{"store.html", "search.html", "ajax.js", "style.css"} {
		_, err := fs.Stat(root, name)
		assert.NoError(t, err, name)
	}
}
