package server

import (
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestStaticHandler(t *testing.T) {
	root := fstest.MapFS{
		"store.html":      {Data: []byte("<html>store</html>")},
		"ajax.js":         {Data: []byte("console.log(1)")},
		"css/Style.CSS":   {Data: []byte("body{}")},
		"data.json":       {Data: []byte(`{"a":1}`)},
		"logo.png":        {Data: []byte{0x89, 0x50}},
		"docs/readme.txt": {Data: []byte("readme")},
	}
	handler := NewStaticHandler(root, "store.html")

	tests := []struct {
		name            string
		target          string
		wantStatus      int
		wantContentType string
		wantBody        string
	}{
		{
			name:            "root serves the index",
			target:          "/",
			wantStatus:      http.StatusOK,
			wantContentType: "text/html; charset=utf-8",
			wantBody:        "<html>store</html>",
		},
		{
			name:            "javascript",
			target:          "/ajax.js",
			wantStatus:      http.StatusOK,
			wantContentType: "application/javascript; charset=utf-8",
			wantBody:        "console.log(1)",
		},
		{
			name:            "extension match is case-insensitive",
			target:          "/css/Style.CSS",
			wantStatus:      http.StatusOK,
			wantContentType: "text/css; charset=utf-8",
			wantBody:        "body{}",
		},
		{
			name:            "json",
			target:          "/data.json",
			wantStatus:      http.StatusOK,
			wantContentType: "application/json; charset=utf-8",
			wantBody:        `{"a":1}`,
		},
		{
			name:            "unknown extension",
			target:          "/logo.png",
			wantStatus:      http.StatusOK,
			wantContentType: "application/octet-stream",
			wantBody:        string([]byte{0x89, 0x50}),
		},
		{
			name:            "missing file",
			target:          "/foo/bar",
			wantStatus:      http.StatusNotFound,
			wantContentType: contentTypeText,
			wantBody:        "404 Not Found",
		},
		{
			name:            "directory",
			target:          "/docs",
			wantStatus:      http.StatusNotFound,
			wantContentType: contentTypeText,
			wantBody:        "404 Not Found",
		},
		{
			name:            "parent traversal stays inside the root",
			target:          "/../../etc/passwd",
			wantStatus:      http.StatusNotFound,
			wantContentType: contentTypeText,
			wantBody:        "404 Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, handler, testRequest{method: http.MethodGet, target: tt.target})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantContentType, w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}
