package controller

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Extension-to-content-type table for the static site.
var mimeTypes = map[string]string{
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

const defaultContentType = "application/octet-stream"

// StaticController serves the web assets for any path not claimed by the
// API. It resolves files under a single document root and never lists
// directories.
type StaticController struct {
	root string
}

func NewStaticController(root string) *StaticController {
	return &StaticController{root: filepath.Clean(root)}
}

func (c *StaticController) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/", c)
}

func (c *StaticController) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rel := path.Clean(r.URL.Path)
	if rel == "/" || rel == "." {
		rel = "/index.html"
	}

	target := filepath.Join(c.root, filepath.FromSlash(rel))
	if !strings.HasPrefix(target, c.root+string(os.PathSeparator)) {
		c.writeNotFound(w, r)
		return
	}

	content, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			c.writeNotFound(w, r)
			return
		}
		logError(r, err, nil)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("500 Internal Server Error: " + err.Error()))
		return
	}

	contentType := mimeTypes[strings.ToLower(filepath.Ext(target))]
	if contentType == "" {
		contentType = defaultContentType
	}

	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(content)
}

func (c *StaticController) writeNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("404 Not Found"))
}
