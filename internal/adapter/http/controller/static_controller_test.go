package controller_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/api-sage/currency-converter/internal/adapter/http/controller"
)

func newStaticMux(t *testing.T) (*http.ServeMux, string) {
	t.Helper()

	root := t.TempDir()
	writeFile(t, root, "index.html", "<html>home</html>")
	writeFile(t, root, "app.css", "body {}")
	writeFile(t, root, "notes.txt", "plain")

	mux := http.NewServeMux()
	controller.NewStaticController(root).RegisterRoutes(mux)
	return mux, root
}

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}

func get(mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestStaticControllerRootServesIndex(t *testing.T) {
	mux, _ := newStaticMux(t)

	rr := get(mux, "/")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html" {
		t.Fatalf("expected text/html, got %q", got)
	}
	if rr.Body.String() != "<html>home</html>" {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestStaticControllerContentTypes(t *testing.T) {
	mux, _ := newStaticMux(t)

	cases := map[string]string{
		"/app.css":   "text/css",
		"/notes.txt": "application/octet-stream",
	}

	for path, want := range cases {
		rr := get(mux, path)
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusOK, rr.Code)
		}
		if got := rr.Header().Get("Content-Type"); got != want {
			t.Fatalf("%s: expected %q, got %q", path, want, got)
		}
	}
}

func TestStaticControllerMissingFile(t *testing.T) {
	mux, _ := newStaticMux(t)

	rr := get(mux, "/nope.html")

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
	if rr.Body.String() != "404 Not Found" {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestStaticControllerUnreadablePath(t *testing.T) {
	mux, root := newStaticMux(t)
	if err := os.Mkdir(filepath.Join(root, "assets"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// a directory is readable as a path but not as a file
	rr := get(mux, "/assets")

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if !strings.HasPrefix(rr.Body.String(), "500 Internal Server Error: ") {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestStaticControllerConfinedToRoot(t *testing.T) {
	// hit the controller directly; the mux would clean the path first
	ctrl := controller.NewStaticController(t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "http://host/static", nil)
	req.URL.Path = "/../../etc/passwd"
	rr := httptest.NewRecorder()
	ctrl.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected traversal to resolve to 404, got %d", rr.Code)
	}
}
