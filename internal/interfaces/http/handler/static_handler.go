package handler

import (
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MostroP2P/mostro-score-web/pkg/logger"
)

const indexPage = "index.html"

// mimeTypes maps the asset extensions the web build produces to their
// media types. Anything else is served as an opaque byte stream.
var mimeTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".wasm": "application/wasm",
}

// StaticHandler serves files from the asset root. The root is looked up
// per request, so the web/ directory may appear, change, or vanish while
// the server runs; a missing root simply produces 404s.
type StaticHandler struct {
	root   string
	logger *logger.Logger
}

func NewStaticHandler(root string, logger *logger.Logger) *StaticHandler {
	return &StaticHandler{
		root:   root,
		logger: logger,
	}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, ok := h.resolve(r.URL.Path)
	if !ok {
		notFound(w)
		return
	}

	f, err := os.Open(name)
	if err != nil {
		notFound(w)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		notFound(w)
		return
	}

	w.Header().Set("Content-Type", contentType(name))
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	// A short write here almost always means the client went away. The
	// status line is already out, so there is nothing left to report.
	if _, err := io.Copy(w, f); err != nil {
		h.logger.Debug("Asset write aborted",
			"path", r.URL.Path,
			"error", err.Error(),
		)
	}
}

// resolve maps a decoded URL path to a file beneath the asset root.
// Cleaning the path rooted at "/" collapses every ".." segment before
// the root is joined, so the joined path can never climb above it.
// Directory targets (including "/") resolve to their index.html; a
// trailing slash asks for a directory, so a plain file there is a miss.
func (h *StaticHandler) resolve(urlPath string) (string, bool) {
	wantsDir := strings.HasSuffix(urlPath, "/")
	cleaned := path.Clean("/" + urlPath)
	name := filepath.Join(h.root, filepath.FromSlash(cleaned))

	info, err := os.Stat(name)
	if err != nil {
		return "", false
	}
	if info.IsDir() {
		name = filepath.Join(name, indexPage)
		if info, err = os.Stat(name); err != nil {
			return "", false
		}
	} else if wantsDir {
		return "", false
	}
	if !info.Mode().IsRegular() {
		return "", false
	}
	if !h.insideRoot(name) {
		return "", false
	}
	return name, true
}

// insideRoot checks that the target, with symlinks followed, still lives
// under the asset root. A link inside web/ pointing at /etc is a miss,
// not an escape hatch.
func (h *StaticHandler) insideRoot(name string) bool {
	realRoot, err := filepath.EvalSymlinks(h.root)
	if err != nil {
		return false
	}
	realName, err := filepath.EvalSymlinks(name)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(realRoot, realName)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func contentType(name string) string {
	if mt, ok := mimeTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return mt
	}
	return "application/octet-stream"
}

func notFound(w http.ResponseWriter) {
	http.Error(w, "404 Not Found", http.StatusNotFound)
}
