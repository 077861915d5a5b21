package handlers

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/SscSPs/currency_board/internal/middleware"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// contentTypes maps the extensions served most often; other files are sniffed.
var contentTypes = map[string]string{
	".css":  "text/css",
	".html": "text/html",
	".js":   "text/javascript",
}

// StaticResponder serves files below a root directory.
type StaticResponder struct {
	root string
}

// NewStaticResponder serves files from root.
func NewStaticResponder(root string) *StaticResponder {
	return &StaticResponder{root: root}
}

// Serve writes the file at rel, a slash-separated path below the root. Directories
// answer 403 and missing files 404.
func (s *StaticResponder) Serve(c *gin.Context, rel string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// Cleaning against "/" keeps ".." from climbing out of the root.
	clean := path.Clean("/" + rel)
	full := filepath.Join(s.root, filepath.FromSlash(clean))

	info, err := os.Stat(full)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Failed to stat static file", slog.String("file", clean), slog.String("error", err.Error()))
		}
		respondEmpty(c, http.StatusNotFound)
		return
	}
	if info.IsDir() {
		respondEmpty(c, http.StatusForbidden)
		return
	}

	data, err := os.ReadFile(full)
	if err != nil {
		logger.Warn("Failed to read static file", slog.String("file", clean), slog.String("error", err.Error()))
		respondEmpty(c, http.StatusNotFound)
		return
	}

	c.Data(http.StatusOK, contentType(clean, data), data)
}

func contentType(name string, data []byte) string {
	if ct, ok := contentTypes[path.Ext(name)]; ok {
		return ct
	}
	return mimetype.Detect(data).String()
}
