package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/currency_board/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Outcome reports whether a controller took responsibility for a request.
type Outcome int

const (
	// NotMine means the controller does not serve the path; dispatch continues.
	NotMine Outcome = iota
	// Claimed means the controller wrote the response; dispatch stops.
	Claimed
)

// Params holds the decoded query string. The last occurrence of a key wins.
type Params map[string]string

// Controller serves a fixed set of page paths.
type Controller interface {
	Handle(c *gin.Context, path string, params Params) Outcome
}

const staticPrefix = "/static"

// NormalizeRequest strips one trailing slash from the path ("/" becomes "") and decodes
// the query. Keys whose value is empty are dropped.
func NormalizeRequest(u *url.URL) (string, Params) {
	path := strings.TrimSuffix(u.Path, "/")

	params := Params{}
	// ParseQuery keeps every pair it could decode even when it reports an error.
	values, _ := url.ParseQuery(u.RawQuery)
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if last := vals[len(vals)-1]; last != "" {
			params[key] = last
		}
	}
	return path, params
}

// Dispatcher offers each page request to its controllers in order.
type Dispatcher struct {
	static      *StaticResponder
	controllers []Controller
}

// NewDispatcher creates a dispatcher. Controllers are consulted in the given order.
func NewDispatcher(static *StaticResponder, controllers ...Controller) *Dispatcher {
	return &Dispatcher{static: static, controllers: controllers}
}

// Handle is installed as gin's NoRoute handler and serves every page request.
func (d *Dispatcher) Handle(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	if c.Request.Method != http.MethodGet {
		logger.Debug("Rejecting non-GET request")
		respondEmpty(c, http.StatusBadRequest)
		return
	}

	path, params := NormalizeRequest(c.Request.URL)

	if d.static != nil && (path == staticPrefix || strings.HasPrefix(path, staticPrefix+"/")) {
		d.static.Serve(c, strings.TrimPrefix(path, staticPrefix))
		return
	}

	for _, ctrl := range d.controllers {
		if ctrl.Handle(c, path, params) == Claimed {
			return
		}
	}

	logger.Debug("No controller claimed the request", slog.String("normalized_path", path))
	respondEmpty(c, http.StatusNotFound)
}

// respondEmpty finishes the request with a status and no body.
func respondEmpty(c *gin.Context, code int) {
	c.AbortWithStatus(code)
}
