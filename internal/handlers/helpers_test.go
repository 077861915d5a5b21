package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	portssvc "github.com/SscSPs/currency_board/internal/core/ports/services"
	"github.com/SscSPs/currency_board/internal/handlers"
	"github.com/SscSPs/currency_board/internal/platform/config"
	"github.com/SscSPs/currency_board/web"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(staticDir string) *config.Config {
	return &config.Config{
		IsProduction: true,
		StaticDir:    staticDir,
		AppName:      "Test Board",
		AppVersion:   "9.9.9",
		AuthorName:   "Ann Author",
		AuthorGroup:  "G-1",
	}
}

// newTestEngine wires the real routes and templates around the given services.
func newTestEngine(t *testing.T, services *portssvc.ServiceContainer, staticDir string) *gin.Engine {
	t.Helper()
	r := gin.New()
	tmpl, err := web.ParseTemplates()
	require.NoError(t, err)
	r.SetHTMLTemplate(tmpl)
	handlers.RegisterRoutes(r, testConfig(staticDir), services, nil)
	return r
}

func perform(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}
