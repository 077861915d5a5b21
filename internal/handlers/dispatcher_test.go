package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/SscSPs/currency_board/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRequest(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantPath   string
		wantParams handlers.Params
	}{
		{name: "root", target: "/", wantPath: "", wantParams: handlers.Params{}},
		{name: "trailing slash", target: "/users/", wantPath: "/users", wantParams: handlers.Params{}},
		{name: "only one slash is stripped", target: "/users//", wantPath: "/users/", wantParams: handlers.Params{}},
		{name: "query", target: "/user?id=3", wantPath: "/user", wantParams: handlers.Params{"id": "3"}},
		{name: "last value wins", target: "/user?id=1&id=2", wantPath: "/user", wantParams: handlers.Params{"id": "2"}},
		{name: "empty values dropped", target: "/currency/update?USD=&EUR=90&GBP", wantPath: "/currency/update", wantParams: handlers.Params{"EUR": "90"}},
		{name: "escapes decoded", target: "/currencies?q=a%20b", wantPath: "/currencies", wantParams: handlers.Params{"q": "a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.target)
			require.NoError(t, err)

			path, params := handlers.NormalizeRequest(u)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantParams, params)
		})
	}
}

type recordingController struct {
	claims []string
	seen   []string
}

func (r *recordingController) Handle(c *gin.Context, path string, params handlers.Params) handlers.Outcome {
	r.seen = append(r.seen, path)
	for _, p := range r.claims {
		if p == path {
			c.String(http.StatusOK, "claimed")
			return handlers.Claimed
		}
	}
	return handlers.NotMine
}

func TestDispatcher_FirstClaimWins(t *testing.T) {
	first := &recordingController{claims: []string{"/a"}}
	second := &recordingController{claims: []string{"/a", "/b"}}

	r := gin.New()
	r.NoRoute(handlers.NewDispatcher(nil, first, second).Handle)

	w := perform(r, http.MethodGet, "/a/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"/a"}, first.seen)
	assert.Empty(t, second.seen, "later controllers are not consulted after a claim")

	w = perform(r, http.MethodGet, "/b")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"/a", "/b"}, first.seen)
	assert.Equal(t, []string{"/b"}, second.seen)

	w = perform(r, http.MethodGet, "/c")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDispatcher_RejectsNonGET(t *testing.T) {
	ctrl := &recordingController{claims: []string{"/a"}}

	r := gin.New()
	r.NoRoute(handlers.NewDispatcher(nil, ctrl).Handle)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodHead} {
		w := perform(r, method, "/a")
		assert.Equal(t, http.StatusBadRequest, w.Code, method)
	}
	assert.Empty(t, ctrl.seen)
}
