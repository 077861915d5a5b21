package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	portssvc "github.com/SscSPs/currency_board/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	currencyService *MockCurrencyService
	userService     *MockUserService
	router          *gin.Engine
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.currencyService = new(MockCurrencyService)
	suite.userService = new(MockUserService)
	suite.router = newTestEngine(suite.T(), &portssvc.ServiceContainer{
		Currency: suite.currencyService,
		User:     suite.userService,
	}, suite.T().TempDir())
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.currencyService.AssertExpectations(suite.T())
	suite.userService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestHealth() {
	w := perform(suite.router, http.MethodGet, "/health")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestIndexAndAuthor() {
	w := perform(suite.router, http.MethodGet, "/")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/html")
	suite.Contains(w.Body.String(), "Test Board")
	suite.Contains(w.Body.String(), `href="/currencies"`)

	w = perform(suite.router, http.MethodGet, "/author/")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Ann Author")
	suite.Contains(w.Body.String(), "G-1")
}

func (suite *HandlersTestSuite) TestQueryParamsDoNotOverridePageData() {
	w := perform(suite.router, http.MethodGet, "/author?app=hijacked&pages=none&title=Injected")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Ann Author")
	suite.Contains(w.Body.String(), "<title>Author | Test Board</title>")
	suite.NotContains(w.Body.String(), "Injected")
}

func (suite *HandlersTestSuite) TestListUsers() {
	suite.userService.On("ListUsers", mock.Anything).Return([]domain.User{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}, nil).Once()

	w := perform(suite.router, http.MethodGet, "/users")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `<a href="/user?id=1">Alice</a>`)
	suite.Contains(w.Body.String(), `<a href="/user?id=2">Bob</a>`)
}

func (suite *HandlersTestSuite) TestUser_MissingIDRedirects() {
	w := perform(suite.router, http.MethodGet, "/user")
	suite.Equal(http.StatusMovedPermanently, w.Code)
	suite.Equal("/users", w.Header().Get("Location"))
}

func (suite *HandlersTestSuite) TestUser_InvalidID() {
	w := perform(suite.router, http.MethodGet, "/user?id=abc")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *HandlersTestSuite) TestUser_NotFound() {
	suite.userService.On("GetUserByID", mock.Anything, int64(99)).
		Return(nil, fmt.Errorf("user 99: %w", apperrors.ErrNotFound)).Once()

	w := perform(suite.router, http.MethodGet, "/user?id=99")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *HandlersTestSuite) TestUser_ServiceError() {
	suite.userService.On("GetUserByID", mock.Anything, int64(1)).Return(nil, assert.AnError).Once()

	w := perform(suite.router, http.MethodGet, "/user?id=1")
	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *HandlersTestSuite) TestUser_Success() {
	suite.userService.On("GetUserByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Name: "Alice"}, nil).Once()
	suite.userService.On("GetUserCurrencies", mock.Anything, int64(1)).Return([]domain.Currency{
		{ID: 10, CharCode: "USD", NumCode: "840", Name: "US Dollar", Value: decimal.RequireFromString("81.25"), Nominal: 1},
	}, nil).Once()

	w := perform(suite.router, http.MethodGet, "/user?id=1")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Alice")
	suite.Contains(w.Body.String(), "US Dollar")
	suite.Contains(w.Body.String(), "81.25")
}

func (suite *HandlersTestSuite) TestListCurrencies() {
	suite.currencyService.On("ListCurrencies", mock.Anything).Return([]domain.Currency{
		{ID: 1, CharCode: "AUD", Name: "Australian Dollar", Value: decimal.RequireFromString("69.4586"), Nominal: 1},
		{ID: 2, CharCode: "JPY", Name: "Yen", Value: decimal.RequireFromString("70.1006"), Nominal: 100},
	}, nil).Once()

	w := perform(suite.router, http.MethodGet, "/currencies")
	suite.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	suite.Contains(body, "Australian Dollar")
	suite.Contains(body, "69.4586")
	suite.Contains(body, "0.701")
	suite.Less(strings.Index(body, "AUD"), strings.Index(body, "JPY"))
}

func (suite *HandlersTestSuite) TestDeleteCurrency_BadInput() {
	for _, target := range []string{"/currency/delete", "/currency/delete?id=", "/currency/delete?id=one"} {
		w := perform(suite.router, http.MethodGet, target)
		suite.Equal(http.StatusBadRequest, w.Code, target)
	}
}

func (suite *HandlersTestSuite) TestDeleteCurrency_MissingIDStillOK() {
	suite.currencyService.On("DeleteCurrency", mock.Anything, int64(999)).Return(nil).Once()

	w := perform(suite.router, http.MethodGet, "/currency/delete?id=999")
	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *HandlersTestSuite) TestUpdateCurrencies_PassesAllPairs() {
	suite.currencyService.On("UpdateCurrencyValues", mock.Anything, map[string]string{
		"USD": "250",
		"EUR": "notanumber",
	}).Return(1, nil).Once()

	w := perform(suite.router, http.MethodGet, "/currency/update?USD=250&EUR=notanumber")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestShowCurrencies() {
	suite.currencyService.On("ListCurrencies", mock.Anything).Return([]domain.Currency{{ID: 1, CharCode: "USD", Nominal: 1}}, nil).Once()

	w := perform(suite.router, http.MethodGet, "/currency/show")
	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *HandlersTestSuite) TestNonGETIsRejected() {
	for _, target := range []string{"/users", "/currency/delete?id=1", "/nowhere"} {
		w := perform(suite.router, http.MethodPost, target)
		suite.Equal(http.StatusBadRequest, w.Code, target)
	}
}

func (suite *HandlersTestSuite) TestUnknownPath() {
	w := perform(suite.router, http.MethodGet, "/nowhere")
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Empty(w.Body.String())
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
