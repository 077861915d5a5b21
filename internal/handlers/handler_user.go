package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/currency_board/internal/apperrors"
	portssvc "github.com/SscSPs/currency_board/internal/core/ports/services"
	"github.com/SscSPs/currency_board/internal/dto"
	"github.com/SscSPs/currency_board/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userController serves the user pages.
type userController struct {
	site        *Site
	userService portssvc.UserSvcFacade
}

// NewUserController creates the controller for "/users" and "/user".
func NewUserController(site *Site, us portssvc.UserSvcFacade) Controller {
	return &userController{site: site, userService: us}
}

func (h *userController) Handle(c *gin.Context, path string, params Params) Outcome {
	switch path {
	case "/users":
		h.listUsers(c, params)
	case "/user":
		h.getUser(c, params)
	default:
		return NotMine
	}
	return Claimed
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 "Failed to list users"
// @Router /users [get]
func (h *userController) listUsers(c *gin.Context, params Params) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		respondEmpty(c, http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "users.html", h.site.pageData(params, gin.H{
		"title": "Users",
		"users": dto.ToUserViews(users),
	}))
}

// getUser godoc
// @Summary Show a user and the currencies they follow
// @Tags users
// @Produce html
// @Param id query int false "User ID; when missing the request is redirected to /users"
// @Success 200 {string} string "HTML page"
// @Success 301 "Redirect to /users"
// @Failure 400 "ID is not an integer"
// @Failure 404 "User not found"
// @Failure 500 "Failed to load user"
// @Router /user [get]
func (h *userController) getUser(c *gin.Context, params Params) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rawID, ok := params["id"]
	if !ok {
		c.Redirect(http.StatusMovedPermanently, "/users")
		c.Abort()
		return
	}

	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		logger.Warn("Invalid user ID", slog.String("id", rawID))
		respondEmpty(c, http.StatusBadRequest)
		return
	}
	logger = logger.With(slog.Int64("user_id", id))

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Info("User not found")
			respondEmpty(c, http.StatusNotFound)
		} else {
			logger.Error("Failed to get user", slog.String("error", err.Error()))
			respondEmpty(c, http.StatusInternalServerError)
		}
		return
	}

	currencies, err := h.userService.GetUserCurrencies(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to get user currencies", slog.String("error", err.Error()))
		respondEmpty(c, http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "user.html", h.site.pageData(params, gin.H{
		"title":      user.Name,
		"user":       dto.ToUserView(*user),
		"currencies": dto.ToCurrencyViews(currencies),
	}))
}
