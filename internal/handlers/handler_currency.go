package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	portssvc "github.com/SscSPs/currency_board/internal/core/ports/services"
	"github.com/SscSPs/currency_board/internal/dto"
	"github.com/SscSPs/currency_board/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyController serves the rates page and the currency maintenance endpoints.
type currencyController struct {
	site            *Site
	currencyService portssvc.CurrencySvcFacade
}

// NewCurrencyController creates the controller for "/currencies" and "/currency/*".
func NewCurrencyController(site *Site, cs portssvc.CurrencySvcFacade) Controller {
	return &currencyController{site: site, currencyService: cs}
}

func (h *currencyController) Handle(c *gin.Context, path string, params Params) Outcome {
	switch path {
	case "/currencies":
		h.listCurrencies(c, params)
	case "/currency/delete":
		h.deleteCurrency(c, params)
	case "/currency/update":
		h.updateCurrencies(c, params)
	case "/currency/show":
		h.showCurrencies(c)
	default:
		return NotMine
	}
	return Claimed
}

// listCurrencies godoc
// @Summary List exchange rates
// @Tags currencies
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyController) listCurrencies(c *gin.Context, params Params) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		respondEmpty(c, http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "currencies.html", h.site.pageData(params, gin.H{
		"title":      "Rates",
		"currencies": dto.ToCurrencyViews(currencies),
	}))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Deleting an ID that does not exist still succeeds.
// @Tags currencies
// @Param id query int true "Currency ID"
// @Success 200 "Deleted or already absent"
// @Failure 400 "Missing or non-integer ID"
// @Failure 500 "Failed to delete currency"
// @Router /currency/delete [get]
func (h *currencyController) deleteCurrency(c *gin.Context, params Params) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rawID, ok := params["id"]
	if !ok {
		logger.Warn("Currency delete without ID")
		respondEmpty(c, http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		logger.Warn("Invalid currency ID", slog.String("id", rawID))
		respondEmpty(c, http.StatusBadRequest)
		return
	}

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete currency", slog.Int64("currency_id", id), slog.String("error", err.Error()))
		respondEmpty(c, http.StatusInternalServerError)
		return
	}
	respondEmpty(c, http.StatusOK)
}

// updateCurrencies godoc
// @Summary Update exchange rates
// @Description Every query parameter is a char code with its new value, e.g. ?USD=90.5&EUR=99.
// @Description Values that are not numbers or are negative are ignored.
// @Tags currencies
// @Success 200 "Applied"
// @Failure 500 "Failed to update currencies"
// @Router /currency/update [get]
func (h *currencyController) updateCurrencies(c *gin.Context, params Params) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	updated, err := h.currencyService.UpdateCurrencyValues(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to update currencies", slog.Int("updated", updated), slog.String("error", err.Error()))
		respondEmpty(c, http.StatusInternalServerError)
		return
	}
	respondEmpty(c, http.StatusOK)
}

// showCurrencies godoc
// @Summary Write every currency to the server log
// @Tags currencies
// @Success 200 "Logged"
// @Failure 500 "Failed to list currencies"
// @Router /currency/show [get]
func (h *currencyController) showCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		respondEmpty(c, http.StatusInternalServerError)
		return
	}

	for _, cur := range currencies {
		logger.Info("Currency",
			slog.Int64("id", cur.ID),
			slog.String("num_code", cur.NumCode),
			slog.String("char_code", cur.CharCode),
			slog.String("name", cur.Name),
			slog.String("value", cur.Value.String()),
			slog.Int("nominal", cur.Nominal),
		)
	}
	respondEmpty(c, http.StatusOK)
}
