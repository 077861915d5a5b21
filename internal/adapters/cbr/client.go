// Package cbr fetches daily exchange rates from the Central Bank of Russia JSON feed.
package cbr

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/currency_board/internal/apperrors"
	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/SscSPs/currency_board/internal/core/ports"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	// DefaultURL is the public daily feed.
	DefaultURL = "https://www.cbr-xml-daily.ru/daily_json.js"
	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 10 * time.Second

	// maxBodyBytes caps how much of the feed is read; the real document is about 20KB.
	maxBodyBytes = 4 << 20
)

// Config configures the feed client.
type Config struct {
	URL     string
	Timeout time.Duration
	// CurrencyIDs optionally restricts the result to the feed's entry IDs (e.g. "R01235").
	// Empty means every entry.
	CurrencyIDs []string
}

// valute mirrors one entry of the feed's "Valute" object.
type valute struct {
	ID       string `validate:"required"`
	NumCode  string `validate:"required"`
	CharCode string `validate:"required,len=3"`
	Name     string `validate:"required"`
	Value    string `validate:"required"`
	Nominal  int    `validate:"gt=0"`
}

// Client reads the feed over HTTP.
type Client struct {
	url        string
	ids        map[string]struct{}
	httpClient *http.Client
	validate   *validator.Validate
	logger     *slog.Logger
}

var _ ports.RateSource = (*Client)(nil)

// NewClient creates a feed client. Zero config values fall back to the defaults.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	var ids map[string]struct{}
	if len(cfg.CurrencyIDs) > 0 {
		ids = make(map[string]struct{}, len(cfg.CurrencyIDs))
		for _, id := range cfg.CurrencyIDs {
			ids[id] = struct{}{}
		}
	}

	return &Client{
		url:        cfg.URL,
		ids:        ids,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		validate:   validator.New(),
		logger:     logger,
	}
}

// FetchRates downloads the feed and returns its currencies in document order.
// Any transport, status or format problem is reported as apperrors.ErrUpstream.
func (c *Client) FetchRates(ctx context.Context) ([]domain.Currency, error) {
	c.logger.Info("Fetching exchange rates", slog.String("url", c.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch rates: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", apperrors.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: rate feed returned status %d", apperrors.ErrUpstream, resp.StatusCode)
	}

	currencies, err := c.parse(body)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Exchange rates fetched", slog.Int("count", len(currencies)))
	return currencies, nil
}

func (c *Client) parse(body []byte) ([]domain.Currency, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: rate feed is not valid JSON", apperrors.ErrUpstream)
	}

	valutes := gjson.GetBytes(body, "Valute")
	if !valutes.IsObject() {
		return nil, fmt.Errorf("%w: rate feed has no Valute object", apperrors.ErrUpstream)
	}

	currencies := make([]domain.Currency, 0)
	var parseErr error
	valutes.ForEach(func(key, entry gjson.Result) bool {
		v := valute{
			ID:       entry.Get("ID").String(),
			NumCode:  entry.Get("NumCode").String(),
			CharCode: entry.Get("CharCode").String(),
			Name:     entry.Get("Name").String(),
			Value:    rawNumber(entry.Get("Value")),
			Nominal:  int(entry.Get("Nominal").Int()),
		}
		if c.ids != nil {
			if _, ok := c.ids[v.ID]; !ok {
				return true
			}
		}

		currency, err := c.toCurrency(v)
		if err != nil {
			parseErr = fmt.Errorf("%w: entry %s: %v", apperrors.ErrUpstream, key.String(), err)
			return false
		}
		currencies = append(currencies, currency)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return currencies, nil
}

func (c *Client) toCurrency(v valute) (domain.Currency, error) {
	if err := c.validate.Struct(v); err != nil {
		return domain.Currency{}, err
	}
	value, err := decimal.NewFromString(v.Value)
	if err != nil {
		return domain.Currency{}, fmt.Errorf("invalid value %q: %w", v.Value, err)
	}
	currency, err := domain.NewCurrency(v.NumCode, v.CharCode, v.Name, value, v.Nominal)
	if err != nil {
		return domain.Currency{}, err
	}
	return *currency, nil
}

// rawNumber keeps the literal digits of a JSON number so the decimal is exact.
func rawNumber(r gjson.Result) string {
	switch r.Type {
	case gjson.Number:
		return r.Raw
	case gjson.String:
		return r.Str
	default:
		return ""
	}
}
