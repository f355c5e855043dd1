package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"maintenance_backend/internal/feature/validation/domain/entity"
	"maintenance_backend/internal/feature/validation/usecase"
	"maintenance_backend/internal/platform/externalapi/twelvedata/dto"
)

// TwelveDataQuotes fetches live quotes from the Twelve Data API. It backs the
// QuoteRepository used by the validation usecase.
type TwelveDataQuotes struct {
	cfg    Config
	client *http.Client
}

var _ usecase.QuoteRepository = (*TwelveDataQuotes)(nil)

// NewTwelveDataQuotes creates a TwelveDataQuotes with the given configuration
// and HTTP client.
func NewTwelveDataQuotes(cfg Config, client *http.Client) *TwelveDataQuotes {
	return &TwelveDataQuotes{cfg: cfg, client: client}
}

// LatestQuote fetches the most recent quote for symbol.
func (t *TwelveDataQuotes) LatestQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("apikey", t.cfg.TwelveDataAPIKey)

	u := fmt.Sprintf("%s/quote?%s", t.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.Quote{}, err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return entity.Quote{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return entity.Quote{}, fmt.Errorf("twelvedata http %d", res.StatusCode)
	}

	var body dto.QuoteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.Quote{}, err
	}
	if body.Status == "error" {
		return entity.Quote{}, fmt.Errorf("twelvedata: %s", body.Message)
	}

	price, err := strconv.ParseFloat(body.Close, 64)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("parse close %q: %w", body.Close, err)
	}
	volume, err := strconv.ParseInt(body.Volume, 10, 64)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("parse volume %q: %w", body.Volume, err)
	}

	return entity.Quote{Symbol: body.Symbol, Price: price, Volume: volume}, nil
}
