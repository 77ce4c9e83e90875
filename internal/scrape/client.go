// Package scrape fetches raw tirage data from the upstream lottery site and
// normalizes it into domain.Draw values, using the rate-limited retrying
// client in internal/transport.
package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tirage90/predictor/internal/domain"
	"github.com/tirage90/predictor/internal/transport"
)

// Client fetches one calendar month of tirages for a given draw type.
type Client struct {
	http    *transport.Client
	baseURL string
	log     zerolog.Logger
}

// New builds a scrape Client against baseURL using an already-configured
// transport.Client.
func New(httpClient *transport.Client, baseURL string, log zerolog.Logger) *Client {
	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		log:     log.With().Str("component", "scrape").Logger(),
	}
}

// rawMonthResponse is the upstream wire shape: one entry per day drawn,
// numbers still as strings (the site pads single digits and occasionally
// emits "N/A" for a missing machine group).
type rawMonthResponse struct {
	Results []struct {
		Date    string   `json:"date"`
		Winning []string `json:"winning_numbers"`
		Machine []string `json:"machine_numbers"`
	} `json:"results"`
}

// FetchMonth retrieves every tirage recorded for drawTypeID in the given
// year/month, unnormalized.
func (c *Client) FetchMonth(ctx context.Context, drawTypeID, year, month int) ([]domain.RawDraw, error) {
	url := fmt.Sprintf("%s/draw-types/%d/history/%d/%02d", c.baseURL, drawTypeID, year, month)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("scrape: build request: %w", err)
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		c.log.Error().Err(err).Int("drawTypeId", drawTypeID).Int("year", year).Int("month", month).Msg("fetch month failed")
		return nil, err
	}
	defer resp.Body.Close()

	var parsed rawMonthResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.log.Error().Err(err).Msg("decode month response failed")
		return nil, fmt.Errorf("scrape: decode response: %w", err)
	}

	raws := make([]domain.RawDraw, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		raws = append(raws, domain.RawDraw{
			DrawTypeID: drawTypeID,
			Date:       r.Date,
			Winning:    r.Winning,
			Machine:    r.Machine,
		})
	}
	return raws, nil
}
