// Package mlfeature supplies the optional external ranked-number source
// consumed by the lstm strategy weight: a scoped logger wrapping an HTTP
// transport, POSTing a draw window and parsing back a ranked number list.
package mlfeature

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tirage90/predictor/internal/domain"
	"github.com/tirage90/predictor/internal/transport"
)

// Ranker produces an externally-sourced list of up to k ranked candidate
// numbers from a draw sequence, fed into the ensemble scorer as the lstm
// weight's input.
type Ranker interface {
	Rank(ctx context.Context, draws []domain.Draw, k int) ([]int, error)
}

// windowSize is how many of the most recent draws are sent upstream.
const windowSize = 30

// HTTPRanker POSTs a trimmed draw window to an external scoring service and
// parses a ranked number list from its response.
type HTTPRanker struct {
	http *transport.Client
	url string
	log zerolog.Logger
}

// NewHTTPRanker builds a Ranker backed by an HTTP feature source at url.
func NewHTTPRanker(httpClient *transport.Client, url string, log zerolog.Logger) *HTTPRanker {
	return &HTTPRanker{
		http: httpClient,
		url:  url,
		log:  log.With().Str("component", "mlfeature").Logger(),
	}
}

type rankRequest struct {
	Draws []windowDraw `json:"draws"`
	K     int          `json:"k"`
}

type windowDraw struct {
	Date    string `json:"date"`
	Numbers [5]int `json:"numbers"`
}

type rankResponse struct {
	Numbers []int `json:"numbers"`
}

func (r *HTTPRanker) Rank(ctx context.Context, draws []domain.Draw, k int) ([]int, error) {
	window := draws
	if len(window) > windowSize {
		window = window[len(window)-windowSize:]
	}

	body := rankRequest{K: k}
	for _, d := range window {
		body.Draws = append(body.Draws, windowDraw{Date: d.Date.Format("2006-01-02"), Numbers: d.Winning})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("mlfeature: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("mlfeature: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(ctx, req)
	if err != nil {
		r.log.Error().Err(err).Msg("rank request failed")
		return nil, err
	}
	defer resp.Body.Close()

	var parsed rankResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		r.log.Error().Err(err).Msg("decode rank response failed")
		return nil, fmt.Errorf("mlfeature: decode response: %w", err)
	}

	if len(parsed.Numbers) > k {
		parsed.Numbers = parsed.Numbers[:k]
	}
	return parsed.Numbers, nil
}

// NoopRanker is used when neither OPENAI_API_KEY nor ML_FEATURE_URL is set:
// the lstm strategy
// degrades to an empty candidate list.
type NoopRanker struct{}

func (NoopRanker) Rank(ctx context.Context, draws []domain.Draw, k int) ([]int, error) {
	return nil, nil
}
