package charity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client looks up causes in the external charity registry. Every
// failure mode degrades to the fallback list; Lookup never returns an
// error to its caller.
type Client struct {
	http     *resty.Client
	baseURL  string
	pageSize int
	logger   *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, pageSize int, logger *zap.Logger) *Client {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetRetryCount(0),
		baseURL:  baseURL,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Result carries the lookup outcome. Degraded is true when the
// fallback list was substituted; the API surfaces it as an
// informational banner, never as an error.
type Result struct {
	Charities []Charity `json:"charities"`
	Degraded  bool      `json:"degraded"`
}

// Lookup fetches one page of registry records. Any transport error,
// non-2xx status, or parse failure yields the fallback list.
func (c *Client) Lookup(ctx context.Context, page int) Result {
	if c.baseURL == "" {
		return Result{Charities: FallbackCharities, Degraded: true}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("page", fmt.Sprintf("%d", page)).
		SetQueryParam("per_page", fmt.Sprintf("%d", c.pageSize)).
		Get(c.baseURL)
	if err != nil {
		c.logger.Warn("charity registry unreachable, using fallback list", zap.Error(err))
		return Result{Charities: FallbackCharities, Degraded: true}
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		c.logger.Warn("charity registry returned non-success status",
			zap.Int("status", resp.StatusCode()))
		return Result{Charities: FallbackCharities, Degraded: true}
	}

	charities, err := parseRegistryPayload(resp.Body())
	if err != nil || len(charities) == 0 {
		c.logger.Warn("charity registry payload unusable, using fallback list", zap.Error(err))
		return Result{Charities: FallbackCharities, Degraded: true}
	}

	return Result{Charities: charities}
}

// parseRegistryPayload tolerates the field spellings observed across
// registry versions: records may arrive under "nonprofits", "data" or
// as a bare array, with id-like and name-like fields under several
// names.
func parseRegistryPayload(body []byte) ([]Charity, error) {
	var envelope struct {
		Nonprofits []map[string]any `json:"nonprofits"`
		Data       []map[string]any `json:"data"`
	}
	records := []map[string]any{}
	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case len(envelope.Nonprofits) > 0:
			records = envelope.Nonprofits
		case len(envelope.Data) > 0:
			records = envelope.Data
		}
	}
	if len(records) == 0 {
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, fmt.Errorf("unrecognized registry payload: %w", err)
		}
	}

	charities := make([]Charity, 0, len(records))
	for _, rec := range records {
		id := firstString(rec, "id", "ein", "slug", "uuid")
		name := firstString(rec, "name", "charityName", "title")
		if name == "" {
			continue
		}
		if id == "" {
			id = name
		}
		charities = append(charities, Charity{ID: id, Name: name})
	}
	return charities, nil
}

func firstString(rec map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := rec[key]; ok {
			switch s := v.(type) {
			case string:
				if s != "" {
					return s
				}
			case float64:
				return fmt.Sprintf("%.0f", s)
			}
		}
	}
	return ""
}
