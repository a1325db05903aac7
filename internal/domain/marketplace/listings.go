package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// timeNow is swapped in tests to pin the freshness window.
var timeNow = time.Now

// ListingsClient pulls scraped listings from the partner board export.
// A listing is served only while its CreatedAt falls inside the
// trailing freshness window; stale scrapes silently drop out.
type ListingsClient struct {
	http        *resty.Client
	baseURL     string
	freshWindow time.Duration
	logger      *zap.Logger
}

func NewListingsClient(baseURL string, timeout, freshWindow time.Duration, logger *zap.Logger) *ListingsClient {
	if freshWindow <= 0 {
		freshWindow = 7 * 24 * time.Hour
	}
	return &ListingsClient{
		http: resty.New().
			SetTimeout(timeout).
			SetRetryCount(0),
		baseURL:     baseURL,
		freshWindow: freshWindow,
		logger:      logger,
	}
}

type scrapedListing struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	URL          string    `json:"url"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

// Fetch returns the fresh scraped listings. An unreachable or broken
// source yields an empty slice, not an error; the curated catalog keeps
// the marketplace alive on its own.
func (c *ListingsClient) Fetch(ctx context.Context) []Opportunity {
	if c.baseURL == "" {
		return nil
	}

	resp, err := c.http.R().SetContext(ctx).Get(c.baseURL)
	if err != nil {
		c.logger.Warn("listings source unreachable", zap.Error(err))
		return nil
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		c.logger.Warn("listings source returned non-success status",
			zap.Int("status", resp.StatusCode()))
		return nil
	}

	var listings []scrapedListing
	if err := json.Unmarshal(resp.Body(), &listings); err != nil {
		var envelope struct {
			Listings []scrapedListing `json:"listings"`
		}
		if err2 := json.Unmarshal(resp.Body(), &envelope); err2 != nil {
			c.logger.Warn("listings payload unparseable", zap.Error(err))
			return nil
		}
		listings = envelope.Listings
	}

	cutoff := timeNow().Add(-c.freshWindow)
	fresh := make([]Opportunity, 0, len(listings))
	for _, l := range listings {
		if l.Title == "" {
			continue
		}
		if !l.CreatedAt.After(cutoff) {
			continue
		}
		fresh = append(fresh, Opportunity{
			ID:           listingID(l.ID, l.Title),
			Title:        l.Title,
			Organization: l.Organization,
			Location:     l.Location,
			Description:  l.Description,
			Category:     l.Category,
			Date:         l.Date,
			Source:       SourceScraped,
			URL:          l.URL,
			CreatedAt:    l.CreatedAt,
		})
	}

	if dropped := len(listings) - len(fresh); dropped > 0 {
		c.logger.Info("dropped stale scraped listings",
			zap.Int("dropped", dropped),
			zap.Int("fresh", len(fresh)))
	}
	return fresh
}

// listingID derives a stable UUID from the scrape identifier so the
// same listing keeps its id across fetches.
func listingID(id, title string) uuid.UUID {
	seed := id
	if seed == "" {
		seed = title
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("listing:%s", seed)))
}
