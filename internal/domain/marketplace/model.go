package marketplace

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrInvalidInput        = errors.New("invalid input")
)

// Source distinguishes hand-curated opportunities from ones scraped
// off partner boards.
type Source string

const (
	SourceCurated Source = "curated"
	SourceScraped Source = "scraped"
)

// Opportunity is one volunteering or giving opening shown in the
// marketplace.
type Opportunity struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Points       int       `json:"points"`
	Date         time.Time `json:"date"`
	Source       Source    `json:"source"`
	URL          string    `json:"url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateOpportunityInput carries the caller-settable fields of a
// curated opportunity.
type CreateOpportunityInput struct {
	Title        string
	Organization string
	Location     string
	Description  string
	Category     string
	Points       int
	Date         time.Time
	URL          string
}

func NewOpportunity(input CreateOpportunityInput) (*Opportunity, error) {
	if input.Title == "" || input.Organization == "" {
		return nil, ErrInvalidInput
	}
	return &Opportunity{
		ID:           uuid.New(),
		Title:        input.Title,
		Organization: input.Organization,
		Location:     input.Location,
		Description:  input.Description,
		Category:     input.Category,
		Points:       input.Points,
		Date:         input.Date,
		Source:       SourceCurated,
		URL:          input.URL,
		CreatedAt:    time.Now(),
	}, nil
}
