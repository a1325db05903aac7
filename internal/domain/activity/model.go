package activity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNegativePoints   = errors.New("points must be >= 0")
	ErrMeasureMismatch  = errors.New("measure does not match activity type")
)

// Type is the closed set of activity kinds.
type Type string

const (
	TypeVolunteer   Type = "volunteer"
	TypeFundraising Type = "fundraising"
	TypeLearning    Type = "learning"
	TypeOther       Type = "other"
)

// IsValid reports whether t is a member of the closed type set.
func (t Type) IsValid() bool {
	switch t {
	case TypeVolunteer, TypeFundraising, TypeLearning, TypeOther:
		return true
	}
	return false
}

// Coordinates is an optional geospatial tag on an activity. Only the
// map features consume it; nothing here computes with it.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity is a single logged unit of impact. Hours is only meaningful
// for volunteer activities and AmountRaised only for fundraising ones;
// NewActivity enforces this so a stored record can never carry a
// contradictory measure.
type Activity struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"user_id"`
	Type         Type         `json:"type"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Impact       string       `json:"impact"`
	Date         time.Time    `json:"date"`
	Points       int          `json:"points"`
	Hours        *float64     `json:"hours,omitempty"`
	AmountRaised *float64     `json:"amount_raised,omitempty"`
	Location     string       `json:"location,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// CreateActivityInput carries the fields a caller may set when logging
// a new activity. ID and timestamps are assigned by the service.
type CreateActivityInput struct {
	UserID       uuid.UUID
	Type         Type
	Title        string
	Description  string
	Impact       string
	Date         time.Time
	Points       int
	Hours        *float64
	AmountRaised *float64
	Location     string
	Coordinates  *Coordinates
}

// UpdateActivityInput carries the mutable fields for the edit flow.
type UpdateActivityInput struct {
	Title       *string
	Description *string
	Impact      *string
	Date        *time.Time
	Hours       *float64
	AmountRaised *float64
}

// NewActivity validates an input and builds an Activity. Points must be
// non-negative; Hours is rejected off the volunteer type and
// AmountRaised off the fundraising type.
func NewActivity(input CreateActivityInput) (*Activity, error) {
	if !input.Type.IsValid() {
		return nil, ErrInvalidInput
	}
	if input.Title == "" {
		return nil, ErrInvalidInput
	}
	if input.Points < 0 {
		return nil, ErrNegativePoints
	}
	if input.Hours != nil && input.Type != TypeVolunteer {
		return nil, ErrMeasureMismatch
	}
	if input.AmountRaised != nil && input.Type != TypeFundraising {
		return nil, ErrMeasureMismatch
	}

	now := time.Now()
	return &Activity{
		ID:           uuid.New(),
		UserID:       input.UserID,
		Type:         input.Type,
		Title:        input.Title,
		Description:  input.Description,
		Impact:       input.Impact,
		Date:         input.Date,
		Points:       input.Points,
		Hours:        input.Hours,
		AmountRaised: input.AmountRaised,
		Location:     input.Location,
		Coordinates:  input.Coordinates,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
