package team

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTeamNotFound  = errors.New("team not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyMember = errors.New("user is already a member")
	ErrNotMember     = errors.New("user is not a member")
)

// Team is a company group competing on the shared leaderboards.
type Team struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	LeadID      uuid.UUID   `json:"lead_id"`
	MemberIDs   []uuid.UUID `json:"member_ids"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CreateTeamInput carries the caller-settable team fields. The lead is
// always the first member.
type CreateTeamInput struct {
	Name        string
	Description string
	LeadID      uuid.UUID
}

func NewTeam(input CreateTeamInput) (*Team, error) {
	if input.Name == "" || input.LeadID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	now := time.Now()
	return &Team{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		LeadID:      input.LeadID,
		MemberIDs:   []uuid.UUID{input.LeadID},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// HasMember reports whether the user belongs to the team.
func (t *Team) HasMember(userID uuid.UUID) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
