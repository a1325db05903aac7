package dto

import "time"

type SelectCategoryRequest struct {
	Category string `json:"category" binding:"required,oneof=funds time blood items"`
}

type SubTypeRequest struct {
	Kind string `json:"kind" binding:"required"`
}

// FundsGrantRequest edits the shared matching/corporate grant fields.
type FundsGrantRequest struct {
	Title       *string    `json:"title"`
	CauseID     *string    `json:"cause_id"`
	MissionTags []string   `json:"mission_tags"`
	SDGTags     []string   `json:"sdg_tags"`
	Value       *float64   `json:"value"`
	Date        *time.Time `json:"date"`
	Outcome     *string    `json:"outcome"`
}

type FundsDiscountRequest struct {
	ProjectTitle      *string    `json:"project_title"`
	CauseID           *string    `json:"cause_id"`
	Mission           *string    `json:"mission"`
	SDG               *string    `json:"sdg"`
	DiscountValue     *float64   `json:"discount_value"`
	TotalProjectValue *float64   `json:"total_project_value"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	Outcome           *string    `json:"outcome"`
}

type TimeEntryRequest struct {
	Title             *string    `json:"title"`
	CauseID           *string    `json:"cause_id"`
	Mission           *string    `json:"mission"`
	SDG               *string    `json:"sdg"`
	Skills            []string   `json:"skills"`
	Hours             *float64   `json:"hours"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	Outcome           *string    `json:"outcome"`
	ProjectValue      *float64   `json:"project_value"`
	EmployeeTimeValue *float64   `json:"employee_time_value"`
}

type BloodEntryRequest struct {
	DonationCount *int       `json:"donation_count"`
	DonorLocation *string    `json:"donor_location"`
	Date          *time.Time `json:"date"`
}

type ItemsEntryRequest struct {
	ItemCategory *string    `json:"item_category"`
	ItemName     *string    `json:"item_name"`
	CauseID      *string    `json:"cause_id"`
	Units        *float64   `json:"units"`
	ValuePerUnit *float64   `json:"value_per_unit"`
	Date         *time.Time `json:"date"`
	Outcome      *string    `json:"outcome"`
}

type AttachProofRequest struct {
	FileName  string `json:"file_name" binding:"required"`
	SizeBytes int64  `json:"size_bytes" binding:"required,gt=0"`
}
