package impact

import (
	"errors"
	"time"
)

var (
	ErrNoCategory        = errors.New("no category selected")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownSubType    = errors.New("unknown sub-type")
	ErrNegativeCount     = errors.New("count must be >= 0")
	ErrValidationFailed  = errors.New("validation failed")
	ErrAttachmentType    = errors.New("attachment type not allowed")
	ErrAttachmentTooBig  = errors.New("attachment exceeds size limit")
	ErrConflictingValues = errors.New("project value and employee time value are mutually exclusive")
)

// LivesPerDonation is the conversion factor applied to blood donation
// counts.
const LivesPerDonation = 3

// Category is the top-level selector of the entry form.
type Category string

const (
	CategoryUnselected Category = ""
	CategoryFunds      Category = "funds"
	CategoryTime       Category = "time"
	CategoryBlood      Category = "blood"
	CategoryItems      Category = "items"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryFunds, CategoryTime, CategoryBlood, CategoryItems:
		return true
	}
	return false
}

// FundsKind selects the funds branch layout. Matching and corporate
// share one field set; discount has its own.
type FundsKind string

const (
	FundsMatching  FundsKind = "matching"
	FundsCorporate FundsKind = "corporate"
	FundsDiscount  FundsKind = "discount"
)

// TimeKind selects which value field the time branch collects.
type TimeKind string

const (
	TimeProBono   TimeKind = "probono"
	TimeCorporate TimeKind = "corporate"
)

// BloodKind only changes the display label; the field set is fixed.
type BloodKind string

const (
	BloodWhole     BloodKind = "whole"
	BloodPlasma    BloodKind = "plasma"
	BloodPlatelets BloodKind = "platelets"
)

// ItemCategory is purely descriptive and never branches fields.
type ItemCategory string

const (
	ItemClothing    ItemCategory = "clothing"
	ItemFood        ItemCategory = "food"
	ItemFurniture   ItemCategory = "furniture"
	ItemElectronics ItemCategory = "electronics"
	ItemBooks       ItemCategory = "books"
	ItemOther       ItemCategory = "other"
)

// Attachment is a proof-of-completion upload reference. Validation
// happens in CheckAttachment before it is accepted into form state.
type Attachment struct {
	FileName  string `json:"file_name"`
	SizeBytes int64  `json:"size_bytes"`
}

// GrantFields is the shared field set of the matching and corporate
// funds sub-types.
type GrantFields struct {
	Title       string      `json:"title" validate:"required"`
	CauseID     string      `json:"cause_id" validate:"required"`
	MissionTags []string    `json:"mission_tags" validate:"min=1"`
	SDGTags     []string    `json:"sdg_tags"`
	Value       float64     `json:"value" validate:"gt=0"`
	Date        time.Time   `json:"date" validate:"required"`
	Outcome     string      `json:"outcome"`
	Proof       *Attachment `json:"proof,omitempty"`
}

// DiscountFields is the disjoint field set of the discount sub-type.
type DiscountFields struct {
	ProjectTitle      string      `json:"project_title" validate:"required"`
	CauseID           string      `json:"cause_id" validate:"required"`
	Mission           string      `json:"mission" validate:"required"`
	SDG               string      `json:"sdg"`
	DiscountValue     float64     `json:"discount_value" validate:"gt=0"`
	TotalProjectValue float64     `json:"total_project_value" validate:"gte=0"`
	StartDate         time.Time   `json:"start_date" validate:"required"`
	EndDate           time.Time   `json:"end_date" validate:"required"`
	Outcome           string      `json:"outcome"`
	Proof             *Attachment `json:"proof,omitempty"`
}

// FundsState is the funds branch. Exactly one of Grant or Discount is
// populated, keyed by Kind.
type FundsState struct {
	Kind     FundsKind       `json:"kind"`
	Grant    *GrantFields    `json:"grant,omitempty"`
	Discount *DiscountFields `json:"discount,omitempty"`
}

// TimeState is the time branch. ProjectValue is collected for pro bono
// entries and EmployeeTimeValue for corporate ones, never both.
type TimeState struct {
	Kind              TimeKind    `json:"kind"`
	Title             string      `json:"title" validate:"required"`
	CauseID           string      `json:"cause_id" validate:"required"`
	Mission           string      `json:"mission"`
	SDG               string      `json:"sdg"`
	Skills            []string    `json:"skills"`
	Hours             float64     `json:"hours" validate:"gt=0"`
	StartDate         time.Time   `json:"start_date" validate:"required"`
	EndDate           time.Time   `json:"end_date" validate:"required"`
	Outcome           string      `json:"outcome"`
	ProjectValue      *float64    `json:"project_value,omitempty"`
	EmployeeTimeValue *float64    `json:"employee_time_value,omitempty"`
	Proof             *Attachment `json:"proof,omitempty"`
}

// BloodState is the blood branch. LivesSaved is derived and recomputed
// on every change to DonationCount.
type BloodState struct {
	Kind          BloodKind   `json:"kind"`
	DonationCount int         `json:"donation_count" validate:"gte=0"`
	DonorLocation string      `json:"donor_location" validate:"required"`
	Date          time.Time   `json:"date" validate:"required"`
	Proof         *Attachment `json:"proof,omitempty"`
	LivesSaved    int         `json:"lives_saved"`
}

// ItemsState is the items branch. TotalValue is derived and shown only
// when positive.
type ItemsState struct {
	ItemCategory ItemCategory `json:"item_category"`
	ItemName     string       `json:"item_name" validate:"required"`
	CauseID      string       `json:"cause_id" validate:"required"`
	Units        float64      `json:"units" validate:"gte=0"`
	ValuePerUnit float64      `json:"value_per_unit" validate:"gte=0"`
	Date         time.Time    `json:"date" validate:"required"`
	Outcome      string       `json:"outcome"`
	Proof        *Attachment  `json:"proof,omitempty"`
	TotalValue   float64      `json:"total_value"`
}

// Entry is the validated submission snapshot: a tagged union with
// exactly one branch set, matching Category.
type Entry struct {
	Category Category    `json:"category"`
	Funds    *FundsState `json:"funds,omitempty"`
	Time     *TimeState  `json:"time,omitempty"`
	Blood    *BloodState `json:"blood,omitempty"`
	Items    *ItemsState `json:"items,omitempty"`
}

// AttachmentPolicy is the single upload policy applied everywhere.
type AttachmentPolicy struct {
	MaxSizeBytes      int64
	AllowedExtensions []string
}

// DefaultAttachmentPolicy caps uploads at 2 MB with the proof-of-
// completion extension allow-list.
func DefaultAttachmentPolicy() AttachmentPolicy {
	return AttachmentPolicy{
		MaxSizeBytes:      2 << 20,
		AllowedExtensions: []string{"pdf", "jpg", "jpeg", "png"},
	}
}
