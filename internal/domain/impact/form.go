package impact

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/charity"
)

var validate = validator.New()

// Form is the impact entry state machine. At most one category branch
// holds state at a time; selecting a category wipes every other branch
// so an abandoned path can never leak fields into a submission.
type Form struct {
	mu sync.Mutex

	category Category
	funds    *FundsState
	time     *TimeState
	blood    *BloodState
	items    *ItemsState

	causes         []charity.Charity
	causesDegraded bool
	lookupToken    uint64

	policy AttachmentPolicy
}

func NewForm(policy AttachmentPolicy) *Form {
	if policy.MaxSizeBytes <= 0 {
		policy = DefaultAttachmentPolicy()
	}
	return &Form{policy: policy}
}

// SelectCategory switches the active branch. Re-selecting the current
// category keeps its state; anything else starts the new branch from
// zero and discards the rest, including in-flight cause lookups.
func (f *Form) SelectCategory(c Category) error {
	if !c.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.category == c {
		return nil
	}

	f.category = c
	f.funds, f.time, f.blood, f.items = nil, nil, nil, nil
	f.lookupToken++ // any response for an earlier token is now stale

	switch c {
	case CategoryFunds:
		f.funds = &FundsState{}
	case CategoryTime:
		f.time = &TimeState{Kind: TimeProBono}
	case CategoryBlood:
		f.blood = &BloodState{Kind: BloodWhole}
	case CategoryItems:
		f.items = &ItemsState{ItemCategory: ItemOther}
	}
	return nil
}

// Category returns the active branch selector.
func (f *Form) Category() Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.category
}

// SetFundsKind picks the funds sub-type. Switching between the grant
// layouts (matching, corporate) keeps the grant fields; crossing the
// grant/discount boundary resets them.
func (f *Form) SetFundsKind(k FundsKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.funds == nil {
		return ErrNoCategory
	}
	switch k {
	case FundsMatching, FundsCorporate:
		if f.funds.Grant == nil {
			f.funds.Grant = &GrantFields{}
		}
		f.funds.Discount = nil
	case FundsDiscount:
		if f.funds.Discount == nil {
			f.funds.Discount = &DiscountFields{}
		}
		f.funds.Grant = nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSubType, k)
	}
	f.funds.Kind = k
	return nil
}

// SetTimeKind picks the time sub-type and clears the value field that
// belongs to the other one.
func (f *Form) SetTimeKind(k TimeKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.time == nil {
		return ErrNoCategory
	}
	switch k {
	case TimeProBono:
		f.time.EmployeeTimeValue = nil
	case TimeCorporate:
		f.time.ProjectValue = nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSubType, k)
	}
	f.time.Kind = k
	return nil
}

// SetBloodKind changes the donation label only.
func (f *Form) SetBloodKind(k BloodKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.blood == nil {
		return ErrNoCategory
	}
	switch k {
	case BloodWhole, BloodPlasma, BloodPlatelets:
		f.blood.Kind = k
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownSubType, k)
}

// EditFunds applies fn to the active funds branch.
func (f *Form) EditFunds(fn func(*FundsState)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.funds == nil {
		return ErrNoCategory
	}
	fn(f.funds)
	return nil
}

// EditTime applies fn to the active time branch and then enforces the
// pro bono / corporate value exclusivity.
func (f *Form) EditTime(fn func(*TimeState)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.time == nil {
		return ErrNoCategory
	}
	fn(f.time)
	if f.time.ProjectValue != nil && f.time.EmployeeTimeValue != nil {
		return ErrConflictingValues
	}
	return nil
}

// EditItems applies fn to the active items branch and recomputes the
// derived total.
func (f *Form) EditItems(fn func(*ItemsState)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.items == nil {
		return ErrNoCategory
	}
	fn(f.items)
	f.items.TotalValue = f.items.Units * f.items.ValuePerUnit
	return nil
}

// EditBlood applies fn to the active blood branch. The donation count
// must stay non-negative; LivesSaved is recomputed on every edit.
func (f *Form) EditBlood(fn func(*BloodState)) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.blood == nil {
		return ErrNoCategory
	}
	fn(f.blood)
	if f.blood.DonationCount < 0 {
		f.blood.DonationCount = 0
		f.blood.LivesSaved = 0
		return ErrNegativeCount
	}
	f.blood.LivesSaved = f.blood.DonationCount * LivesPerDonation
	return nil
}

// AttachProof validates an upload against the single attachment policy
// and stores it on the active branch.
func (f *Form) AttachProof(a Attachment) error {
	if err := CheckAttachment(a, f.policy); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.funds != nil:
		if f.funds.Grant != nil {
			f.funds.Grant.Proof = &a
		} else if f.funds.Discount != nil {
			f.funds.Discount.Proof = &a
		} else {
			return ErrUnknownSubType
		}
	case f.time != nil:
		f.time.Proof = &a
	case f.blood != nil:
		f.blood.Proof = &a
	case f.items != nil:
		f.items.Proof = &a
	default:
		return ErrNoCategory
	}
	return nil
}

// CheckAttachment applies the uniform upload policy: extension
// allow-list first, then the size cap.
func CheckAttachment(a Attachment, policy AttachmentPolicy) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(a.FileName)), ".")
	allowed := false
	for _, e := range policy.AllowedExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: .%s", ErrAttachmentType, ext)
	}
	if a.SizeBytes > policy.MaxSizeBytes {
		return fmt.Errorf("%w: %d bytes", ErrAttachmentTooBig, a.SizeBytes)
	}
	return nil
}

// BeginCauseLookup reserves a token for an asynchronous registry fetch.
// Only a response presented with the newest token is applied.
func (f *Form) BeginCauseLookup() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookupToken++
	return f.lookupToken
}

// ApplyCauseLookup installs a lookup result. Stale tokens are dropped
// so a slow response can never overwrite a newer one.
func (f *Form) ApplyCauseLookup(token uint64, result charity.Result) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if token != f.lookupToken {
		return false
	}
	f.causes = result.Charities
	f.causesDegraded = result.Degraded
	return true
}

// Causes returns the currently loaded cause list and whether it is the
// degraded fallback.
func (f *Form) Causes() ([]charity.Charity, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.causes, f.causesDegraded
}

// Snapshot validates the active branch only and returns it as an Entry.
// Fields of abandoned branches never participate.
func (f *Form) Snapshot() (*Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.category {
	case CategoryFunds:
		var target any
		switch {
		case f.funds.Grant != nil:
			target = f.funds.Grant
		case f.funds.Discount != nil:
			target = f.funds.Discount
		default:
			return nil, ErrUnknownSubType
		}
		if err := validate.Struct(target); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		fs := *f.funds
		return &Entry{Category: CategoryFunds, Funds: &fs}, nil

	case CategoryTime:
		if err := validate.Struct(f.time); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		ts := *f.time
		return &Entry{Category: CategoryTime, Time: &ts}, nil

	case CategoryBlood:
		if err := validate.Struct(f.blood); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		bs := *f.blood
		return &Entry{Category: CategoryBlood, Blood: &bs}, nil

	case CategoryItems:
		if err := validate.Struct(f.items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		is := *f.items
		return &Entry{Category: CategoryItems, Items: &is}, nil
	}
	return nil, ErrNoCategory
}

// Reset returns the form to the unselected state. Loaded causes stay;
// they are not per-category state.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.category = CategoryUnselected
	f.funds, f.time, f.blood, f.items = nil, nil, nil, nil
	f.lookupToken++
}
