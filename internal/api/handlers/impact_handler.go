package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/dto"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/api/middleware"
	"github.com/VOLIGROUP/voli-impact-dashboard-sub000/internal/domain/impact"
)

// ImpactHandler exposes the impact entry form. Each user gets one live
// form; drafts survive between requests until submitted or reset.
type ImpactHandler struct {
	svc    impact.Service
	logger *zap.Logger

	mu    sync.Mutex
	forms map[uuid.UUID]*impact.Form
}

func NewImpactHandler(svc impact.Service, logger *zap.Logger) *ImpactHandler {
	return &ImpactHandler{
		svc:    svc,
		logger: logger,
		forms:  make(map[uuid.UUID]*impact.Form),
	}
}

func (h *ImpactHandler) formFor(userID uuid.UUID) *impact.Form {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, exists := h.forms[userID]
	if !exists {
		f = h.svc.NewForm()
		h.forms[userID] = f
	}
	return f
}

func (h *ImpactHandler) withForm(c *gin.Context) (*impact.Form, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return nil, uuid.Nil, false
	}
	return h.formFor(userID), userID, true
}

func (h *ImpactHandler) SelectCategory(c *gin.Context) {
	form, _, ok := h.withForm(c)
	if !ok {
		return
	}

	var req dto.SelectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := form.SelectCategory(impact.Category(req.Category)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": req.Category})
}

func (h *ImpactHandler) SetFundsKind(c *gin.Context) {
	form, _, ok := h.withForm(c)
	if !ok {
		return
	}

	var req dto.SubTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondFormEdit(c, form.SetFundsKind(impact.FundsKind(req.Kind)))
}

func (h *ImpactHandler) SetTimeKind(c *gin.Context) {
	form, _, ok := h.withForm(c)
	if !ok {
		return
	}

	var req dto.SubTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondFormEdit(c, form.SetTimeKind(impact.TimeKind(req.Kind)))
}

func (h *ImpactHandler) SetBloodKind(c *gin.Context) {
	form, _, ok := h.withForm(c)
	if !ok {
		return
	}

	var req dto.SubTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondFormEdit(c, form.SetBloodKind(impact.BloodKind(req.Kind)))
}

func (h *ImpactHandler) EditFunds(c *gin.Context) {
	form, _, ok := h.withForm(c)
	if !ok {
		return
	}

	var grant dto.FundsGrantRequest
	var discount dto.FundsDiscountRequest
	kind := c.Query("kind")
	if kind == string(impact.FundsDiscount) {
		if err := c.ShouldBindJSON(&discount); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.respondFormEdit(c, form.EditFunds(func(fs *impact.FundsState) {
			if fs.Discount == nil {
				return
			}
			applyString(&fs.Discount.ProjectTitle, discount.ProjectTitle)
			applyString(&fs.Discount.CauseID, discount.CauseID)
			applyString(&fs.Discount.Mission, discount.Mission)
			applyString(&fs.Discount.SDG, discount.SDG)
			applyFloat(&fs.Discount.DiscountValue, discount.DiscountValue)
			applyFloat(&fs.Discount.TotalProjectValue, discount.TotalProjectValue)
			if discount.StartDate != nil {
				fs.Discount.StartDate = *discount.StartDate
			}
			if discount.EndDate != nil {
				fs.Discount.EndDate = *discount.EndDate
			}
			applyString(&fs.Discount.Outcome, discount.Outcome)
		}))
		return
	}

	if err := c.ShouldBindJSON(&grant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondFormEdit(c, form.EditFunds(func(fs *impact.FundsState) {
		if fs.Grant == nil {
			return
		}
		applyString(&fs.Grant.Title, grant.Title)
		applyString(&fs.Grant.CauseID, grant.CauseID)
		if grant.MissionTags != nil {
			fs.Grant.MissionTags = grant.MissionTags
		}
		if grant.SDGTags != nil {
			fs.Grant.SDGTags = grant.SDGTags
		}
		applyFloat(&fs.Grant.Value, grant.Value)
		if grant.Date != nil {
			fs.Grant.Date = *grant.Date
		}
		applyString(&fs.Grant.Outcome, grant.Outcome)
	}))
}

func (h *ImpactHandler) EditTime(c *gin.Context) {
	form, _, ok := h.withForm(c)
	if !ok {
		return
	}

	var req dto.TimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondFormEdit(c, form.EditTime(func(ts *impact.TimeState) {
		applyString(&ts.Title, req.Title)
		applyString(&ts.CauseID, req.CauseID)
		applyString(&ts.Mission, req.Mission)
		applyString(&ts.SDG, req.SDG)
		if req.Skills != nil {
			ts.Skills = req.Skills
		}
		applyFloat(&ts.Hours, req.Hours)
		if req.StartDate != nil {
			ts.StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			ts.EndDate = *req.EndDate
		}
		applyString(&ts.Outcome, req.Outcome)
		if req.ProjectValue != nil {
			ts.ProjectValue = req.ProjectValue
		}
		if req.EmployeeTimeValue != nil {
			ts.EmployeeTimeValue = req.EmployeeTimeValue
		}
	}))
}

func (h *ImpactHandler) EditBlood(c *gin.Context) {
	form, _, ok := h.withForm(c)
	if !ok {
		return
	}

	var req dto.BloodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondFormEdit(c, form.EditBlood(func(b *impact.BloodState) {
		if req.DonationCount != nil {
			b.DonationCount = *req.DonationCount
		}
		applyString(&b.DonorLocation, req.DonorLocation)
		if req.Date != nil {
			b.Date = *req.Date
		}
	}))
}

func (h *ImpactHandler) EditItems(c *gin.Context) {
	form, _, ok := h.withForm(c)
	if !ok {
		return
	}

	var req dto.ItemsEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondFormEdit(c, form.EditItems(func(i *impact.ItemsState) {
		if req.ItemCategory != nil {
			i.ItemCategory = impact.ItemCategory(*req.ItemCategory)
		}
		applyString(&i.ItemName, req.ItemName)
		applyString(&i.CauseID, req.CauseID)
		applyFloat(&i.Units, req.Units)
		applyFloat(&i.ValuePerUnit, req.ValuePerUnit)
		if req.Date != nil {
			i.Date = *req.Date
		}
		applyString(&i.Outcome, req.Outcome)
	}))
}

func (h *ImpactHandler) AttachProof(c *gin.Context) {
	form, _, ok := h.withForm(c)
	if !ok {
		return
	}

	var req dto.AttachProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := form.AttachProof(impact.Attachment{FileName: req.FileName, SizeBytes: req.SizeBytes})
	if err != nil {
		switch {
		case errors.Is(err, impact.ErrAttachmentType), errors.Is(err, impact.ErrAttachmentTooBig):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, impact.ErrNoCategory):
			c.JSON(http.StatusConflict, gin.H{"error": "no category selected"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "proof attached"})
}

func (h *ImpactHandler) Causes(c *gin.Context) {
	form, _, ok := h.withForm(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	h.svc.LoadCauses(c.Request.Context(), form, page)

	causes, degraded := form.Causes()
	c.JSON(http.StatusOK, gin.H{"causes": causes, "degraded": degraded})
}

func (h *ImpactHandler) Submit(c *gin.Context) {
	form, userID, ok := h.withForm(c)
	if !ok {
		return
	}

	category := form.Category()
	logged, err := h.svc.Submit(c.Request.Context(), form, userID)
	if err != nil {
		switch {
		case errors.Is(err, impact.ErrNoCategory):
			c.JSON(http.StatusConflict, gin.H{"error": "no category selected"})
		case errors.Is(err, impact.ErrValidationFailed), errors.Is(err, impact.ErrUnknownSubType):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.logger.Error("impact submission failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit entry"})
		}
		return
	}

	middleware.CountImpactSubmission(string(category))
	c.JSON(http.StatusCreated, logged)
}

func (h *ImpactHandler) Reset(c *gin.Context) {
	form, _, ok := h.withForm(c)
	if !ok {
		return
	}
	form.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "form reset"})
}

func (h *ImpactHandler) respondFormEdit(c *gin.Context, err error) {
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "updated"})
		return
	}
	switch {
	case errors.Is(err, impact.ErrNoCategory):
		c.JSON(http.StatusConflict, gin.H{"error": "no category selected"})
	case errors.Is(err, impact.ErrUnknownSubType),
		errors.Is(err, impact.ErrNegativeCount),
		errors.Is(err, impact.ErrConflictingValues):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update form"})
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
