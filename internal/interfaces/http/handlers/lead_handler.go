package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"leadflow.backend/internal/domain/entities"
	domainerrors "leadflow.backend/internal/domain/errors"
	"leadflow.backend/internal/interfaces/http/response"
	"leadflow.backend/pkg/objectid"
)

type LeadService interface {
	ListLeads(ctx context.Context, q *entities.ListLeadsQuery) (*entities.LeadPage, error)
	GetLead(ctx context.Context, id string) (*entities.Lead, error)
}

type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (*entities.AnalyticsData, error)
}

// LeadHandler handles lead endpoints
type LeadHandler struct {
	leadUsecase      LeadService
	analyticsUsecase AnalyticsService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadUsecase LeadService, analyticsUsecase AnalyticsService) *LeadHandler {
	return &LeadHandler{
		leadUsecase:      leadUsecase,
		analyticsUsecase: analyticsUsecase,
	}
}

// ListLeads lists leads with search, filters, sorting and pagination
// GET /api/leads
func (h *LeadHandler) ListLeads(c *gin.Context) {
	var q entities.ListLeadsQuery

	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, validationError(err))
		return
	}

	page, err := h.leadUsecase.ListLeads(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}

// GetLead gets a lead by ID
// GET /api/leads/:id
func (h *LeadHandler) GetLead(c *gin.Context) {
	id := c.Param("id")
	if !objectid.IsValid(id) {
		response.Error(c, domainerrors.Validation([]domainerrors.FieldError{
			{Field: "id", Message: "invalid identifier"},
		}))
		return
	}

	lead, err := h.leadUsecase.GetLead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Lead not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, lead)
}

// GetAnalytics returns summary statistics over the lead collection
// GET /api/leads/analytics
func (h *LeadHandler) GetAnalytics(c *gin.Context) {
	data, err := h.analyticsUsecase.GetAnalytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, data)
}
