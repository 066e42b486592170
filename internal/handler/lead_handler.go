package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/enrolify/leads-api/internal/models"
	"github.com/enrolify/leads-api/internal/service"
	appErrors "github.com/enrolify/leads-api/pkg/errors"
	"github.com/enrolify/leads-api/pkg/response"
)

type leadService interface {
	Create(ctx context.Context, req service.CreateLeadRequest) (int64, error)
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, id int64) (*models.Student, error)
}

// LeadHandler handles lead endpoints.
type LeadHandler struct {
	service leadService
}

// NewLeadHandler constructs a lead handler.
func NewLeadHandler(svc leadService) *LeadHandler {
	return &LeadHandler{service: svc}
}

type leadIDResponse struct {
	StudentID int64 `json:"student_id"`
}

// Create godoc
// @Summary Create a lead
// @Tags Leads
// @Accept json
// @Produce json
// @Param payload body service.CreateLeadRequest true "Lead payload"
// @Success 200 {object} leadIDResponse
// @Router /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, leadIDResponse{StudentID: id})
}

// List godoc
// @Summary List all leads
// @Tags Leads
// @Produce json
// @Success 200 {array} models.Student
// @Router /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, leads)
}

// Get godoc
// @Summary Get a lead by id
// @Tags Leads
// @Produce json
// @Param id path int true "Student ID" minimum(1)
// @Success 200 {object} models.Student
// @Router /leads/{id} [get]
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	lead, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lead)
}

// pathID parses the id path parameter, rejecting anything that is not a
// positive integer before the workflow runs.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "id must be a positive integer")
	}
	return id, nil
}
