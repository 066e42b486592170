package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolify/leads-api/internal/service"
	appErrors "github.com/enrolify/leads-api/pkg/errors"
	"github.com/enrolify/leads-api/pkg/response"
)

type enrollmentService interface {
	EnrollInCareer(ctx context.Context, req service.EnrollCareerRequest) (int64, error)
	EnrollInSubject(ctx context.Context, req service.EnrollSubjectRequest) (int64, error)
}

// EnrollmentHandler handles enrollment endpoints.
type EnrollmentHandler struct {
	service enrollmentService
}

// NewEnrollmentHandler constructs an enrollment handler.
func NewEnrollmentHandler(svc enrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: svc}
}

type idResponse struct {
	ID int64 `json:"id"`
}

// EnrollCareer godoc
// @Summary Enroll a student in a career
// @Tags Enroll
// @Accept json
// @Produce json
// @Param payload body service.EnrollCareerRequest true "Career enrollment payload"
// @Success 200 {object} idResponse
// @Router /enroll/career [post]
func (h *EnrollmentHandler) EnrollCareer(c *gin.Context) {
	var req service.EnrollCareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	id, err := h.service.EnrollInCareer(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, idResponse{ID: id})
}

// EnrollSubject godoc
// @Summary Enroll a student in a subject
// @Tags Enroll
// @Accept json
// @Produce json
// @Param payload body service.EnrollSubjectRequest true "Subject enrollment payload"
// @Success 200 {object} idResponse
// @Router /enroll/subject [post]
func (h *EnrollmentHandler) EnrollSubject(c *gin.Context) {
	var req service.EnrollSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	id, err := h.service.EnrollInSubject(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, idResponse{ID: id})
}
