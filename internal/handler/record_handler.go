package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/enrolify/leads-api/internal/models"
	"github.com/enrolify/leads-api/internal/service"
	appErrors "github.com/enrolify/leads-api/pkg/errors"
	"github.com/enrolify/leads-api/pkg/response"
)

type recordService interface {
	Load(ctx context.Context, req service.LoadRecordRequest) (int64, error)
	Get(ctx context.Context, id int64) (*models.LeadRecord, error)
	List(ctx context.Context, start, limit int) ([]models.LeadRecord, error)
}

type exportService interface {
	Export(ctx context.Context, format service.ExportFormat) (*service.ExportResult, error)
}

// RecordHandler handles complete lead record endpoints.
type RecordHandler struct {
	service      recordService
	export       exportService
	defaultLimit int
}

// NewRecordHandler constructs a record handler. export may be nil when the
// export endpoint is disabled.
func NewRecordHandler(svc recordService, export exportService, defaultLimit int) *RecordHandler {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &RecordHandler{service: svc, export: export, defaultLimit: defaultLimit}
}

// Load godoc
// @Summary Load a complete lead record
// @Description Creates the student if absent, enrolls it in the career and
// @Description then in the subject, returning the subject enrollment id.
// @Tags Records
// @Accept json
// @Produce json
// @Param payload body service.LoadRecordRequest true "Record payload"
// @Success 200 {object} idResponse
// @Router /records [post]
func (h *RecordHandler) Load(c *gin.Context) {
	var req service.LoadRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	id, err := h.service.Load(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, idResponse{ID: id})
}

// Get godoc
// @Summary Get a flattened record by enrollment id
// @Tags Records
// @Produce json
// @Param id path int true "Enrollment ID" minimum(1)
// @Success 200 {object} models.LeadRecord
// @Router /records/{id} [get]
func (h *RecordHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// List godoc
// @Summary List flattened records
// @Tags Records
// @Produce json
// @Param start query int false "Window start" minimum(0) default(0)
// @Param limit query int false "Window size" minimum(1) default(10)
// @Success 200 {array} models.LeadRecord
// @Router /records [get]
func (h *RecordHandler) List(c *gin.Context) {
	start, err := strconv.Atoi(c.DefaultQuery("start", "0"))
	if err != nil || start < 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "start must be a non-negative integer"))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.defaultLimit)))
	if err != nil || limit <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "limit must be a positive integer"))
		return
	}
	records, err := h.service.List(c.Request.Context(), start, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// Export godoc
// @Summary Export all records as CSV or PDF
// @Tags Records
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Export format" Enums(csv, pdf) default(csv)
// @Success 200 {file} file
// @Router /records/export [get]
func (h *RecordHandler) Export(c *gin.Context) {
	if h.export == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "export is disabled"))
		return
	}
	format := service.ExportFormat(c.DefaultQuery("format", "csv"))
	result, err := h.export.Export(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
