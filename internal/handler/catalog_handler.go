package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolify/leads-api/internal/service"
	"github.com/enrolify/leads-api/pkg/response"
)

type catalogService interface {
	ListCareers(ctx context.Context) ([]service.CareerOffering, error)
}

// CatalogHandler serves the read-only career/subject catalog.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler constructs a catalog handler.
func NewCatalogHandler(svc catalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// ListCareers godoc
// @Summary List careers and their offered subjects
// @Tags Catalog
// @Produce json
// @Success 200 {array} service.CareerOffering
// @Router /careers [get]
func (h *CatalogHandler) ListCareers(c *gin.Context) {
	offerings, err := h.service.ListCareers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, offerings)
}
