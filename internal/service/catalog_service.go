package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/enrolify/leads-api/internal/models"
)

type catalogLister interface {
	ListCareers(ctx context.Context) ([]models.Career, error)
	ListSubjectsByCareer(ctx context.Context, careerID int64) ([]models.Subject, error)
}

// CareerOffering is one career together with the subjects offered in it.
type CareerOffering struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Subjects []models.Subject `json:"subjects"`
}

// CatalogService exposes the read-only career/subject catalog. Catalog rows
// are seeded by migrations, never written through the API.
type CatalogService struct {
	catalog catalogLister
	logger  *zap.Logger
}

// NewCatalogService constructs CatalogService.
func NewCatalogService(catalog catalogLister, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{catalog: catalog, logger: logger}
}

// ListCareers returns every career with its offered subjects.
func (s *CatalogService) ListCareers(ctx context.Context) ([]CareerOffering, error) {
	careers, err := s.catalog.ListCareers(ctx)
	if err != nil {
		return nil, infraError(err, "failed to list careers")
	}
	offerings := make([]CareerOffering, 0, len(careers))
	for _, career := range careers {
		subjects, err := s.catalog.ListSubjectsByCareer(ctx, career.ID)
		if err != nil {
			return nil, infraError(err, "failed to list career subjects")
		}
		if subjects == nil {
			subjects = []models.Subject{}
		}
		offerings = append(offerings, CareerOffering{ID: career.ID, Name: career.Name, Subjects: subjects})
	}
	return offerings, nil
}
