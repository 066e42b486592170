package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/enrolify/leads-api/internal/models"
)

// CatalogRepository resolves the career/subject catalog: careers, subjects
// and the per-career subject offerings. Catalog rows are seeded out of band;
// this service never creates them.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository constructs a CatalogRepository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// FindCareerIDByName resolves a career id from its unique name.
func (r *CatalogRepository) FindCareerIDByName(ctx context.Context, name string) (int64, error) {
	const query = `SELECT id FROM careers WHERE name = $1`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, name); err != nil {
		return 0, err
	}
	return id, nil
}

// FindSubjectIDByName resolves a subject id from its unique name.
func (r *CatalogRepository) FindSubjectIDByName(ctx context.Context, name string) (int64, error) {
	const query = `SELECT id FROM subjects WHERE name = $1`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, name); err != nil {
		return 0, err
	}
	return id, nil
}

// ListCareers returns all careers in insertion order.
func (r *CatalogRepository) ListCareers(ctx context.Context) ([]models.Career, error) {
	const query = `SELECT id, name FROM careers ORDER BY id`
	var careers []models.Career
	if err := r.db.SelectContext(ctx, &careers, query); err != nil {
		return nil, fmt.Errorf("list careers: %w", err)
	}
	return careers, nil
}

// ListSubjectsByCareer returns the subjects offered within a career.
func (r *CatalogRepository) ListSubjectsByCareer(ctx context.Context, careerID int64) ([]models.Subject, error) {
	const query = `SELECT s.id, s.name, s.class_duration
        FROM subjects s
        JOIN career_subject cs ON cs.subject_id = s.id
        WHERE cs.career_id = $1 ORDER BY s.id`
	var subjects []models.Subject
	if err := r.db.SelectContext(ctx, &subjects, query, careerID); err != nil {
		return nil, fmt.Errorf("list subjects for career %d: %w", careerID, err)
	}
	return subjects, nil
}

// FindCareerSubjectID resolves the offering of a subject within a career.
func (r *CatalogRepository) FindCareerSubjectID(ctx context.Context, careerID, subjectID int64) (int64, error) {
	const query = `SELECT id FROM career_subject WHERE career_id = $1 AND subject_id = $2`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, careerID, subjectID); err != nil {
		return 0, err
	}
	return id, nil
}
