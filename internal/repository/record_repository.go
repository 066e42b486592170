package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/enrolify/leads-api/internal/models"
)

// RecordRepository assembles the denormalized lead record view from a
// subject enrollment id.
type RecordRepository struct {
	db *sqlx.DB
}

// NewRecordRepository constructs a RecordRepository.
func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// FindByID reconstructs the flattened record reachable from one enrollment
// id: student personal fields, the subject and its duration, the career and
// the enrollment year of the matching career enrollment.
func (r *RecordRepository) FindByID(ctx context.Context, id int64) (*models.LeadRecord, error) {
	const query = `SELECT se.id, s.dni, s.name, s.email, s.phone, s.address,
        sub.name AS subject, sub.class_duration, se.enroll_times,
        c.name AS career, sc.year_enroll
        FROM subject_enrollments se
        JOIN students s ON s.id = se.student_id
        JOIN career_subject cs ON cs.id = se.career_subject_id
        JOIN careers c ON c.id = cs.career_id
        JOIN subjects sub ON sub.id = cs.subject_id
        JOIN student_career sc ON sc.student_id = se.student_id AND sc.career_id = cs.career_id
        WHERE se.id = $1`
	var record models.LeadRecord
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		return nil, err
	}
	return &record, nil
}

// ListIDs returns a window of enrollment ids in insertion order.
func (r *RecordRepository) ListIDs(ctx context.Context, start, limit int) ([]int64, error) {
	const query = `SELECT id FROM subject_enrollments ORDER BY id LIMIT $1 OFFSET $2`
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, limit, start); err != nil {
		return nil, fmt.Errorf("list enrollment ids: %w", err)
	}
	return ids, nil
}
