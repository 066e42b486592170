package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/enrolify/leads-api/internal/models"
)

// EnrollmentRepository handles persistence of career and subject enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// FindStudentCareer returns the career enrollment for a student/career pair.
func (r *EnrollmentRepository) FindStudentCareer(ctx context.Context, studentID, careerID int64) (*models.StudentCareer, error) {
	const query = `SELECT id, student_id, career_id, year_enroll, created_at
        FROM student_career WHERE student_id = $1 AND career_id = $2`
	var sc models.StudentCareer
	if err := r.db.GetContext(ctx, &sc, query, studentID, careerID); err != nil {
		return nil, err
	}
	return &sc, nil
}

// EnrollInCareer inserts a student_career row unless one already exists for
// the pair, in a single transaction. The existing id is returned when the
// association is already present; created reports whether a row was inserted.
func (r *EnrollmentRepository) EnrollInCareer(ctx context.Context, studentID, careerID int64, yearEnroll int) (int64, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin career enrollment: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var id int64
	err = tx.GetContext(ctx, &id, `SELECT id FROM student_career WHERE student_id = $1 AND career_id = $2`, studentID, careerID)
	if err == nil {
		return id, false, tx.Commit()
	}
	if err != sql.ErrNoRows {
		return 0, false, fmt.Errorf("check career enrollment: %w", err)
	}

	const insert = `INSERT INTO student_career (student_id, career_id, year_enroll)
        VALUES ($1, $2, $3) RETURNING id`
	if err := tx.GetContext(ctx, &id, insert, studentID, careerID, yearEnroll); err != nil {
		if isUniqueViolation(err) {
			// Lost the check-then-insert race; return the winner's row.
			if rerr := r.db.GetContext(ctx, &id, `SELECT id FROM student_career WHERE student_id = $1 AND career_id = $2`, studentID, careerID); rerr != nil {
				return 0, false, fmt.Errorf("resolve career enrollment after race: %w", rerr)
			}
			return id, false, nil
		}
		return 0, false, fmt.Errorf("create career enrollment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit career enrollment: %w", err)
	}
	return id, true, nil
}

// EnrollInSubject inserts a subject_enrollments row unless one already exists
// for (student, offering, enroll_times), in a single transaction.
func (r *EnrollmentRepository) EnrollInSubject(ctx context.Context, studentID, careerSubjectID int64, enrollTimes int) (int64, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin subject enrollment: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var id int64
	err = tx.GetContext(ctx, &id, `SELECT id FROM subject_enrollments
        WHERE student_id = $1 AND career_subject_id = $2 AND enroll_times = $3`, studentID, careerSubjectID, enrollTimes)
	if err == nil {
		return id, false, tx.Commit()
	}
	if err != sql.ErrNoRows {
		return 0, false, fmt.Errorf("check subject enrollment: %w", err)
	}

	const insert = `INSERT INTO subject_enrollments (student_id, career_subject_id, enroll_times)
        VALUES ($1, $2, $3) RETURNING id`
	if err := tx.GetContext(ctx, &id, insert, studentID, careerSubjectID, enrollTimes); err != nil {
		if isUniqueViolation(err) {
			if rerr := r.db.GetContext(ctx, &id, `SELECT id FROM subject_enrollments
                WHERE student_id = $1 AND career_subject_id = $2 AND enroll_times = $3`, studentID, careerSubjectID, enrollTimes); rerr != nil {
				return 0, false, fmt.Errorf("resolve subject enrollment after race: %w", rerr)
			}
			return id, false, nil
		}
		return 0, false, fmt.Errorf("create subject enrollment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit subject enrollment: %w", err)
	}
	return id, true, nil
}
