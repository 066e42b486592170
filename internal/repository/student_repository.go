package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/enrolify/leads-api/internal/models"
)

// StudentRepository manages persistence for student (lead) records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindIDByDNI resolves a student's surrogate id from the DNI natural key.
func (r *StudentRepository) FindIDByDNI(ctx context.Context, dni string) (int64, error) {
	const query = `SELECT id FROM students WHERE dni = $1`
	var id int64
	if err := r.db.GetContext(ctx, &id, query, dni); err != nil {
		return 0, err
	}
	return id, nil
}

// FindByID fetches a student by surrogate id.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	const query = `SELECT id, dni, name, email, phone, address, created_at FROM students WHERE id = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// List returns all students in insertion order.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT id, dni, name, email, phone, address, created_at FROM students ORDER BY id`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// CreateIfAbsent inserts a student unless the DNI already exists, running the
// existence check and the insert in one transaction. It returns the student
// id either way; created reports whether a row was inserted.
func (r *StudentRepository) CreateIfAbsent(ctx context.Context, student *models.Student) (int64, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin create student: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var id int64
	err = tx.GetContext(ctx, &id, `SELECT id FROM students WHERE dni = $1`, student.DNI)
	if err == nil {
		return id, false, tx.Commit()
	}
	if err != sql.ErrNoRows {
		return 0, false, fmt.Errorf("check student dni: %w", err)
	}

	const insert = `INSERT INTO students (dni, name, email, phone, address)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := tx.GetContext(ctx, &id, insert, student.DNI, student.Name, student.Email, student.Phone, student.Address); err != nil {
		if isUniqueViolation(err) {
			// Lost the race: another request inserted the same DNI between
			// our check and insert. The aborted transaction is rolled back
			// and the winner's row is returned instead.
			if rerr := r.db.GetContext(ctx, &id, `SELECT id FROM students WHERE dni = $1`, student.DNI); rerr != nil {
				return 0, false, fmt.Errorf("resolve student after race: %w", rerr)
			}
			return id, false, nil
		}
		return 0, false, fmt.Errorf("create student: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit create student: %w", err)
	}
	student.ID = id
	return id, true, nil
}
