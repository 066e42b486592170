package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRecordRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "dni", "name", "email", "phone", "address",
		"subject", "class_duration", "enroll_times", "career", "year_enroll",
	}).AddRow(10, "12345678", "pepe", "pepe@example.com", "+5433333333", "pepe's house",
		"anatomy", 8, 1, "medicine", 2024)
	mock.ExpectQuery(regexp.QuoteMeta("FROM subject_enrollments se")).
		WithArgs(int64(10)).
		WillReturnRows(rows)

	record, err := repo.FindByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), record.ID)
	assert.Equal(t, "12345678", record.DNI)
	assert.Equal(t, "anatomy", record.Subject)
	assert.Equal(t, 8, record.ClassDuration)
	assert.Equal(t, "medicine", record.Career)
	assert.Equal(t, 2024, record.YearEnroll)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepositoryFindByIDMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRecordRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM subject_enrollments se")).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 999)
	assert.Equal(t, sql.ErrNoRows, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepositoryListIDs(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRecordRepository(db)

	rows := sqlmock.NewRows([]string{"id"}).AddRow(3).AddRow(4).AddRow(5)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM subject_enrollments ORDER BY id LIMIT $1 OFFSET $2")).
		WithArgs(3, 2).
		WillReturnRows(rows)

	ids, err := repo.ListIDs(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 5}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepositoryListIDsPastEnd(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewRecordRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM subject_enrollments ORDER BY id LIMIT $1 OFFSET $2")).
		WithArgs(10, 500).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := repo.ListIDs(context.Background(), 500, 10)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
