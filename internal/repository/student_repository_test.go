package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrolify/leads-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestStudentRepositoryFindIDByDNI(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM students WHERE dni = $1")).
		WithArgs("12345678").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := repo.FindIDByDNI(context.Background(), "12345678")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindIDByDNIMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM students WHERE dni = $1")).
		WithArgs("00000000").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindIDByDNI(context.Background(), "00000000")
	assert.Equal(t, sql.ErrNoRows, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "dni", "name", "email", "phone", "address", "created_at"}).
		AddRow(1, "111", "ana", "ana@example.com", "+54111", "street 1", time.Now()).
		AddRow(2, "222", "bruno", "bruno@example.com", "+54222", "street 2", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, dni, name, email, phone, address, created_at FROM students ORDER BY id")).
		WillReturnRows(rows)

	students, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, int64(1), students[0].ID)
	assert.Equal(t, "bruno", students[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreateIfAbsentInserts(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM students WHERE dni = $1")).
		WithArgs("12345678").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO students")).
		WithArgs("12345678", "pepe", "pepe@example.com", "+5433333333", "pepe's house").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	student := &models.Student{DNI: "12345678", Name: "pepe", Email: "pepe@example.com", Phone: "+5433333333", Address: "pepe's house"}
	id, created, err := repo.CreateIfAbsent(context.Background(), student)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, int64(3), student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreateIfAbsentLosesInsertRace(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM students WHERE dni = $1")).
		WithArgs("12345678").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO students")).
		WithArgs("12345678", "pepe", "", "", "").
		WillReturnError(&pq.Error{Code: uniqueViolation})
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM students WHERE dni = $1")).
		WithArgs("12345678").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectRollback()

	id, created, err := repo.CreateIfAbsent(context.Background(), &models.Student{DNI: "12345678", Name: "pepe"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(9), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreateIfAbsentReturnsExisting(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM students WHERE dni = $1")).
		WithArgs("12345678").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	id, created, err := repo.CreateIfAbsent(context.Background(), &models.Student{DNI: "12345678", Name: "pepe"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
