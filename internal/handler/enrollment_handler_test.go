package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/enrolify/leads-api/internal/service"
	appErrors "github.com/enrolify/leads-api/pkg/errors"
)

type mockEnrollmentService struct {
	careerID   int64
	careerErr  error
	subjectID  int64
	subjectErr error
}

func (m *mockEnrollmentService) EnrollInCareer(_ context.Context, _ service.EnrollCareerRequest) (int64, error) {
	return m.careerID, m.careerErr
}

func (m *mockEnrollmentService) EnrollInSubject(_ context.Context, _ service.EnrollSubjectRequest) (int64, error) {
	return m.subjectID, m.subjectErr
}

func enrollRouter(svc *mockEnrollmentService) *gin.Engine {
	h := NewEnrollmentHandler(svc)
	r := gin.New()
	r.POST("/enroll/career", h.EnrollCareer)
	r.POST("/enroll/subject", h.EnrollSubject)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestEnrollmentHandlerEnrollCareer(t *testing.T) {
	r := enrollRouter(&mockEnrollmentService{careerID: 4})

	w := postJSON(r, "/enroll/career", `{"student_dni":"12345678","career_name":"medicine","year_enroll":2024}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":4}`, w.Body.String())
}

func TestEnrollmentHandlerEnrollCareerUnknownStudent(t *testing.T) {
	r := enrollRouter(&mockEnrollmentService{careerErr: appErrors.ErrStudentNotFound})

	w := postJSON(r, "/enroll/career", `{"student_dni":"00000000","career_name":"medicine","year_enroll":2024}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEnrollmentHandlerEnrollSubject(t *testing.T) {
	r := enrollRouter(&mockEnrollmentService{subjectID: 10})

	w := postJSON(r, "/enroll/subject", `{"student_dni":"12345678","career_name":"medicine","subject_name":"anatomy","enroll_times":1}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":10}`, w.Body.String())
}

func TestEnrollmentHandlerEnrollSubjectNotEnrolled(t *testing.T) {
	r := enrollRouter(&mockEnrollmentService{subjectErr: appErrors.ErrNotEnrolledInCareer})

	w := postJSON(r, "/enroll/subject", `{"student_dni":"12345678","career_name":"medicine","subject_name":"anatomy","enroll_times":1}`)

	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestEnrollmentHandlerMalformedPayload(t *testing.T) {
	r := enrollRouter(&mockEnrollmentService{})

	w := postJSON(r, "/enroll/career", `{"student_dni":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
