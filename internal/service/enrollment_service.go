package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/enrolify/leads-api/internal/models"
	appErrors "github.com/enrolify/leads-api/pkg/errors"
)

type studentResolver interface {
	FindIDByDNI(ctx context.Context, dni string) (int64, error)
}

type catalogRepository interface {
	FindCareerIDByName(ctx context.Context, name string) (int64, error)
	FindSubjectIDByName(ctx context.Context, name string) (int64, error)
	FindCareerSubjectID(ctx context.Context, careerID, subjectID int64) (int64, error)
}

type enrollmentRepository interface {
	FindStudentCareer(ctx context.Context, studentID, careerID int64) (*models.StudentCareer, error)
	EnrollInCareer(ctx context.Context, studentID, careerID int64, yearEnroll int) (int64, bool, error)
	EnrollInSubject(ctx context.Context, studentID, careerSubjectID int64, enrollTimes int) (int64, bool, error)
}

// EnrollCareerRequest describes a career enrollment payload.
type EnrollCareerRequest struct {
	StudentDNI string `json:"student_dni" validate:"required,max=20"`
	CareerName string `json:"career_name" validate:"required,max=100"`
	YearEnroll int    `json:"year_enroll" validate:"required,gte=1900,lte=2100"`
}

// EnrollSubjectRequest describes a subject enrollment payload.
type EnrollSubjectRequest struct {
	StudentDNI  string `json:"student_dni" validate:"required,max=20"`
	CareerName  string `json:"career_name" validate:"required,max=100"`
	SubjectName string `json:"subject_name" validate:"required,max=100"`
	EnrollTimes int    `json:"enroll_times" validate:"required,gte=1"`
}

// EnrollmentService orchestrates career and subject enrollment workflows.
type EnrollmentService struct {
	students    studentResolver
	catalog     catalogRepository
	enrollments enrollmentRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(students studentResolver, catalog catalogRepository, enrollments enrollmentRepository, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{students: students, catalog: catalog, enrollments: enrollments, validator: validate, logger: logger}
}

// EnrollInCareer enrolls a student into a career. Both the student and the
// career must pre-exist; enrolling twice returns the original association id.
func (s *EnrollmentService) EnrollInCareer(ctx context.Context, req EnrollCareerRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid career enrollment payload")
	}
	studentID, err := s.students.FindIDByDNI(ctx, req.StudentDNI)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, appErrors.Clone(appErrors.ErrStudentNotFound, "")
		}
		return 0, infraError(err, "failed to resolve student")
	}
	careerID, err := s.catalog.FindCareerIDByName(ctx, req.CareerName)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, appErrors.Clone(appErrors.ErrCareerNotFound, "")
		}
		return 0, infraError(err, "failed to resolve career")
	}
	id, created, err := s.enrollments.EnrollInCareer(ctx, studentID, careerID, req.YearEnroll)
	if err != nil {
		return 0, infraError(err, "failed to enroll in career")
	}
	if created {
		s.logger.Info("career enrollment created",
			zap.Int64("student_career_id", id),
			zap.String("dni", req.StudentDNI),
			zap.String("career", req.CareerName))
	}
	return id, nil
}

// EnrollInSubject enrolls a student into a subject offered within a career.
// The student must already be enrolled in the career and the subject must be
// part of it. The same (student, offering, enroll_times) identity returns the
// existing enrollment id.
func (s *EnrollmentService) EnrollInSubject(ctx context.Context, req EnrollSubjectRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject enrollment payload")
	}
	studentID, err := s.students.FindIDByDNI(ctx, req.StudentDNI)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, appErrors.Clone(appErrors.ErrStudentNotFound, "")
		}
		return 0, infraError(err, "failed to resolve student")
	}
	careerID, err := s.catalog.FindCareerIDByName(ctx, req.CareerName)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, appErrors.Clone(appErrors.ErrCareerNotFound, "")
		}
		return 0, infraError(err, "failed to resolve career")
	}
	if _, err := s.enrollments.FindStudentCareer(ctx, studentID, careerID); err != nil {
		if err == sql.ErrNoRows {
			return 0, appErrors.Clone(appErrors.ErrNotEnrolledInCareer, "")
		}
		return 0, infraError(err, "failed to check career enrollment")
	}
	subjectID, err := s.catalog.FindSubjectIDByName(ctx, req.SubjectName)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, appErrors.Clone(appErrors.ErrSubjectNotFound, "")
		}
		return 0, infraError(err, "failed to resolve subject")
	}
	careerSubjectID, err := s.catalog.FindCareerSubjectID(ctx, careerID, subjectID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, appErrors.Clone(appErrors.ErrCareerSubjectNotFound, "")
		}
		return 0, infraError(err, "failed to resolve career subject")
	}
	id, created, err := s.enrollments.EnrollInSubject(ctx, studentID, careerSubjectID, req.EnrollTimes)
	if err != nil {
		return 0, infraError(err, "failed to enroll in subject")
	}
	if created {
		s.logger.Info("subject enrollment created",
			zap.Int64("enrollment_id", id),
			zap.String("dni", req.StudentDNI),
			zap.String("subject", req.SubjectName))
	}
	return id, nil
}
