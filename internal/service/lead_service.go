package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/enrolify/leads-api/internal/models"
	appErrors "github.com/enrolify/leads-api/pkg/errors"
)

type studentRepository interface {
	FindIDByDNI(ctx context.Context, dni string) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context) ([]models.Student, error)
	CreateIfAbsent(ctx context.Context, student *models.Student) (int64, bool, error)
}

// CreateLeadRequest describes the lead creation payload.
type CreateLeadRequest struct {
	DNI     string `json:"dni" validate:"required,max=20"`
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"omitempty,email,max=100"`
	Phone   string `json:"phone" validate:"max=20"`
	Address string `json:"address" validate:"max=200"`
}

// LeadService manages lead (student) records.
type LeadService struct {
	students  studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLeadService constructs LeadService.
func NewLeadService(students studentRepository, validate *validator.Validate, logger *zap.Logger) *LeadService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadService{students: students, validator: validate, logger: logger}
}

// Create registers a lead keyed by DNI. A DNI that already exists returns the
// existing student id; no duplicate row is ever created.
func (s *LeadService) Create(ctx context.Context, req CreateLeadRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lead payload")
	}
	student := &models.Student{DNI: req.DNI, Name: req.Name, Email: req.Email, Phone: req.Phone, Address: req.Address}
	id, created, err := s.students.CreateIfAbsent(ctx, student)
	if err != nil {
		return 0, infraError(err, "failed to create lead")
	}
	if created {
		s.logger.Info("lead created", zap.Int64("student_id", id), zap.String("dni", req.DNI))
	} else {
		s.logger.Debug("lead already exists", zap.Int64("student_id", id), zap.String("dni", req.DNI))
	}
	return id, nil
}

// List returns every lead in insertion order.
func (s *LeadService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, infraError(err, "failed to list leads")
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

// Get returns a single lead by surrogate id.
func (s *LeadService) Get(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrStudentNotFound, "")
		}
		return nil, infraError(err, "failed to load lead")
	}
	return student, nil
}
