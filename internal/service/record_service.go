package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/enrolify/leads-api/internal/models"
	appErrors "github.com/enrolify/leads-api/pkg/errors"
)

type studentCreator interface {
	CreateIfAbsent(ctx context.Context, student *models.Student) (int64, bool, error)
}

type recordRepository interface {
	FindByID(ctx context.Context, id int64) (*models.LeadRecord, error)
	ListIDs(ctx context.Context, start, limit int) ([]int64, error)
}

type recordCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type recordMetrics interface {
	RecordCacheOperation(hit bool)
	ObserveDBQuery(label string, duration time.Duration)
}

// LoadRecordRequest carries the complete lead record payload: the student's
// personal fields plus the career/subject enrollment target.
type LoadRecordRequest struct {
	DNI         string `json:"dni" validate:"required,max=20"`
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"omitempty,email,max=100"`
	Phone       string `json:"phone" validate:"max=20"`
	Address     string `json:"address" validate:"max=200"`
	Subject     string `json:"subject" validate:"required,max=100"`
	Career      string `json:"career" validate:"required,max=100"`
	EnrollTimes int    `json:"enroll_times" validate:"required,gte=1"`
	YearEnroll  int    `json:"year_enroll" validate:"required,gte=1900,lte=2100"`
}

// RecordService loads complete lead records and assembles the denormalized
// view from a subject enrollment id.
type RecordService struct {
	students    studentCreator
	catalog     catalogRepository
	enrollments enrollmentRepository
	records     recordRepository
	cache       recordCache
	metrics     recordMetrics
	cacheTTL    time.Duration
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewRecordService constructs RecordService. cache may be nil to disable the
// record cache entirely.
func NewRecordService(
	students studentCreator,
	catalog catalogRepository,
	enrollments enrollmentRepository,
	records recordRepository,
	cache recordCache,
	metrics recordMetrics,
	cacheTTL time.Duration,
	validate *validator.Validate,
	logger *zap.Logger,
) *RecordService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordService{
		students:    students,
		catalog:     catalog,
		enrollments: enrollments,
		records:     records,
		cache:       cache,
		metrics:     metrics,
		cacheTTL:    cacheTTL,
		validator:   validate,
		logger:      logger,
	}
}

// Load runs the composite workflow: create-or-fetch the student by DNI,
// create-or-fetch the career enrollment, then create-or-fetch the subject
// enrollment, returning the subject enrollment id.
//
// The three steps are separate transactions. A failure in a later step does
// not roll back earlier ones; every step is idempotent, so a client retry
// converges on the same ids.
func (s *RecordService) Load(ctx context.Context, req LoadRecordRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid record payload")
	}

	student := &models.Student{DNI: req.DNI, Name: req.Name, Email: req.Email, Phone: req.Phone, Address: req.Address}
	studentID, _, err := s.students.CreateIfAbsent(ctx, student)
	if err != nil {
		return 0, infraError(err, "failed to create lead")
	}

	careerID, err := s.catalog.FindCareerIDByName(ctx, req.Career)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, appErrors.Clone(appErrors.ErrCareerNotFound, "")
		}
		return 0, infraError(err, "failed to resolve career")
	}
	if _, _, err := s.enrollments.EnrollInCareer(ctx, studentID, careerID, req.YearEnroll); err != nil {
		return 0, infraError(err, "failed to enroll in career")
	}

	subjectID, err := s.catalog.FindSubjectIDByName(ctx, req.Subject)
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
	enrollmentID, created, err := s.enrollments.EnrollInSubject(ctx, studentID, careerSubjectID, req.EnrollTimes)
	if err != nil {
		return 0, infraError(err, "failed to enroll in subject")
	}
	if created {
		s.logger.Info("complete record loaded",
			zap.Int64("enrollment_id", enrollmentID),
			zap.String("dni", req.DNI),
			zap.String("subject", req.Subject),
			zap.String("career", req.Career))
	}
	return enrollmentID, nil
}

// Get returns the flattened record for one enrollment id. Records are
// immutable once created, so cache entries never need invalidation.
func (s *RecordService) Get(ctx context.Context, id int64) (*models.LeadRecord, error) {
	key := cacheKey(id)
	if s.cache != nil {
		var cached models.LeadRecord
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			if s.metrics != nil {
				s.metrics.RecordCacheOperation(true)
			}
			return &cached, nil
		}
		if s.metrics != nil {
			s.metrics.RecordCacheOperation(false)
		}
	}

	queryStart := time.Now()
	record, err := s.records.FindByID(ctx, id)
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("record_find_by_id", time.Since(queryStart))
	}
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrRecordNotFound, "")
		}
		return nil, infraError(err, "failed to assemble record")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, record, s.cacheTTL); err != nil {
			s.logger.Warn("record cache write failed", zap.Int64("id", id), zap.Error(err))
		}
	}
	return record, nil
}

// List returns the record window [start, start+limit) in insertion order,
// assembling each record individually.
func (s *RecordService) List(ctx context.Context, start, limit int) ([]models.LeadRecord, error) {
	ids, err := s.records.ListIDs(ctx, start, limit)
	if err != nil {
		return nil, infraError(err, "failed to list records")
	}
	result := make([]models.LeadRecord, 0, len(ids))
	for _, id := range ids {
		record, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, *record)
	}
	return result, nil
}

func cacheKey(id int64) string {
	return fmt.Sprintf("record:%d", id)
}
