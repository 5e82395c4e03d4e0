package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/akademika/lms-api/internal/gradescale"
	"github.com/akademika/lms-api/internal/models"
	appErrors "github.com/akademika/lms-api/pkg/errors"
)

type gradeStore interface {
	List(ctx context.Context, filter models.GradeFilter) ([]models.GradeRecord, int, error)
	Upsert(ctx context.Context, grade *models.GradeRecord) error
}

// GradeUpsertRequest is the write payload for recording a grade. The letter
// is always derived from the score server-side.
type GradeUpsertRequest struct {
	StudentID    string  `json:"student_id" validate:"required"`
	CourseID     string  `json:"course_id" validate:"required"`
	AssignmentID *string `json:"assignment_id"`
	Score        float64 `json:"score"`
}

// GradeService validates and persists grade records.
type GradeService struct {
	store    gradeStore
	cache    *CacheService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewGradeService constructs a GradeService.
func NewGradeService(store gradeStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{store: store, cache: cache, validate: validate, logger: logger}
}

// List returns grade records with pagination metadata.
func (s *GradeService) List(ctx context.Context, filter models.GradeFilter) ([]models.GradeRecord, *models.Pagination, error) {
	grades, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	return grades, models.NewPagination(page, size, total), nil
}

// Upsert records a grade. The score must be a finite value within [0,100];
// anything else is rejected before the write.
func (s *GradeService) Upsert(ctx context.Context, req GradeUpsertRequest) (*models.GradeRecord, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	letter, err := gradescale.LetterFor(req.Score)
	if err != nil {
		return nil, err
	}

	grade := &models.GradeRecord{
		StudentID:    req.StudentID,
		CourseID:     req.CourseID,
		AssignmentID: req.AssignmentID,
		Score:        req.Score,
		Letter:       letter,
		RecordedAt:   time.Now().UTC(),
	}
	if err := s.store.Upsert(ctx, grade); err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx, grade)
	return grade, nil
}

// invalidateCaches drops dashboard and analytics payloads affected by the
// write. Failures are logged, never surfaced; the write already succeeded.
func (s *GradeService) invalidateCaches(ctx context.Context, grade *models.GradeRecord) {
	patterns := []string{
		"dash:student:" + grade.StudentID,
		"dash:faculty:*",
		"dash:prodi:*",
		"dash:management",
		"analytics:distribution:" + grade.CourseID,
	}
	for _, pattern := range patterns {
		if err := s.cache.Invalidate(ctx, pattern); err != nil {
			s.logger.Warn("grade cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
		}
	}
}
