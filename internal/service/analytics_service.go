package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/akademika/lms-api/internal/aggregate"
	"github.com/akademika/lms-api/internal/dto"
	"github.com/akademika/lms-api/internal/models"
	appErrors "github.com/akademika/lms-api/pkg/errors"
)

type courseFinder interface {
	FindByID(ctx context.Context, id string) (*models.CourseSummary, error)
}

type courseGradeLister interface {
	ListByCourse(ctx context.Context, courseID string) ([]models.GradeRecord, error)
}

type enrollmentAnalyticsRepository interface {
	Trends(ctx context.Context, period models.TrendPeriod, facultyID, majorID string) ([]models.EnrollmentTrendPoint, error)
	FacultySummary(ctx context.Context) ([]models.FacultyEnrollmentSummary, error)
}

// AnalyticsServiceConfig tunes analytics behaviour.
type AnalyticsServiceConfig struct {
	CacheTTL time.Duration
}

// AnalyticsService serves grade distribution and enrollment analytics.
type AnalyticsService struct {
	courses     courseFinder
	grades      courseGradeLister
	enrollments enrollmentAnalyticsRepository
	cache       *CacheService
	metrics     *MetricsService
	logger      *zap.Logger
	cfg         AnalyticsServiceConfig
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(courses courseFinder, grades courseGradeLister, enrollments enrollmentAnalyticsRepository,
	cache *CacheService, metrics *MetricsService, logger *zap.Logger, cfg AnalyticsServiceConfig) *AnalyticsService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		courses:     courses,
		grades:      grades,
		enrollments: enrollments,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
		cfg:         cfg,
	}
}

// GradeDistribution computes the per-course letter distribution report.
func (s *AnalyticsService) GradeDistribution(ctx context.Context, courseID string) (*dto.GradeDistributionReport, bool, error) {
	if courseID == "" {
		return nil, false, appErrors.Clone(appErrors.ErrMissingParameter, "course_id is required")
	}
	cacheKey := fmt.Sprintf("analytics:distribution:%s", courseID)
	var cached dto.GradeDistributionReport
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, false, err
	}

	start := time.Now()
	grades, err := s.grades.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("analytics_distribution", time.Since(start))
	}

	report, err := aggregate.GradeDistributionReport(courseID, grades)
	if err != nil {
		return nil, false, err
	}
	s.persistCache(ctx, cacheKey, report)
	return report, false, nil
}

// EnrollmentTrends groups enrollment counts by period, optionally scoped to a
// faculty or major. An empty period defaults to monthly.
func (s *AnalyticsService) EnrollmentTrends(ctx context.Context, period models.TrendPeriod, facultyID, majorID string) (*dto.EnrollmentTrends, bool, error) {
	if period == "" {
		period = models.TrendMonthly
	}
	switch period {
	case models.TrendMonthly, models.TrendSemesterly, models.TrendYearly:
	default:
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "period must be one of monthly, semesterly, yearly")
	}

	cacheKey := fmt.Sprintf("analytics:trends:%s:%s:%s", period, facultyID, majorID)
	var cached dto.EnrollmentTrends
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	start := time.Now()
	points, err := s.enrollments.Trends(ctx, period, facultyID, majorID)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("analytics_trends", time.Since(start))
	}

	total := 0
	for _, p := range points {
		total += p.Count
	}
	report := &dto.EnrollmentTrends{
		Period:           period,
		FacultyID:        facultyID,
		MajorID:          majorID,
		Trends:           points,
		TotalEnrollments: total,
	}
	s.persistCache(ctx, cacheKey, report)
	return report, false, nil
}

// FacultyEnrollment aggregates enrollment volume per faculty.
func (s *AnalyticsService) FacultyEnrollment(ctx context.Context) (*dto.FacultyEnrollmentReport, bool, error) {
	const cacheKey = "analytics:faculty-enrollment"
	var cached dto.FacultyEnrollmentReport
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	start := time.Now()
	summaries, err := s.enrollments.FacultySummary(ctx)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("analytics_faculty_enrollment", time.Since(start))
	}

	report := &dto.FacultyEnrollmentReport{
		Data:           summaries,
		TotalFaculties: len(summaries),
	}
	for _, summary := range summaries {
		report.TotalEnrollments += summary.TotalEnrollments
		report.TotalActiveEnrollments += summary.ActiveEnrollments
	}
	s.persistCache(ctx, cacheKey, report)
	return report, false, nil
}

func (s *AnalyticsService) persistCache(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("analytics cache write failed", zap.String("key", key), zap.Error(err))
	}
}
