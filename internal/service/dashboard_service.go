package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/akademika/lms-api/internal/aggregate"
	"github.com/akademika/lms-api/internal/dto"
	"github.com/akademika/lms-api/internal/models"
	appErrors "github.com/akademika/lms-api/pkg/errors"
)

type gradeReader interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.GradeRecord, error)
	ListByCourses(ctx context.Context, courseIDs []string) ([]models.GradeRecord, error)
	ListAll(ctx context.Context) ([]models.GradeRecord, error)
}

type enrollmentReader interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.EnrollmentRecord, error)
	ListByCourses(ctx context.Context, courseIDs []string) ([]models.EnrollmentRecord, error)
	ListAll(ctx context.Context) ([]models.EnrollmentRecord, error)
}

type courseReader interface {
	ListByInstructor(ctx context.Context, instructorID string) ([]models.CourseSummary, error)
	ListByFaculty(ctx context.Context, facultyID string) ([]models.CourseSummary, error)
	ListAll(ctx context.Context) ([]models.CourseSummary, error)
}

type userReader interface {
	ListByFaculty(ctx context.Context, facultyID string) ([]models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
}

type facultyReader interface {
	FindByID(ctx context.Context, id string) (*models.Faculty, error)
	ListAll(ctx context.Context) ([]models.Faculty, error)
	ListMajorsByFaculty(ctx context.Context, facultyID string) ([]models.Major, error)
	ListAllMajors(ctx context.Context) ([]models.Major, error)
}

type assignmentReader interface {
	ListByCourses(ctx context.Context, courseIDs []string) ([]models.Assignment, error)
	ListAll(ctx context.Context) ([]models.Assignment, error)
	ListSubmissionsByStudent(ctx context.Context, studentID string) ([]models.AssignmentSubmissionSummary, error)
	ListSubmissionsByCourses(ctx context.Context, courseIDs []string) ([]models.AssignmentSubmissionSummary, error)
	ListAllSubmissions(ctx context.Context) ([]models.AssignmentSubmissionSummary, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL       time.Duration
	UpcomingWindow time.Duration
	UpcomingMax    int
	RecentGradeMax int
}

// DashboardService composes role-specific dashboard payloads from the
// academic repositories.
type DashboardService struct {
	grades      gradeReader
	enrollments enrollmentReader
	courses     courseReader
	users       userReader
	faculties   facultyReader
	assignments assignmentReader
	cache       *CacheService
	metrics     *MetricsService
	logger      *zap.Logger
	now         func() time.Time
	cfg         DashboardServiceConfig
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Grades      gradeReader
	Enrollments enrollmentReader
	Courses     courseReader
	Users       userReader
	Faculties   facultyReader
	Assignments assignmentReader
	Cache       *CacheService
	Metrics     *MetricsService
	Logger      *zap.Logger
	Config      DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		grades:      params.Grades,
		enrollments: params.Enrollments,
		courses:     params.Courses,
		users:       params.Users,
		faculties:   params.Faculties,
		assignments: params.Assignments,
		cache:       params.Cache,
		metrics:     params.Metrics,
		logger:      logger,
		now:         time.Now,
		cfg:         cfg,
	}
}

func (s *DashboardService) assemblerConfig() aggregate.AssemblerConfig {
	return aggregate.AssemblerConfig{
		UpcomingWindow: s.cfg.UpcomingWindow,
		UpcomingMax:    s.cfg.UpcomingMax,
		RecentGradeMax: s.cfg.RecentGradeMax,
	}
}

// Student returns the student dashboard and indicates cache utilisation.
func (s *DashboardService) Student(ctx context.Context, studentID string) (*dto.StudentDashboardResponse, bool, error) {
	if studentID == "" {
		return nil, false, appErrors.Clone(appErrors.ErrMissingParameter, "student_id is required")
	}
	cacheKey := fmt.Sprintf("dash:student:%s", studentID)
	var cached dto.StudentDashboardResponse
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	start := time.Now()
	enrollments, err := s.enrollments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, false, err
	}
	grades, err := s.grades.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, false, err
	}
	courseIDs := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Status == models.EnrollmentStatusEnrolled {
			courseIDs = append(courseIDs, e.CourseID)
		}
	}
	assignments, err := s.assignments.ListByCourses(ctx, courseIDs)
	if err != nil {
		return nil, false, err
	}
	submissions, err := s.assignments.ListSubmissionsByStudent(ctx, studentID)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("dashboard_student", time.Since(start))
	}

	summary, err := aggregate.StudentDashboard(studentID, s.now().UTC(), s.assemblerConfig(), enrollments, grades, assignments, submissions)
	if err != nil {
		return nil, false, err
	}
	s.persistCache(ctx, cacheKey, summary)
	return summary, false, nil
}

// Faculty returns the instructor dashboard.
func (s *DashboardService) Faculty(ctx context.Context, instructorID string) (*dto.FacultyDashboardResponse, bool, error) {
	if instructorID == "" {
		return nil, false, appErrors.Clone(appErrors.ErrMissingParameter, "instructor_id is required")
	}
	cacheKey := fmt.Sprintf("dash:faculty:%s", instructorID)
	var cached dto.FacultyDashboardResponse
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	start := time.Now()
	courses, err := s.courses.ListByInstructor(ctx, instructorID)
	if err != nil {
		return nil, false, err
	}
	courseIDs := make([]string, 0, len(courses))
	for _, c := range courses {
		courseIDs = append(courseIDs, c.CourseID)
	}
	enrollments, err := s.enrollments.ListByCourses(ctx, courseIDs)
	if err != nil {
		return nil, false, err
	}
	assignments, err := s.assignments.ListByCourses(ctx, courseIDs)
	if err != nil {
		return nil, false, err
	}
	submissions, err := s.assignments.ListSubmissionsByCourses(ctx, courseIDs)
	if err != nil {
		return nil, false, err
	}
	grades, err := s.grades.ListByCourses(ctx, courseIDs)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("dashboard_faculty", time.Since(start))
	}

	summary := aggregate.FacultyDashboard(instructorID, courses, enrollments, assignments, submissions, grades)
	s.persistCache(ctx, cacheKey, summary)
	return summary, false, nil
}

// Prodi returns the study-program dashboard scoped to one faculty. A missing
// faculty_id is a caller error; an unknown one maps to not found.
func (s *DashboardService) Prodi(ctx context.Context, facultyID string) (*dto.ProdiDashboardResponse, bool, error) {
	if facultyID == "" {
		return nil, false, appErrors.Clone(appErrors.ErrMissingParameter, "faculty_id is required")
	}
	cacheKey := fmt.Sprintf("dash:prodi:%s", facultyID)
	var cached dto.ProdiDashboardResponse
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	faculty, err := s.faculties.FindByID(ctx, facultyID)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	users, err := s.users.ListByFaculty(ctx, facultyID)
	if err != nil {
		return nil, false, err
	}
	courses, err := s.courses.ListByFaculty(ctx, facultyID)
	if err != nil {
		return nil, false, err
	}
	majors, err := s.faculties.ListMajorsByFaculty(ctx, facultyID)
	if err != nil {
		return nil, false, err
	}
	courseIDs := make([]string, 0, len(courses))
	for _, c := range courses {
		courseIDs = append(courseIDs, c.CourseID)
	}
	enrollments, err := s.enrollments.ListByCourses(ctx, courseIDs)
	if err != nil {
		return nil, false, err
	}
	grades, err := s.grades.ListByCourses(ctx, courseIDs)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("dashboard_prodi", time.Since(start))
	}

	summary, err := aggregate.ProdiDashboard(*faculty, users, courses, majors, enrollments, grades)
	if err != nil {
		return nil, false, err
	}
	s.persistCache(ctx, cacheKey, summary)
	return summary, false, nil
}

// Management returns the system-wide rollup.
func (s *DashboardService) Management(ctx context.Context) (*dto.ManagementDashboardResponse, bool, error) {
	const cacheKey = "dash:management"
	var cached dto.ManagementDashboardResponse
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	start := time.Now()
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, false, err
	}
	courses, err := s.courses.ListAll(ctx)
	if err != nil {
		return nil, false, err
	}
	enrollments, err := s.enrollments.ListAll(ctx)
	if err != nil {
		return nil, false, err
	}
	faculties, err := s.faculties.ListAll(ctx)
	if err != nil {
		return nil, false, err
	}
	majors, err := s.faculties.ListAllMajors(ctx)
	if err != nil {
		return nil, false, err
	}
	assignments, err := s.assignments.ListAll(ctx)
	if err != nil {
		return nil, false, err
	}
	submissions, err := s.assignments.ListAllSubmissions(ctx)
	if err != nil {
		return nil, false, err
	}
	grades, err := s.grades.ListAll(ctx)
	if err != nil {
		return nil, false, err
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("dashboard_management", time.Since(start))
	}

	summary := aggregate.ManagementDashboard(users, courses, enrollments, faculties, majors, assignments, submissions, grades)
	s.persistCache(ctx, cacheKey, summary)
	return summary, false, nil
}

func (s *DashboardService) persistCache(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
