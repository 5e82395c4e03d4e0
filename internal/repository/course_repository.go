package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/akademika/lms-api/internal/models"
)

// CourseRepository reads the course projections used for aggregation.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = "course_id, code, name, credit_hours, instructor_id, faculty_id, major_id, is_active"

// FindByID returns one course summary.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.CourseSummary, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE course_id = $1", courseColumns)
	var course models.CourseSummary
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}
	return &course, nil
}

// ListByInstructor returns courses taught by one instructor.
func (r *CourseRepository) ListByInstructor(ctx context.Context, instructorID string) ([]models.CourseSummary, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE instructor_id = $1", courseColumns)
	var courses []models.CourseSummary
	if err := r.db.SelectContext(ctx, &courses, query, instructorID); err != nil {
		return nil, fmt.Errorf("list courses by instructor: %w", err)
	}
	return courses, nil
}

// ListByFaculty returns courses under one faculty.
func (r *CourseRepository) ListByFaculty(ctx context.Context, facultyID string) ([]models.CourseSummary, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE faculty_id = $1", courseColumns)
	var courses []models.CourseSummary
	if err := r.db.SelectContext(ctx, &courses, query, facultyID); err != nil {
		return nil, fmt.Errorf("list courses by faculty: %w", err)
	}
	return courses, nil
}

// ListByIDs returns course summaries for a set of course ids.
func (r *CourseRepository) ListByIDs(ctx context.Context, ids []string) ([]models.CourseSummary, error) {
	if len(ids) == 0 {
		return []models.CourseSummary{}, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf("SELECT %s FROM courses WHERE course_id IN (%s)",
		courseColumns, strings.Join(placeholders, ","))
	var courses []models.CourseSummary
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, fmt.Errorf("list courses by ids: %w", err)
	}
	return courses, nil
}

// ListAll returns every course summary (management rollups).
func (r *CourseRepository) ListAll(ctx context.Context) ([]models.CourseSummary, error) {
	query := fmt.Sprintf("SELECT %s FROM courses", courseColumns)
	var courses []models.CourseSummary
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list all courses: %w", err)
	}
	return courses, nil
}
