package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/akademika/lms-api/internal/models"
)

// EnrollmentRepository handles persistence of course enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

const enrollmentColumns = "id, student_id, course_id, status, enrolled_at, credit_hours"

// ListByStudent returns every enrollment row for one student.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]models.EnrollmentRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM course_enrollments WHERE student_id = $1", enrollmentColumns)
	var enrollments []models.EnrollmentRecord
	if err := r.db.SelectContext(ctx, &enrollments, query, studentID); err != nil {
		return nil, fmt.Errorf("list enrollments by student: %w", err)
	}
	return enrollments, nil
}

// ListByCourses returns enrollment rows across a set of courses.
func (r *EnrollmentRepository) ListByCourses(ctx context.Context, courseIDs []string) ([]models.EnrollmentRecord, error) {
	if len(courseIDs) == 0 {
		return []models.EnrollmentRecord{}, nil
	}
	placeholders := make([]string, len(courseIDs))
	args := make([]interface{}, len(courseIDs))
	for i, id := range courseIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf("SELECT %s FROM course_enrollments WHERE course_id IN (%s)",
		enrollmentColumns, strings.Join(placeholders, ","))
	var enrollments []models.EnrollmentRecord
	if err := r.db.SelectContext(ctx, &enrollments, query, args...); err != nil {
		return nil, fmt.Errorf("list enrollments by courses: %w", err)
	}
	return enrollments, nil
}

// ListAll returns every enrollment row (management rollups).
func (r *EnrollmentRepository) ListAll(ctx context.Context) ([]models.EnrollmentRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM course_enrollments", enrollmentColumns)
	var enrollments []models.EnrollmentRecord
	if err := r.db.SelectContext(ctx, &enrollments, query); err != nil {
		return nil, fmt.Errorf("list all enrollments: %w", err)
	}
	return enrollments, nil
}

// Trends groups enrollment counts by calendar period, optionally scoped to a
// faculty or major through the owning course.
func (r *EnrollmentRepository) Trends(ctx context.Context, period models.TrendPeriod, facultyID, majorID string) ([]models.EnrollmentTrendPoint, error) {
	var bucket string
	switch period {
	case models.TrendYearly:
		bucket = "to_char(date_trunc('year', e.enrolled_at), 'YYYY')"
	case models.TrendSemesterly:
		bucket = "to_char(date_trunc('year', e.enrolled_at), 'YYYY') || '-S' || ((extract(month from e.enrolled_at)::int - 1) / 6 + 1)"
	default:
		bucket = "to_char(date_trunc('month', e.enrolled_at), 'YYYY-MM')"
	}

	query := fmt.Sprintf(`SELECT %s AS period, COUNT(*) AS count
        FROM course_enrollments e
        JOIN courses c ON c.course_id = e.course_id
        WHERE e.enrolled_at IS NOT NULL`, bucket)
	var args []interface{}
	if facultyID != "" {
		query += fmt.Sprintf(" AND c.faculty_id = $%d", len(args)+1)
		args = append(args, facultyID)
	}
	if majorID != "" {
		query += fmt.Sprintf(" AND c.major_id = $%d", len(args)+1)
		args = append(args, majorID)
	}
	query += " GROUP BY period ORDER BY period"

	var points []models.EnrollmentTrendPoint
	if err := r.db.SelectContext(ctx, &points, query, args...); err != nil {
		return nil, fmt.Errorf("enrollment trends: %w", err)
	}
	return points, nil
}

// FacultySummary aggregates enrollment counts per faculty in one pass.
func (r *EnrollmentRepository) FacultySummary(ctx context.Context) ([]models.FacultyEnrollmentSummary, error) {
	const query = `SELECT f.id AS faculty_id, f.name AS faculty_name, f.code AS faculty_code,
        COUNT(DISTINCT c.course_id) AS total_courses,
        COUNT(e.id) AS total_enrollments,
        COUNT(e.id) FILTER (WHERE e.status = 'enrolled') AS active_enrollments,
        COUNT(e.id) FILTER (WHERE e.status = 'completed') AS completed_enrollments,
        COUNT(e.id) FILTER (WHERE e.status = 'dropped') AS dropped_enrollments,
        COUNT(DISTINCT e.student_id) AS unique_students
        FROM faculties f
        LEFT JOIN courses c ON c.faculty_id = f.id
        LEFT JOIN course_enrollments e ON e.course_id = c.course_id
        GROUP BY f.id, f.name, f.code
        ORDER BY f.name`
	var summaries []models.FacultyEnrollmentSummary
	if err := r.db.SelectContext(ctx, &summaries, query); err != nil {
		return nil, fmt.Errorf("faculty enrollment summary: %w", err)
	}
	return summaries, nil
}
