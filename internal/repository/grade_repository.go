package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/akademika/lms-api/internal/models"
)

// GradeRepository handles grade record persistence.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository creates a new grade repository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

const gradeColumns = "id, student_id, course_id, assignment_id, score, letter, recorded_at, created_at, updated_at"

// List returns grade records matching the filter with a total count for
// pagination.
func (r *GradeRepository) List(ctx context.Context, filter models.GradeFilter) ([]models.GradeRecord, int, error) {
	var conditions []string
	var args []interface{}
	if filter.StudentID != "" {
		conditions = append(conditions, fmt.Sprintf("student_id = $%d", len(args)+1))
		args = append(args, filter.StudentID)
	}
	if filter.CourseID != "" {
		conditions = append(conditions, fmt.Sprintf("course_id = $%d", len(args)+1))
		args = append(args, filter.CourseID)
	}
	if filter.AssignmentID != "" {
		conditions = append(conditions, fmt.Sprintf("assignment_id = $%d", len(args)+1))
		args = append(args, filter.AssignmentID)
	}

	clause := ""
	if len(conditions) > 0 {
		clause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM grades"+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("count grades: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}

	query := fmt.Sprintf("SELECT %s FROM grades%s ORDER BY recorded_at DESC LIMIT $%d OFFSET $%d",
		gradeColumns, clause, len(args)+1, len(args)+2)
	args = append(args, size, (page-1)*size)

	var grades []models.GradeRecord
	if err := r.db.SelectContext(ctx, &grades, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list grades: %w", err)
	}
	return grades, total, nil
}

// ListByStudent returns every grade record for one student.
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID string) ([]models.GradeRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM grades WHERE student_id = $1 ORDER BY recorded_at DESC", gradeColumns)
	var grades []models.GradeRecord
	if err := r.db.SelectContext(ctx, &grades, query, studentID); err != nil {
		return nil, fmt.Errorf("list grades by student: %w", err)
	}
	return grades, nil
}

// ListByCourse returns every grade record for one course.
func (r *GradeRepository) ListByCourse(ctx context.Context, courseID string) ([]models.GradeRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM grades WHERE course_id = $1 ORDER BY recorded_at DESC", gradeColumns)
	var grades []models.GradeRecord
	if err := r.db.SelectContext(ctx, &grades, query, courseID); err != nil {
		return nil, fmt.Errorf("list grades by course: %w", err)
	}
	return grades, nil
}

// ListByCourses returns grade records across a set of courses.
func (r *GradeRepository) ListByCourses(ctx context.Context, courseIDs []string) ([]models.GradeRecord, error) {
	if len(courseIDs) == 0 {
		return []models.GradeRecord{}, nil
	}
	placeholders := make([]string, len(courseIDs))
	args := make([]interface{}, len(courseIDs))
	for i, id := range courseIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf("SELECT %s FROM grades WHERE course_id IN (%s)", gradeColumns, strings.Join(placeholders, ","))
	var grades []models.GradeRecord
	if err := r.db.SelectContext(ctx, &grades, query, args...); err != nil {
		return nil, fmt.Errorf("list grades by courses: %w", err)
	}
	return grades, nil
}

// ListAll returns every grade record (management rollups).
func (r *GradeRepository) ListAll(ctx context.Context) ([]models.GradeRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM grades", gradeColumns)
	var grades []models.GradeRecord
	if err := r.db.SelectContext(ctx, &grades, query); err != nil {
		return nil, fmt.Errorf("list all grades: %w", err)
	}
	return grades, nil
}

// Upsert inserts or updates a grade record. At most one record exists per
// (student, assignment) pair; course-level grades conflict on
// (student, course) with a null assignment.
func (r *GradeRepository) Upsert(ctx context.Context, grade *models.GradeRecord) error {
	if grade.ID == "" {
		grade.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if grade.CreatedAt.IsZero() {
		grade.CreatedAt = now
	}
	if grade.RecordedAt.IsZero() {
		grade.RecordedAt = now
	}
	grade.UpdatedAt = now
	const query = `INSERT INTO grades (id, student_id, course_id, assignment_id, score, letter, recorded_at, created_at, updated_at)
        VALUES (:id, :student_id, :course_id, :assignment_id, :score, :letter, :recorded_at, :created_at, :updated_at)
        ON CONFLICT (student_id, course_id, assignment_id)
        DO UPDATE SET score = EXCLUDED.score, letter = EXCLUDED.letter, recorded_at = EXCLUDED.recorded_at, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, grade); err != nil {
		return fmt.Errorf("upsert grade: %w", err)
	}
	return nil
}
