package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/akademika/lms-api/internal/models"
)

// AssignmentRepository reads assignment and submission projections.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

const assignmentColumns = "id, course_id, title, is_published, due_date"
const submissionColumns = "assignment_id, student_id, status, grade"

// ListByCourses returns assignments across a set of courses.
func (r *AssignmentRepository) ListByCourses(ctx context.Context, courseIDs []string) ([]models.Assignment, error) {
	if len(courseIDs) == 0 {
		return []models.Assignment{}, nil
	}
	placeholders := make([]string, len(courseIDs))
	args := make([]interface{}, len(courseIDs))
	for i, id := range courseIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf("SELECT %s FROM assignments WHERE course_id IN (%s)",
		assignmentColumns, strings.Join(placeholders, ","))
	var assignments []models.Assignment
	if err := r.db.SelectContext(ctx, &assignments, query, args...); err != nil {
		return nil, fmt.Errorf("list assignments by courses: %w", err)
	}
	return assignments, nil
}

// ListAll returns every assignment (management rollups).
func (r *AssignmentRepository) ListAll(ctx context.Context) ([]models.Assignment, error) {
	query := fmt.Sprintf("SELECT %s FROM assignments", assignmentColumns)
	var assignments []models.Assignment
	if err := r.db.SelectContext(ctx, &assignments, query); err != nil {
		return nil, fmt.Errorf("list all assignments: %w", err)
	}
	return assignments, nil
}

// ListSubmissionsByStudent returns submission summaries for one student.
func (r *AssignmentRepository) ListSubmissionsByStudent(ctx context.Context, studentID string) ([]models.AssignmentSubmissionSummary, error) {
	query := fmt.Sprintf("SELECT %s FROM assignment_submissions WHERE student_id = $1", submissionColumns)
	var submissions []models.AssignmentSubmissionSummary
	if err := r.db.SelectContext(ctx, &submissions, query, studentID); err != nil {
		return nil, fmt.Errorf("list submissions by student: %w", err)
	}
	return submissions, nil
}

// ListSubmissionsByCourses returns submission summaries for assignments in
// the given courses.
func (r *AssignmentRepository) ListSubmissionsByCourses(ctx context.Context, courseIDs []string) ([]models.AssignmentSubmissionSummary, error) {
	if len(courseIDs) == 0 {
		return []models.AssignmentSubmissionSummary{}, nil
	}
	placeholders := make([]string, len(courseIDs))
	args := make([]interface{}, len(courseIDs))
	for i, id := range courseIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT s.assignment_id, s.student_id, s.status, s.grade
        FROM assignment_submissions s
        JOIN assignments a ON a.id = s.assignment_id
        WHERE a.course_id IN (%s)`, strings.Join(placeholders, ","))
	var submissions []models.AssignmentSubmissionSummary
	if err := r.db.SelectContext(ctx, &submissions, query, args...); err != nil {
		return nil, fmt.Errorf("list submissions by courses: %w", err)
	}
	return submissions, nil
}

// ListAllSubmissions returns every submission summary (management rollups).
func (r *AssignmentRepository) ListAllSubmissions(ctx context.Context) ([]models.AssignmentSubmissionSummary, error) {
	query := fmt.Sprintf("SELECT %s FROM assignment_submissions", submissionColumns)
	var submissions []models.AssignmentSubmissionSummary
	if err := r.db.SelectContext(ctx, &submissions, query); err != nil {
		return nil, fmt.Errorf("list all submissions: %w", err)
	}
	return submissions, nil
}
