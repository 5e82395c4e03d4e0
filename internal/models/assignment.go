package models

import "time"

// Assignment is the projection of an assignment used for dashboard counts.
type Assignment struct {
	ID          string     `db:"id" json:"id"`
	CourseID    string     `db:"course_id" json:"course_id"`
	Title       string     `db:"title" json:"title"`
	IsPublished bool       `db:"is_published" json:"is_published"`
	DueDate     *time.Time `db:"due_date" json:"due_date,omitempty"`
}

// SubmissionStatus represents the lifecycle of an assignment submission.
type SubmissionStatus string

const (
	SubmissionStatusDraft     SubmissionStatus = "draft"
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusLate      SubmissionStatus = "late"
	SubmissionStatusGraded    SubmissionStatus = "graded"
)

// AssignmentSubmissionSummary is the submission projection used for
// pending/graded counts. Grade is nil until the submission is graded.
type AssignmentSubmissionSummary struct {
	AssignmentID string           `db:"assignment_id" json:"assignment_id"`
	StudentID    string           `db:"student_id" json:"student_id"`
	Status       SubmissionStatus `db:"status" json:"status"`
	Grade        *float64         `db:"grade" json:"grade,omitempty"`
}
