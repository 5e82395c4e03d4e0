package models

import "time"

// Letter is a letter grade on the A-F scale.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterF Letter = "F"
)

// GradeRecord is a graded result for a student in a course. AssignmentID is
// nil for course-level grades. The stored Letter is a display cache kept in
// sync by the write path; aggregation always recomputes from Score.
type GradeRecord struct {
	ID           string    `db:"id" json:"id"`
	StudentID    string    `db:"student_id" json:"student_id"`
	CourseID     string    `db:"course_id" json:"course_id"`
	AssignmentID *string   `db:"assignment_id" json:"assignment_id,omitempty"`
	Score        float64   `db:"score" json:"score"`
	Letter       Letter    `db:"letter" json:"letter"`
	RecordedAt   time.Time `db:"recorded_at" json:"recorded_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// GradeFilter provides filters for listing grade records.
type GradeFilter struct {
	StudentID    string
	CourseID     string
	AssignmentID string
	Page         int
	PageSize     int
}

// GradeDistribution counts records per letter bucket. All five buckets are
// always present in the JSON payload, including zero counts.
type GradeDistribution struct {
	A     int `json:"A"`
	B     int `json:"B"`
	C     int `json:"C"`
	D     int `json:"D"`
	F     int `json:"F"`
	Total int `json:"total"`
}

// GradePercentages expresses a distribution as per-bucket percentages.
type GradePercentages struct {
	A float64 `json:"A"`
	B float64 `json:"B"`
	C float64 `json:"C"`
	D float64 `json:"D"`
	F float64 `json:"F"`
}
