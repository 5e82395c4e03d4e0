package dto

import "github.com/akademika/lms-api/internal/models"

// GradeDistributionReport composes the per-course distribution payload.
// Highest/lowest/average are null when the course has no grades.
type GradeDistributionReport struct {
	CourseID     string                   `json:"course_id"`
	TotalGrades  int                      `json:"total_grades"`
	Distribution models.GradeDistribution `json:"distribution"`
	Percentages  models.GradePercentages  `json:"percentages"`
	AverageGrade *float64                 `json:"average_grade"`
	HighestGrade *float64                 `json:"highest_grade"`
	LowestGrade  *float64                 `json:"lowest_grade"`
}

// TranscriptRow is one course line of a student transcript.
type TranscriptRow struct {
	CourseCode  string        `json:"course_code"`
	CourseName  string        `json:"course_name"`
	CreditHours int           `json:"credit_hours"`
	Score       float64       `json:"score"`
	Letter      models.Letter `json:"letter"`
	Points      float64       `json:"points"`
}

// Transcript is a student's per-course grade summary with overall GPA.
type Transcript struct {
	StudentID string          `json:"student_id"`
	GPA       float64         `json:"gpa"`
	TotalSKS  int             `json:"total_sks"`
	Rows      []TranscriptRow `json:"rows"`
}

// EnrollmentTrends is the trends analytics payload.
type EnrollmentTrends struct {
	Period           models.TrendPeriod            `json:"period"`
	FacultyID        string                        `json:"faculty_id,omitempty"`
	MajorID          string                        `json:"major_id,omitempty"`
	Trends           []models.EnrollmentTrendPoint `json:"trends"`
	TotalEnrollments int                           `json:"total_enrollments"`
}

// FacultyEnrollmentReport aggregates enrollment volume per faculty.
type FacultyEnrollmentReport struct {
	Data                   []models.FacultyEnrollmentSummary `json:"data"`
	TotalFaculties         int                               `json:"total_faculties"`
	TotalEnrollments       int                               `json:"total_enrollments"`
	TotalActiveEnrollments int                               `json:"total_active_enrollments"`
}
