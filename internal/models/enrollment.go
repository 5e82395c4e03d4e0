package models

import "time"

// EnrollmentStatus represents the lifecycle of a course enrollment. Status
// transitions are driven by the enrollment endpoints; aggregation only reads
// the current value.
type EnrollmentStatus string

const (
	EnrollmentStatusPending   EnrollmentStatus = "pending"
	EnrollmentStatusEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusRejected  EnrollmentStatus = "rejected"
)

// EnrollmentRecord captures a student's registration to a course.
// CreditHours is denormalised from the course row.
type EnrollmentRecord struct {
	ID          string           `db:"id" json:"id"`
	StudentID   string           `db:"student_id" json:"student_id"`
	CourseID    string           `db:"course_id" json:"course_id"`
	Status      EnrollmentStatus `db:"status" json:"status"`
	EnrolledAt  *time.Time       `db:"enrolled_at" json:"enrolled_at,omitempty"`
	CreditHours int              `db:"credit_hours" json:"credit_hours"`
}

// EnrollmentFilter provides filters for listing enrollments.
type EnrollmentFilter struct {
	StudentID string
	CourseID  string
	FacultyID string
	Status    EnrollmentStatus
	Page      int
	PageSize  int
}

// TrendPeriod selects the grouping granularity for enrollment trends.
type TrendPeriod string

const (
	TrendMonthly    TrendPeriod = "monthly"
	TrendSemesterly TrendPeriod = "semesterly"
	TrendYearly     TrendPeriod = "yearly"
)

// EnrollmentTrendPoint is one bucket of the enrollment trend series.
type EnrollmentTrendPoint struct {
	Period string `db:"period" json:"period"`
	Count  int    `db:"count" json:"count"`
}

// FacultyEnrollmentSummary aggregates enrollment counts for one faculty.
type FacultyEnrollmentSummary struct {
	FacultyID            string `db:"faculty_id" json:"faculty_id"`
	FacultyName          string `db:"faculty_name" json:"faculty_name"`
	FacultyCode          string `db:"faculty_code" json:"faculty_code"`
	TotalCourses         int    `db:"total_courses" json:"total_courses"`
	TotalEnrollments     int    `db:"total_enrollments" json:"total_enrollments"`
	ActiveEnrollments    int    `db:"active_enrollments" json:"active_enrollments"`
	CompletedEnrollments int    `db:"completed_enrollments" json:"completed_enrollments"`
	DroppedEnrollments   int    `db:"dropped_enrollments" json:"dropped_enrollments"`
	UniqueStudents       int    `db:"unique_students" json:"unique_students"`
}
