package models

// CourseSummary is the course projection consumed by aggregation: credit
// load, ownership and activity flag. Full course CRUD lives outside this
// service.
type CourseSummary struct {
	CourseID     string  `db:"course_id" json:"course_id"`
	Code         string  `db:"code" json:"code"`
	Name         string  `db:"name" json:"name"`
	CreditHours  int     `db:"credit_hours" json:"credit_hours"`
	InstructorID string  `db:"instructor_id" json:"instructor_id"`
	FacultyID    *string `db:"faculty_id" json:"faculty_id,omitempty"`
	MajorID      *string `db:"major_id" json:"major_id,omitempty"`
	IsActive     bool    `db:"is_active" json:"is_active"`
}
