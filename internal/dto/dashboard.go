package dto

import "github.com/akademika/lms-api/internal/models"

// StudentDashboardResponse summarises a student's academic standing.
type StudentDashboardResponse struct {
	Role                 string               `json:"role"`
	StudentID            string               `json:"student_id"`
	TotalCourses         int                  `json:"total_courses"`
	TotalSKS             int                  `json:"total_sks"`
	GPA                  float64              `json:"gpa"`
	PendingAssignments   int                  `json:"pending_assignments"`
	SubmittedAssignments int                  `json:"submitted_assignments"`
	GradedAssignments    int                  `json:"graded_assignments"`
	UpcomingAssignments  []models.Assignment  `json:"upcoming_assignments"`
	RecentGrades         []models.GradeRecord `json:"recent_grades"`
}

// CourseGradeSummary carries per-course grade averages for faculty views.
type CourseGradeSummary struct {
	CourseID      string   `json:"course_id"`
	CourseName    string   `json:"course_name"`
	CourseCode    string   `json:"course_code"`
	AverageGrade  *float64 `json:"average_grade"`
	StudentsCount int      `json:"students_count"`
}

// FacultyDashboardResponse summarises an instructor's teaching load.
type FacultyDashboardResponse struct {
	Role                      string               `json:"role"`
	InstructorID              string               `json:"instructor_id"`
	TotalCourses              int                  `json:"total_courses"`
	ActiveCourses             int                  `json:"active_courses"`
	TotalStudents             int                  `json:"total_students"`
	AssignmentsPendingGrading int                  `json:"assignments_pending_grading"`
	TotalAssignments          int                  `json:"total_assignments"`
	PublishedAssignments      int                  `json:"published_assignments"`
	TotalSubmissions          int                  `json:"total_submissions"`
	CourseGrades              []CourseGradeSummary `json:"course_grades"`
}

// MajorStudentCount lists a major with its student head count.
type MajorStudentCount struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	StudentCount int    `json:"student_count"`
}

// ProdiDashboardResponse summarises one faculty (study program) scope.
type ProdiDashboardResponse struct {
	Role              string              `json:"role"`
	FacultyID         string              `json:"faculty_id"`
	FacultyName       string              `json:"faculty_name"`
	TotalStudents     int                 `json:"total_students"`
	TotalCourses      int                 `json:"total_courses"`
	ActiveCourses     int                 `json:"active_courses"`
	AverageGPA        *float64            `json:"average_gpa"`
	TotalMajors       int                 `json:"total_majors"`
	MajorsData        []MajorStudentCount `json:"majors_data"`
	TotalEnrollments  int                 `json:"total_enrollments"`
	ActiveEnrollments int                 `json:"active_enrollments"`
}

// CountSection groups a total with an active subset.
type CountSection struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// UserCounts breaks users down by role.
type UserCounts struct {
	Total    int `json:"total"`
	Students int `json:"students"`
	Faculty  int `json:"faculty"`
	Admins   int `json:"admins"`
}

// EnrollmentCounts breaks enrollments down by status.
type EnrollmentCounts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// AssignmentCounts summarises assignment and submission volume.
type AssignmentCounts struct {
	Total       int `json:"total"`
	Submissions int `json:"submissions"`
	Graded      int `json:"graded"`
}

// GradeCounts carries the system-wide direct score average (not GPA).
type GradeCounts struct {
	Total   int      `json:"total"`
	Average *float64 `json:"average"`
}

// YearCount is a student head count for one enrollment year.
type YearCount struct {
	EnrollmentYear int `json:"enrollment_year"`
	Count          int `json:"count"`
}

// FacultyCourseCount ranks faculties by course volume.
type FacultyCourseCount struct {
	FacultyID    string `json:"faculty_id"`
	FacultyName  string `json:"faculty_name"`
	CoursesCount int    `json:"courses_count"`
}

// ManagementDashboardResponse is the system-wide admin rollup.
type ManagementDashboardResponse struct {
	Role             string               `json:"role"`
	Users            UserCounts           `json:"users"`
	Courses          CountSection         `json:"courses"`
	Enrollments      EnrollmentCounts     `json:"enrollments"`
	Faculties        CountSection         `json:"faculties"`
	Majors           CountSection         `json:"majors"`
	Assignments      AssignmentCounts     `json:"assignments"`
	Grades           GradeCounts          `json:"grades"`
	StudentsByYear   []YearCount          `json:"students_by_year"`
	CoursesByFaculty []FacultyCourseCount `json:"courses_by_faculty"`
}
