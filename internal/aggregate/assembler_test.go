package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akademika/lms-api/internal/models"
)

func timePtr(t time.Time) *time.Time { return &t }
func strPtr(s string) *string        { return &s }
func intPtr(i int) *int              { return &i }

func TestStudentDashboard(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	enrollments := []models.EnrollmentRecord{
		{StudentID: "stu-1", CourseID: "course-1", Status: models.EnrollmentStatusEnrolled, CreditHours: 3},
		{StudentID: "stu-1", CourseID: "course-2", Status: models.EnrollmentStatusEnrolled, CreditHours: 4},
		{StudentID: "stu-1", CourseID: "course-3", Status: models.EnrollmentStatusDropped, CreditHours: 3},
	}
	grades := []models.GradeRecord{
		{StudentID: "stu-1", CourseID: "course-1", Score: 95, RecordedAt: now.Add(-48 * time.Hour)},
		{StudentID: "stu-1", CourseID: "course-2", Score: 85, RecordedAt: now.Add(-24 * time.Hour)},
	}
	assignments := []models.Assignment{
		// due in 3 days, unsubmitted: pending and upcoming
		{ID: "asg-1", CourseID: "course-1", IsPublished: true, DueDate: timePtr(now.Add(72 * time.Hour))},
		// no due date, unsubmitted: pending until submitted
		{ID: "asg-2", CourseID: "course-1", IsPublished: true},
		// submitted already: not pending
		{ID: "asg-3", CourseID: "course-2", IsPublished: true, DueDate: timePtr(now.Add(24 * time.Hour))},
		// unpublished: ignored
		{ID: "asg-4", CourseID: "course-2", IsPublished: false, DueDate: timePtr(now.Add(24 * time.Hour))},
		// dropped course: ignored
		{ID: "asg-5", CourseID: "course-3", IsPublished: true, DueDate: timePtr(now.Add(24 * time.Hour))},
	}
	submissions := []models.AssignmentSubmissionSummary{
		{AssignmentID: "asg-3", StudentID: "stu-1", Status: models.SubmissionStatusSubmitted},
		{AssignmentID: "asg-9", StudentID: "stu-1", Status: models.SubmissionStatusGraded},
		{AssignmentID: "asg-3", StudentID: "stu-2", Status: models.SubmissionStatusSubmitted},
	}

	stats, err := StudentDashboard("stu-1", now, AssemblerConfig{}, enrollments, grades, assignments, submissions)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalCourses)
	assert.Equal(t, 7, stats.TotalSKS)
	assert.Equal(t, 3.5, stats.GPA)
	assert.Equal(t, 2, stats.PendingAssignments)
	assert.Equal(t, 1, stats.SubmittedAssignments)
	assert.Equal(t, 1, stats.GradedAssignments)
	require.Len(t, stats.UpcomingAssignments, 2)
	assert.Equal(t, "asg-3", stats.UpcomingAssignments[0].ID)
	require.Len(t, stats.RecentGrades, 2)
	assert.Equal(t, 85.0, stats.RecentGrades[0].Score)
}

func TestStudentDashboardEmptyRecords(t *testing.T) {
	stats, err := StudentDashboard("stu-1", time.Now().UTC(), AssemblerConfig{}, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalCourses)
	assert.Equal(t, 0.0, stats.GPA)
	assert.Equal(t, 0, stats.PendingAssignments)
}

func TestFacultyDashboard(t *testing.T) {
	courses := []models.CourseSummary{
		{CourseID: "course-1", Code: "CS101", Name: "Algorithms", InstructorID: "fac-1", IsActive: true},
		{CourseID: "course-2", Code: "CS102", Name: "Databases", InstructorID: "fac-1", IsActive: false},
	}
	enrollments := []models.EnrollmentRecord{
		{StudentID: "stu-1", CourseID: "course-1", Status: models.EnrollmentStatusEnrolled},
		{StudentID: "stu-2", CourseID: "course-1", Status: models.EnrollmentStatusEnrolled},
		{StudentID: "stu-3", CourseID: "course-2", Status: models.EnrollmentStatusDropped},
	}
	assignments := []models.Assignment{
		{ID: "asg-1", CourseID: "course-1", IsPublished: true},
		{ID: "asg-2", CourseID: "course-2", IsPublished: false},
		{ID: "asg-x", CourseID: "other-course", IsPublished: true},
	}
	submissions := []models.AssignmentSubmissionSummary{
		{AssignmentID: "asg-1", StudentID: "stu-1", Status: models.SubmissionStatusSubmitted},
		{AssignmentID: "asg-1", StudentID: "stu-2", Status: models.SubmissionStatusGraded},
		{AssignmentID: "asg-x", StudentID: "stu-9", Status: models.SubmissionStatusSubmitted},
	}
	grades := []models.GradeRecord{
		{StudentID: "stu-1", CourseID: "course-1", Score: 90},
		{StudentID: "stu-2", CourseID: "course-1", Score: 80},
	}

	stats := FacultyDashboard("fac-1", courses, enrollments, assignments, submissions, grades)

	assert.Equal(t, 2, stats.TotalCourses)
	assert.Equal(t, 1, stats.ActiveCourses)
	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 1, stats.AssignmentsPendingGrading)
	assert.Equal(t, 2, stats.TotalAssignments)
	assert.Equal(t, 1, stats.PublishedAssignments)
	assert.Equal(t, 2, stats.TotalSubmissions)
	require.Len(t, stats.CourseGrades, 2)
	require.NotNil(t, stats.CourseGrades[0].AverageGrade)
	assert.Equal(t, 85.0, *stats.CourseGrades[0].AverageGrade)
	assert.Nil(t, stats.CourseGrades[1].AverageGrade)
	assert.Equal(t, 2, stats.CourseGrades[0].StudentsCount)
}

func TestProdiDashboard(t *testing.T) {
	faculty := models.Faculty{ID: "fak-1", Name: "Engineering", Code: "ENG", IsActive: true}
	users := []models.User{
		{ID: "stu-1", Role: models.RoleStudent, MajorID: strPtr("maj-1")},
		{ID: "stu-2", Role: models.RoleStudent, MajorID: strPtr("maj-1")},
		{ID: "fac-1", Role: models.RoleFaculty},
	}
	courses := []models.CourseSummary{
		{CourseID: "course-1", IsActive: true},
		{CourseID: "course-2", IsActive: false},
	}
	majors := []models.Major{
		{ID: "maj-1", FacultyID: "fak-1", Name: "Informatics", Code: "INF"},
		{ID: "maj-2", FacultyID: "fak-1", Name: "Electrical", Code: "ELE"},
	}
	enrollments := []models.EnrollmentRecord{
		{StudentID: "stu-1", CourseID: "course-1", Status: models.EnrollmentStatusEnrolled},
		{StudentID: "stu-2", CourseID: "course-1", Status: models.EnrollmentStatusCompleted},
	}
	grades := []models.GradeRecord{
		{StudentID: "stu-1", CourseID: "course-1", Score: 95}, // GPA 4.0
		{StudentID: "stu-2", CourseID: "course-1", Score: 85}, // GPA 3.0
	}

	stats, err := ProdiDashboard(faculty, users, courses, majors, enrollments, grades)
	require.NoError(t, err)

	assert.Equal(t, "fak-1", stats.FacultyID)
	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 2, stats.TotalCourses)
	assert.Equal(t, 1, stats.ActiveCourses)
	require.NotNil(t, stats.AverageGPA)
	assert.Equal(t, 3.5, *stats.AverageGPA)
	assert.Equal(t, 2, stats.TotalMajors)
	require.Len(t, stats.MajorsData, 2)
	assert.Equal(t, 2, stats.MajorsData[0].StudentCount)
	assert.Equal(t, 0, stats.MajorsData[1].StudentCount)
	assert.Equal(t, 2, stats.TotalEnrollments)
	assert.Equal(t, 1, stats.ActiveEnrollments)
}

func TestProdiDashboardNoGradesNullGPA(t *testing.T) {
	stats, err := ProdiDashboard(models.Faculty{ID: "fak-1"}, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, stats.AverageGPA)
}

func TestManagementDashboard(t *testing.T) {
	users := []models.User{
		{ID: "stu-1", Role: models.RoleStudent, EnrollmentYear: intPtr(2023)},
		{ID: "stu-2", Role: models.RoleStudent, EnrollmentYear: intPtr(2024)},
		{ID: "fac-1", Role: models.RoleFaculty},
		{ID: "adm-1", Role: models.RoleAdmin},
	}
	courses := []models.CourseSummary{
		{CourseID: "course-1", IsActive: true, FacultyID: strPtr("fak-1")},
		{CourseID: "course-2", IsActive: false, FacultyID: strPtr("fak-1")},
	}
	enrollments := []models.EnrollmentRecord{
		{Status: models.EnrollmentStatusEnrolled},
		{Status: models.EnrollmentStatusCompleted},
		{Status: models.EnrollmentStatusDropped},
	}
	faculties := []models.Faculty{{ID: "fak-1", Name: "Engineering", IsActive: true}}
	majors := []models.Major{{ID: "maj-1", IsActive: true}, {ID: "maj-2", IsActive: false}}
	assignments := []models.Assignment{{ID: "asg-1"}, {ID: "asg-2"}}
	submissions := []models.AssignmentSubmissionSummary{
		{AssignmentID: "asg-1", Status: models.SubmissionStatusGraded},
		{AssignmentID: "asg-2", Status: models.SubmissionStatusSubmitted},
	}
	grades := []models.GradeRecord{{Score: 90}, {Score: 80}}

	stats := ManagementDashboard(users, courses, enrollments, faculties, majors, assignments, submissions, grades)

	assert.Equal(t, []int{4, 2, 1, 1}, []int{stats.Users.Total, stats.Users.Students, stats.Users.Faculty, stats.Users.Admins})
	assert.Equal(t, 2, stats.Courses.Total)
	assert.Equal(t, 1, stats.Courses.Active)
	assert.Equal(t, 3, stats.Enrollments.Total)
	assert.Equal(t, 1, stats.Enrollments.Active)
	assert.Equal(t, 1, stats.Enrollments.Completed)
	assert.Equal(t, 1, stats.Faculties.Total)
	assert.Equal(t, 2, stats.Majors.Total)
	assert.Equal(t, 1, stats.Majors.Active)
	assert.Equal(t, 2, stats.Assignments.Total)
	assert.Equal(t, 2, stats.Assignments.Submissions)
	assert.Equal(t, 1, stats.Assignments.Graded)
	assert.Equal(t, 2, stats.Grades.Total)
	require.NotNil(t, stats.Grades.Average)
	assert.Equal(t, 85.0, *stats.Grades.Average)
	require.Len(t, stats.StudentsByYear, 2)
	assert.Equal(t, 2023, stats.StudentsByYear[0].EnrollmentYear)
	require.Len(t, stats.CoursesByFaculty, 1)
	assert.Equal(t, 2, stats.CoursesByFaculty[0].CoursesCount)
}

func TestManagementDashboardEmptyGradesNullAverage(t *testing.T) {
	stats := ManagementDashboard(nil, nil, nil, nil, nil, nil, nil, nil)
	assert.Nil(t, stats.Grades.Average)
	assert.Equal(t, 0, stats.Users.Total)
}

func TestGradeDistributionReport(t *testing.T) {
	grades := []models.GradeRecord{
		{CourseID: "course-1", Score: 92},
		{CourseID: "course-1", Score: 85},
		{CourseID: "course-1", Score: 75},
	}
	report, err := GradeDistributionReport("course-1", grades)
	require.NoError(t, err)

	assert.Equal(t, "course-1", report.CourseID)
	assert.Equal(t, 3, report.TotalGrades)
	assert.Equal(t, models.GradeDistribution{A: 1, B: 1, C: 1, Total: 3}, report.Distribution)
	assert.InDelta(t, 33.33, report.Percentages.A, 0.001)
	require.NotNil(t, report.AverageGrade)
	assert.Equal(t, 84.0, *report.AverageGrade)
	require.NotNil(t, report.HighestGrade)
	assert.Equal(t, 92.0, *report.HighestGrade)
	require.NotNil(t, report.LowestGrade)
	assert.Equal(t, 75.0, *report.LowestGrade)
}

func TestGradeDistributionReportEmptyCourse(t *testing.T) {
	report, err := GradeDistributionReport("course-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalGrades)
	assert.Equal(t, models.GradeDistribution{}, report.Distribution)
	assert.Equal(t, models.GradePercentages{}, report.Percentages)
	assert.Nil(t, report.AverageGrade)
	assert.Nil(t, report.HighestGrade)
	assert.Nil(t, report.LowestGrade)
}
