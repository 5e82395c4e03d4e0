package aggregate

import (
	"sort"
	"time"

	"github.com/akademika/lms-api/internal/dto"
	"github.com/akademika/lms-api/internal/models"
)

// AssemblerConfig tunes list limits inside dashboard payloads.
type AssemblerConfig struct {
	UpcomingWindow time.Duration
	UpcomingMax    int
	RecentGradeMax int
}

// normalise fills zero values with the defaults the original dashboards use.
func (c AssemblerConfig) normalise() AssemblerConfig {
	if c.UpcomingWindow <= 0 {
		c.UpcomingWindow = 7 * 24 * time.Hour
	}
	if c.UpcomingMax <= 0 {
		c.UpcomingMax = 5
	}
	if c.RecentGradeMax <= 0 {
		c.RecentGradeMax = 5
	}
	return c
}

// StudentDashboard assembles the student payload from pre-fetched records.
// The scope (studentID) and clock are explicit parameters; nothing is read
// from ambient state. An assignment with no due date stays pending until the
// student submits.
func StudentDashboard(studentID string, now time.Time, cfg AssemblerConfig,
	enrollments []models.EnrollmentRecord, grades []models.GradeRecord,
	assignments []models.Assignment, submissions []models.AssignmentSubmissionSummary) (*dto.StudentDashboardResponse, error) {

	cfg = cfg.normalise()

	gpa, err := ComputeGPA(grades)
	if err != nil {
		return nil, err
	}

	enrolledCourses := make(map[string]struct{})
	for _, e := range enrollments {
		if e.Status == models.EnrollmentStatusEnrolled {
			enrolledCourses[e.CourseID] = struct{}{}
		}
	}

	submittedBy := make(map[string]models.SubmissionStatus)
	for _, s := range submissions {
		if s.StudentID == studentID {
			submittedBy[s.AssignmentID] = s.Status
		}
	}

	pending := 0
	var upcoming []models.Assignment
	for _, a := range assignments {
		if !a.IsPublished {
			continue
		}
		if _, ok := enrolledCourses[a.CourseID]; !ok {
			continue
		}
		if _, done := submittedBy[a.ID]; !done {
			if a.DueDate == nil || a.DueDate.After(now) {
				pending++
			}
		}
		if a.DueDate != nil && a.DueDate.After(now) && !a.DueDate.After(now.Add(cfg.UpcomingWindow)) {
			upcoming = append(upcoming, a)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(*upcoming[j].DueDate)
	})
	if len(upcoming) > cfg.UpcomingMax {
		upcoming = upcoming[:cfg.UpcomingMax]
	}

	submitted, graded := 0, 0
	for _, s := range submissions {
		if s.StudentID != studentID {
			continue
		}
		switch s.Status {
		case models.SubmissionStatusSubmitted, models.SubmissionStatusLate:
			submitted++
		case models.SubmissionStatusGraded:
			graded++
		}
	}

	recent := make([]models.GradeRecord, len(grades))
	copy(recent, grades)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].RecordedAt.After(recent[j].RecordedAt)
	})
	if len(recent) > cfg.RecentGradeMax {
		recent = recent[:cfg.RecentGradeMax]
	}

	return &dto.StudentDashboardResponse{
		Role:                 string(models.RoleStudent),
		StudentID:            studentID,
		TotalCourses:         CountEnrolledCourses(enrollments),
		TotalSKS:             ComputeTotalSKS(enrollments),
		GPA:                  gpa,
		PendingAssignments:   pending,
		SubmittedAssignments: submitted,
		GradedAssignments:    graded,
		UpcomingAssignments:  upcoming,
		RecentGrades:         recent,
	}, nil
}

// FacultyDashboard assembles the instructor payload. The courses slice is
// already scoped to one instructor by the caller.
func FacultyDashboard(instructorID string,
	courses []models.CourseSummary, enrollments []models.EnrollmentRecord,
	assignments []models.Assignment, submissions []models.AssignmentSubmissionSummary,
	grades []models.GradeRecord) *dto.FacultyDashboardResponse {

	courseSet := make(map[string]models.CourseSummary, len(courses))
	active := 0
	for _, c := range courses {
		courseSet[c.CourseID] = c
		if c.IsActive {
			active++
		}
	}

	totalStudents := 0
	studentsPerCourse := make(map[string]int)
	for _, e := range enrollments {
		if e.Status != models.EnrollmentStatusEnrolled {
			continue
		}
		if _, ok := courseSet[e.CourseID]; !ok {
			continue
		}
		totalStudents++
		studentsPerCourse[e.CourseID]++
	}

	assignmentCourse := make(map[string]string, len(assignments))
	totalAssignments, published := 0, 0
	for _, a := range assignments {
		if _, ok := courseSet[a.CourseID]; !ok {
			continue
		}
		assignmentCourse[a.ID] = a.CourseID
		totalAssignments++
		if a.IsPublished {
			published++
		}
	}

	totalSubmissions, pendingGrading := 0, 0
	for _, s := range submissions {
		if _, ok := assignmentCourse[s.AssignmentID]; !ok {
			continue
		}
		totalSubmissions++
		if s.Status == models.SubmissionStatusSubmitted {
			pendingGrading++
		}
	}

	gradesPerCourse := make(map[string][]models.GradeRecord)
	for _, g := range grades {
		if _, ok := courseSet[g.CourseID]; ok {
			gradesPerCourse[g.CourseID] = append(gradesPerCourse[g.CourseID], g)
		}
	}

	courseGrades := make([]dto.CourseGradeSummary, 0, len(courses))
	for _, c := range courses {
		summary := dto.CourseGradeSummary{
			CourseID:      c.CourseID,
			CourseName:    c.Name,
			CourseCode:    c.Code,
			StudentsCount: studentsPerCourse[c.CourseID],
		}
		if courseRecords := gradesPerCourse[c.CourseID]; len(courseRecords) > 0 {
			avg := AverageScore(courseRecords)
			summary.AverageGrade = &avg
		}
		courseGrades = append(courseGrades, summary)
	}

	return &dto.FacultyDashboardResponse{
		Role:                      string(models.RoleFaculty),
		InstructorID:              instructorID,
		TotalCourses:              len(courses),
		ActiveCourses:             active,
		TotalStudents:             totalStudents,
		AssignmentsPendingGrading: pendingGrading,
		TotalAssignments:          totalAssignments,
		PublishedAssignments:      published,
		TotalSubmissions:          totalSubmissions,
		CourseGrades:              courseGrades,
	}
}

// ProdiDashboard assembles the faculty-scope (study program) payload. The
// users/courses/majors/enrollments/grades slices are already scoped to the
// faculty by the caller; GPA is recomputed per student from scores.
func ProdiDashboard(faculty models.Faculty,
	users []models.User, courses []models.CourseSummary, majors []models.Major,
	enrollments []models.EnrollmentRecord, grades []models.GradeRecord) (*dto.ProdiDashboardResponse, error) {

	students := make(map[string]struct{})
	perMajor := make(map[string]int)
	for _, u := range users {
		if u.Role != models.RoleStudent {
			continue
		}
		students[u.ID] = struct{}{}
		if u.MajorID != nil {
			perMajor[*u.MajorID]++
		}
	}

	activeCourses := 0
	for _, c := range courses {
		if c.IsActive {
			activeCourses++
		}
	}

	gradesByStudent := make(map[string][]models.GradeRecord)
	for _, g := range grades {
		if _, ok := students[g.StudentID]; ok {
			gradesByStudent[g.StudentID] = append(gradesByStudent[g.StudentID], g)
		}
	}
	var averageGPA *float64
	if len(gradesByStudent) > 0 {
		total := 0.0
		for _, studentGrades := range gradesByStudent {
			gpa, err := ComputeGPA(studentGrades)
			if err != nil {
				return nil, err
			}
			total += gpa
		}
		avg := round2(total / float64(len(gradesByStudent)))
		averageGPA = &avg
	}

	majorsData := make([]dto.MajorStudentCount, 0, len(majors))
	for _, m := range majors {
		majorsData = append(majorsData, dto.MajorStudentCount{
			ID:           m.ID,
			Name:         m.Name,
			Code:         m.Code,
			StudentCount: perMajor[m.ID],
		})
	}

	totalEnrollments, activeEnrollments := len(enrollments), 0
	for _, e := range enrollments {
		if e.Status == models.EnrollmentStatusEnrolled {
			activeEnrollments++
		}
	}

	return &dto.ProdiDashboardResponse{
		Role:              "prodi",
		FacultyID:         faculty.ID,
		FacultyName:       faculty.Name,
		TotalStudents:     len(students),
		TotalCourses:      len(courses),
		ActiveCourses:     activeCourses,
		AverageGPA:        averageGPA,
		TotalMajors:       len(majors),
		MajorsData:        majorsData,
		TotalEnrollments:  totalEnrollments,
		ActiveEnrollments: activeEnrollments,
	}, nil
}

// ManagementDashboard assembles the system-wide admin rollup.
// grades.average is the direct mean of all scores, not GPA-weighted.
func ManagementDashboard(
	users []models.User, courses []models.CourseSummary,
	enrollments []models.EnrollmentRecord, faculties []models.Faculty, majors []models.Major,
	assignments []models.Assignment, submissions []models.AssignmentSubmissionSummary,
	grades []models.GradeRecord) *dto.ManagementDashboardResponse {

	userCounts := dto.UserCounts{Total: len(users)}
	byYear := make(map[int]int)
	for _, u := range users {
		switch u.Role {
		case models.RoleStudent:
			userCounts.Students++
			if u.EnrollmentYear != nil {
				byYear[*u.EnrollmentYear]++
			}
		case models.RoleFaculty:
			userCounts.Faculty++
		case models.RoleAdmin:
			userCounts.Admins++
		}
	}

	courseCounts := dto.CountSection{Total: len(courses)}
	perFaculty := make(map[string]int)
	for _, c := range courses {
		if c.IsActive {
			courseCounts.Active++
		}
		if c.FacultyID != nil {
			perFaculty[*c.FacultyID]++
		}
	}

	enrollmentCounts := dto.EnrollmentCounts{Total: len(enrollments)}
	for _, e := range enrollments {
		switch e.Status {
		case models.EnrollmentStatusEnrolled:
			enrollmentCounts.Active++
		case models.EnrollmentStatusCompleted:
			enrollmentCounts.Completed++
		}
	}

	facultyCounts := dto.CountSection{Total: len(faculties)}
	for _, f := range faculties {
		if f.IsActive {
			facultyCounts.Active++
		}
	}
	majorCounts := dto.CountSection{Total: len(majors)}
	for _, m := range majors {
		if m.IsActive {
			majorCounts.Active++
		}
	}

	assignmentCounts := dto.AssignmentCounts{Total: len(assignments), Submissions: len(submissions)}
	for _, s := range submissions {
		if s.Status == models.SubmissionStatusGraded {
			assignmentCounts.Graded++
		}
	}

	gradeCounts := dto.GradeCounts{Total: len(grades)}
	if len(grades) > 0 {
		avg := AverageScore(grades)
		gradeCounts.Average = &avg
	}

	studentsByYear := make([]dto.YearCount, 0, len(byYear))
	for year, count := range byYear {
		studentsByYear = append(studentsByYear, dto.YearCount{EnrollmentYear: year, Count: count})
	}
	sort.Slice(studentsByYear, func(i, j int) bool {
		return studentsByYear[i].EnrollmentYear < studentsByYear[j].EnrollmentYear
	})

	coursesByFaculty := make([]dto.FacultyCourseCount, 0, len(faculties))
	for _, f := range faculties {
		coursesByFaculty = append(coursesByFaculty, dto.FacultyCourseCount{
			FacultyID:    f.ID,
			FacultyName:  f.Name,
			CoursesCount: perFaculty[f.ID],
		})
	}
	sort.SliceStable(coursesByFaculty, func(i, j int) bool {
		return coursesByFaculty[i].CoursesCount > coursesByFaculty[j].CoursesCount
	})
	if len(coursesByFaculty) > 5 {
		coursesByFaculty = coursesByFaculty[:5]
	}

	return &dto.ManagementDashboardResponse{
		Role:             "management",
		Users:            userCounts,
		Courses:          courseCounts,
		Enrollments:      enrollmentCounts,
		Faculties:        facultyCounts,
		Majors:           majorCounts,
		Assignments:      assignmentCounts,
		Grades:           gradeCounts,
		StudentsByYear:   studentsByYear,
		CoursesByFaculty: coursesByFaculty,
	}
}

// GradeDistributionReport composes the per-course distribution payload. The
// grades slice is already scoped to one course. Highest/lowest/average map
// to null when no grades exist.
func GradeDistributionReport(courseID string, grades []models.GradeRecord) (*dto.GradeDistributionReport, error) {
	dist, err := ComputeDistribution(grades)
	if err != nil {
		return nil, err
	}
	report := &dto.GradeDistributionReport{
		CourseID:     courseID,
		TotalGrades:  dist.Total,
		Distribution: dist,
		Percentages:  ComputePercentages(dist),
	}
	if len(grades) > 0 {
		avg := AverageScore(grades)
		report.AverageGrade = &avg
		if high, err := HighestGrade(grades); err == nil {
			report.HighestGrade = &high
		}
		if low, err := LowestGrade(grades); err == nil {
			report.LowestGrade = &low
		}
	}
	return report, nil
}
