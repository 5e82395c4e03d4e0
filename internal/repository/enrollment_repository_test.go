package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/akademika/lms-api/internal/models"
)

func TestEnrollmentRepositoryListByStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "student_id", "course_id", "status", "enrolled_at", "credit_hours"}).
		AddRow("enr-1", "stu-1", "crs-1", models.EnrollmentStatusEnrolled, now, 3).
		AddRow("enr-2", "stu-1", "crs-2", models.EnrollmentStatusPending, nil, 4)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, student_id, course_id, status, enrolled_at, credit_hours FROM course_enrollments WHERE student_id = $1")).
		WithArgs("stu-1").
		WillReturnRows(rows)

	enrollments, err := repo.ListByStudent(context.Background(), "stu-1")
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	require.Equal(t, models.EnrollmentStatusEnrolled, enrollments[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryTrendsMonthly(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	rows := sqlmock.NewRows([]string{"period", "count"}).
		AddRow("2026-01", 12).
		AddRow("2026-02", 18)
	mock.ExpectQuery("SELECT to_char").
		WithArgs("fac-1").
		WillReturnRows(rows)

	points, err := repo.Trends(context.Background(), models.TrendMonthly, "fac-1", "")
	require.NoError(t, err)
	require.Len(t, points, 2)
	require.Equal(t, "2026-01", points[0].Period)
	require.Equal(t, 12, points[0].Count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryFacultySummary(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	rows := sqlmock.NewRows([]string{"faculty_id", "faculty_name", "faculty_code", "total_courses", "total_enrollments", "active_enrollments", "completed_enrollments", "dropped_enrollments", "unique_students"}).
		AddRow("fac-1", "Engineering", "ENG", 12, 300, 200, 80, 20, 150)
	mock.ExpectQuery("SELECT f.id AS faculty_id").
		WillReturnRows(rows)

	summaries, err := repo.FacultySummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, 300, summaries[0].TotalEnrollments)
	require.NoError(t, mock.ExpectationsWereMet())
}
