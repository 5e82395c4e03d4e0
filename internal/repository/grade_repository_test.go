package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/akademika/lms-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func gradeRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "student_id", "course_id", "assignment_id", "score", "letter", "recorded_at", "created_at", "updated_at"}).
		AddRow("grd-1", "stu-1", "crs-1", nil, 92.0, models.LetterA, now, now, now).
		AddRow("grd-2", "stu-1", "crs-2", nil, 81.0, models.LetterB, now, now, now)
}

func TestGradeRepositoryListByStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, student_id, course_id, assignment_id, score, letter, recorded_at, created_at, updated_at FROM grades WHERE student_id = $1 ORDER BY recorded_at DESC")).
		WithArgs("stu-1").
		WillReturnRows(gradeRows())

	grades, err := repo.ListByStudent(context.Background(), "stu-1")
	require.NoError(t, err)
	require.Len(t, grades, 2)
	require.Equal(t, models.LetterA, grades[0].Letter)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryListPaginates(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM grades WHERE course_id = $1")).
		WithArgs("crs-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, student_id, course_id, assignment_id, score, letter, recorded_at, created_at, updated_at FROM grades WHERE course_id = $1 ORDER BY recorded_at DESC LIMIT $2 OFFSET $3")).
		WithArgs("crs-1", 10, 10).
		WillReturnRows(gradeRows())

	grades, total, err := repo.List(context.Background(), models.GradeFilter{CourseID: "crs-1", Page: 2, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, 42, total)
	require.Len(t, grades, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryListByCourses(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, student_id, course_id, assignment_id, score, letter, recorded_at, created_at, updated_at FROM grades WHERE course_id IN ($1,$2)")).
		WithArgs("crs-1", "crs-2").
		WillReturnRows(gradeRows())

	grades, err := repo.ListByCourses(context.Background(), []string{"crs-1", "crs-2"})
	require.NoError(t, err)
	require.Len(t, grades, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryListByCoursesEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	grades, err := repo.ListByCourses(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, grades)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryUpsertAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO grades")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	grade := &models.GradeRecord{StudentID: "stu-1", CourseID: "crs-1", Score: 88, Letter: models.LetterB}
	require.NoError(t, repo.Upsert(context.Background(), grade))
	require.NotEmpty(t, grade.ID)
	require.False(t, grade.RecordedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}
