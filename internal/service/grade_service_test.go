package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akademika/lms-api/internal/models"
	appErrors "github.com/akademika/lms-api/pkg/errors"
)

type fakeGradeStore struct {
	grades []models.GradeRecord
	total  int
	saved  *models.GradeRecord
}

func (f *fakeGradeStore) List(context.Context, models.GradeFilter) ([]models.GradeRecord, int, error) {
	return f.grades, f.total, nil
}

func (f *fakeGradeStore) Upsert(_ context.Context, grade *models.GradeRecord) error {
	grade.ID = "grd-new"
	f.saved = grade
	return nil
}

func newGradeService(store *fakeGradeStore) *GradeService {
	cache := NewCacheService(newStubCacheRepo(), nil, time.Minute, zap.NewNop())
	return NewGradeService(store, cache, nil, zap.NewNop())
}

func TestGradeServiceUpsertDerivesLetter(t *testing.T) {
	store := &fakeGradeStore{}
	svc := newGradeService(store)

	grade, err := svc.Upsert(context.Background(), GradeUpsertRequest{
		StudentID: "stu-1",
		CourseID:  "crs-1",
		Score:     87.5,
	})
	require.NoError(t, err)
	assert.Equal(t, models.LetterB, grade.Letter)
	require.NotNil(t, store.saved)
	assert.Equal(t, "grd-new", store.saved.ID)
	assert.False(t, grade.RecordedAt.IsZero())
}

func TestGradeServiceUpsertBoundaryScores(t *testing.T) {
	store := &fakeGradeStore{}
	svc := newGradeService(store)

	cases := []struct {
		score  float64
		letter models.Letter
	}{
		{90, models.LetterA},
		{89.99, models.LetterB},
		{60, models.LetterD},
		{0, models.LetterF},
		{100, models.LetterA},
	}
	for _, tc := range cases {
		grade, err := svc.Upsert(context.Background(), GradeUpsertRequest{
			StudentID: "stu-1",
			CourseID:  "crs-1",
			Score:     tc.score,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.letter, grade.Letter, "score %v", tc.score)
	}
}

func TestGradeServiceUpsertRejectsInvalidScores(t *testing.T) {
	svc := newGradeService(&fakeGradeStore{})

	for _, score := range []float64{-0.01, 100.01, math.NaN(), math.Inf(1)} {
		_, err := svc.Upsert(context.Background(), GradeUpsertRequest{
			StudentID: "stu-1",
			CourseID:  "crs-1",
			Score:     score,
		})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrInvalidScore.Code, appErrors.FromError(err).Code)
	}
}

func TestGradeServiceUpsertValidatesPayload(t *testing.T) {
	svc := newGradeService(&fakeGradeStore{})

	_, err := svc.Upsert(context.Background(), GradeUpsertRequest{CourseID: "crs-1", Score: 80})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGradeServiceListPaginates(t *testing.T) {
	store := &fakeGradeStore{
		grades: []models.GradeRecord{{ID: "grd-1"}, {ID: "grd-2"}},
		total:  45,
	}
	svc := newGradeService(store)

	grades, pagination, err := svc.List(context.Background(), models.GradeFilter{Page: 2, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, grades, 2)
	require.NotNil(t, pagination)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 20, pagination.PerPage)
	assert.Equal(t, 45, pagination.Total)
	assert.Equal(t, 3, pagination.LastPage)
}
