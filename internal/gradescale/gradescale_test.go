package gradescale

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akademika/lms-api/internal/models"
	appErrors "github.com/akademika/lms-api/pkg/errors"
)

func TestLetterForBoundaries(t *testing.T) {
	cases := []struct {
		score  float64
		letter models.Letter
	}{
		{100, models.LetterA},
		{90, models.LetterA},
		{89.99, models.LetterB},
		{80, models.LetterB},
		{79.99, models.LetterC},
		{70, models.LetterC},
		{69.99, models.LetterD},
		{60, models.LetterD},
		{59.99, models.LetterF},
		{0, models.LetterF},
	}
	for _, tc := range cases {
		letter, err := LetterFor(tc.score)
		require.NoError(t, err, "score %v", tc.score)
		assert.Equal(t, tc.letter, letter, "score %v", tc.score)
	}
}

func TestLetterAndPointComeFromSameBand(t *testing.T) {
	points := map[models.Letter]float64{
		models.LetterA: 4.0,
		models.LetterB: 3.0,
		models.LetterC: 2.0,
		models.LetterD: 1.0,
		models.LetterF: 0.0,
	}
	for score := 0.0; score <= 100.0; score += 0.25 {
		letter, err := LetterFor(score)
		require.NoError(t, err)
		point, err := PointFor(score)
		require.NoError(t, err)
		assert.Equal(t, points[letter], point, "score %v", score)
	}
}

func TestInvalidScoresRejected(t *testing.T) {
	for _, score := range []float64{-0.01, 100.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := LetterFor(score)
		require.Error(t, err)
		var appErr *appErrors.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrInvalidScore.Code, appErr.Code)

		_, err = PointFor(score)
		require.Error(t, err)
	}
}
