// Package gradescale maps numeric scores to letter grades and GPA points.
// Letter and point always come from the same boundary table so a displayed
// letter can never disagree with its GPA contribution.
package gradescale

import (
	"math"

	"github.com/akademika/lms-api/internal/models"
	appErrors "github.com/akademika/lms-api/pkg/errors"
)

// band is one row of the grading scale. Bounds are inclusive at the bottom.
type band struct {
	min    float64
	letter models.Letter
	point  float64
}

// scale is ordered from highest band to lowest.
var scale = []band{
	{90, models.LetterA, 4.0},
	{80, models.LetterB, 3.0},
	{70, models.LetterC, 2.0},
	{60, models.LetterD, 1.0},
	{0, models.LetterF, 0.0},
}

// Valid reports whether the score is a finite number within [0,100].
func Valid(score float64) bool {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return false
	}
	return score >= 0 && score <= 100
}

// LetterFor returns the letter grade for a score.
func LetterFor(score float64) (models.Letter, error) {
	b, err := bandFor(score)
	if err != nil {
		return "", err
	}
	return b.letter, nil
}

// PointFor returns the GPA point value (0.0-4.0) for a score.
func PointFor(score float64) (float64, error) {
	b, err := bandFor(score)
	if err != nil {
		return 0, err
	}
	return b.point, nil
}

func bandFor(score float64) (band, error) {
	if !Valid(score) {
		return band{}, appErrors.ErrInvalidScore
	}
	for _, b := range scale {
		if score >= b.min {
			return b, nil
		}
	}
	return scale[len(scale)-1], nil
}
