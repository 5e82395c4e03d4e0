// Package aggregate computes academic summary statistics from in-memory
// record snapshots. Every function is a deterministic, side-effect-free
// transformation; data acquisition happens in the calling layer.
package aggregate

import (
	"math"

	"github.com/akademika/lms-api/internal/gradescale"
	"github.com/akademika/lms-api/internal/models"
	appErrors "github.com/akademika/lms-api/pkg/errors"
)

// round2 applies half-up rounding to two decimal places. Scores and GPA
// points are non-negative, so math.Round behaves as half-up here.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeGPA averages the GPA point value of every record, rounded to two
// decimals. An empty slice yields 0.0: a student with no grades has GPA 0.0,
// which is not an error. Each record contributes once, so several records in
// the same course (one per assignment) each count individually.
func ComputeGPA(records []models.GradeRecord) (float64, error) {
	if len(records) == 0 {
		return 0.0, nil
	}
	total := 0.0
	for _, r := range records {
		point, err := gradescale.PointFor(r.Score)
		if err != nil {
			return 0, err
		}
		total += point
	}
	return round2(total / float64(len(records))), nil
}

// CountDistinctCourses counts unique course ids across grade records.
// Use this, not len(records), when reporting "total courses".
func CountDistinctCourses(records []models.GradeRecord) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.CourseID] = struct{}{}
	}
	return len(seen)
}

// CountEnrolledCourses counts unique course ids with an enrolled status.
func CountEnrolledCourses(enrollments []models.EnrollmentRecord) int {
	seen := make(map[string]struct{}, len(enrollments))
	for _, e := range enrollments {
		if e.Status == models.EnrollmentStatusEnrolled {
			seen[e.CourseID] = struct{}{}
		}
	}
	return len(seen)
}

// ComputeDistribution buckets records by letter grade. All five buckets are
// present even at zero. An out-of-range score surfaces as InvalidScore,
// never silently clamped into a bucket.
func ComputeDistribution(records []models.GradeRecord) (models.GradeDistribution, error) {
	dist := models.GradeDistribution{}
	for _, r := range records {
		letter, err := gradescale.LetterFor(r.Score)
		if err != nil {
			return models.GradeDistribution{}, err
		}
		switch letter {
		case models.LetterA:
			dist.A++
		case models.LetterB:
			dist.B++
		case models.LetterC:
			dist.C++
		case models.LetterD:
			dist.D++
		case models.LetterF:
			dist.F++
		}
	}
	dist.Total = len(records)
	return dist, nil
}

// ComputePercentages expresses the distribution as per-bucket percentages
// rounded to two decimals. A zero total yields all-zero percentages.
func ComputePercentages(dist models.GradeDistribution) models.GradePercentages {
	if dist.Total == 0 {
		return models.GradePercentages{}
	}
	pct := func(count int) float64 {
		return round2(float64(count) / float64(dist.Total) * 100)
	}
	return models.GradePercentages{
		A: pct(dist.A),
		B: pct(dist.B),
		C: pct(dist.C),
		D: pct(dist.D),
		F: pct(dist.F),
	}
}

// HighestGrade returns the maximum score. Empty input is EmptyInput, which
// callers that want a null field must map explicitly (distinct from GPA's
// 0.0-for-empty convention).
func HighestGrade(records []models.GradeRecord) (float64, error) {
	if len(records) == 0 {
		return 0, appErrors.ErrEmptyInput
	}
	max := records[0].Score
	for _, r := range records[1:] {
		if r.Score > max {
			max = r.Score
		}
	}
	return max, nil
}

// LowestGrade returns the minimum score; EmptyInput on an empty slice.
func LowestGrade(records []models.GradeRecord) (float64, error) {
	if len(records) == 0 {
		return 0, appErrors.ErrEmptyInput
	}
	min := records[0].Score
	for _, r := range records[1:] {
		if r.Score < min {
			min = r.Score
		}
	}
	return min, nil
}

// ComputeTotalSKS sums credit hours over enrollments with enrolled status.
// Dropped, pending, rejected and completed rows do not count toward the
// current credit load.
func ComputeTotalSKS(enrollments []models.EnrollmentRecord) int {
	total := 0
	for _, e := range enrollments {
		if e.Status == models.EnrollmentStatusEnrolled {
			total += e.CreditHours
		}
	}
	return total
}

// AverageScore is the direct mean of scores rounded to two decimals, 0 for
// empty input. This is not GPA-weighted; management stats report it as-is.
func AverageScore(records []models.GradeRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range records {
		total += r.Score
	}
	return round2(total / float64(len(records)))
}
