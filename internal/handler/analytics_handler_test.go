package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akademika/lms-api/internal/dto"
	"github.com/akademika/lms-api/internal/models"
	appErrors "github.com/akademika/lms-api/pkg/errors"
)

type fakeAnalyticsSrv struct {
	distribution *dto.GradeDistributionReport
	trends       *dto.EnrollmentTrends
	faculty      *dto.FacultyEnrollmentReport
	hit          bool

	lastCourseID string
	lastPeriod   models.TrendPeriod
}

func (f *fakeAnalyticsSrv) GradeDistribution(_ context.Context, courseID string) (*dto.GradeDistributionReport, bool, error) {
	f.lastCourseID = courseID
	if courseID == "" {
		return nil, false, appErrors.Clone(appErrors.ErrMissingParameter, "course_id is required")
	}
	return f.distribution, f.hit, nil
}

func (f *fakeAnalyticsSrv) EnrollmentTrends(_ context.Context, period models.TrendPeriod, _, _ string) (*dto.EnrollmentTrends, bool, error) {
	f.lastPeriod = period
	if period != "" && period != models.TrendMonthly && period != models.TrendSemesterly && period != models.TrendYearly {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "period must be one of monthly, semesterly, yearly")
	}
	return f.trends, f.hit, nil
}

func (f *fakeAnalyticsSrv) FacultyEnrollment(context.Context) (*dto.FacultyEnrollmentReport, bool, error) {
	return f.faculty, f.hit, nil
}

func TestAnalyticsHandlerGradeDistribution(t *testing.T) {
	srv := &fakeAnalyticsSrv{distribution: &dto.GradeDistributionReport{
		CourseID:     "crs-1",
		TotalGrades:  3,
		Distribution: models.GradeDistribution{A: 1, B: 1, C: 1, Total: 3},
	}}
	handler := NewAnalyticsHandler(srv)

	c, rec := testContext(t, http.MethodGet, "/analytics/grade-distribution?course_id=crs-1", nil)
	handler.GradeDistribution(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "crs-1", srv.lastCourseID)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "crs-1", env.Data["course_id"])
}

func TestAnalyticsHandlerGradeDistributionMissingCourse(t *testing.T) {
	handler := NewAnalyticsHandler(&fakeAnalyticsSrv{})

	c, rec := testContext(t, http.MethodGet, "/analytics/grade-distribution", nil)
	handler.GradeDistribution(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, appErrors.ErrMissingParameter.Code, env.Error["code"])
}

func TestAnalyticsHandlerEnrollmentTrendsInvalidPeriod(t *testing.T) {
	handler := NewAnalyticsHandler(&fakeAnalyticsSrv{})

	c, rec := testContext(t, http.MethodGet, "/analytics/enrollment-trends?period=weekly", nil)
	handler.EnrollmentTrends(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsHandlerEnrollmentTrends(t *testing.T) {
	srv := &fakeAnalyticsSrv{trends: &dto.EnrollmentTrends{
		Period:           models.TrendMonthly,
		TotalEnrollments: 25,
	}}
	handler := NewAnalyticsHandler(srv)

	c, rec := testContext(t, http.MethodGet, "/analytics/enrollment-trends?period=monthly", nil)
	handler.EnrollmentTrends(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.TrendMonthly, srv.lastPeriod)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, float64(25), env.Data["total_enrollments"])
}

func TestAnalyticsHandlerFacultyEnrollment(t *testing.T) {
	srv := &fakeAnalyticsSrv{faculty: &dto.FacultyEnrollmentReport{TotalFaculties: 2}}
	handler := NewAnalyticsHandler(srv)

	c, rec := testContext(t, http.MethodGet, "/analytics/faculty-enrollment", nil)
	handler.FacultyEnrollment(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, float64(2), env.Data["total_faculties"])
}
