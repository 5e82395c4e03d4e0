package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akademika/lms-api/internal/dto"
	"github.com/akademika/lms-api/internal/models"
	appErrors "github.com/akademika/lms-api/pkg/errors"
	"github.com/akademika/lms-api/pkg/response"
)

type analyticsService interface {
	GradeDistribution(ctx context.Context, courseID string) (*dto.GradeDistributionReport, bool, error)
	EnrollmentTrends(ctx context.Context, period models.TrendPeriod, facultyID, majorID string) (*dto.EnrollmentTrends, bool, error)
	FacultyEnrollment(ctx context.Context) (*dto.FacultyEnrollmentReport, bool, error)
}

// AnalyticsHandler wires analytics service to HTTP endpoints.
type AnalyticsHandler struct {
	service analyticsService
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(service analyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GradeDistribution godoc
// @Summary Per-course grade distribution
// @Tags Analytics
// @Produce json
// @Param course_id query string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /analytics/grade-distribution [get]
func (h *AnalyticsHandler) GradeDistribution(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	courseID := strings.TrimSpace(c.Query("course_id"))
	report, cacheHit, err := h.service.GradeDistribution(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	setCacheHeader(c, cacheHit)
	response.JSON(c, http.StatusOK, "grade distribution", report, nil)
}

// EnrollmentTrends godoc
// @Summary Enrollment trends grouped by period
// @Tags Analytics
// @Produce json
// @Param period query string false "monthly, semesterly or yearly"
// @Param faculty_id query string false "Faculty ID"
// @Param major_id query string false "Major ID"
// @Success 200 {object} response.Envelope
// @Router /analytics/enrollment-trends [get]
func (h *AnalyticsHandler) EnrollmentTrends(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	period := models.TrendPeriod(strings.TrimSpace(c.Query("period")))
	facultyID := strings.TrimSpace(c.Query("faculty_id"))
	majorID := strings.TrimSpace(c.Query("major_id"))
	report, cacheHit, err := h.service.EnrollmentTrends(c.Request.Context(), period, facultyID, majorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	setCacheHeader(c, cacheHit)
	response.JSON(c, http.StatusOK, "enrollment trends", report, nil)
}

// FacultyEnrollment godoc
// @Summary Enrollment volume per faculty
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/faculty-enrollment [get]
func (h *AnalyticsHandler) FacultyEnrollment(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	report, cacheHit, err := h.service.FacultyEnrollment(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	setCacheHeader(c, cacheHit)
	response.JSON(c, http.StatusOK, "faculty enrollment", report, nil)
}
