package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akademika/lms-api/internal/models"
	"github.com/akademika/lms-api/internal/service"
	appErrors "github.com/akademika/lms-api/pkg/errors"
	"github.com/akademika/lms-api/pkg/response"
)

type exportService interface {
	GradeDistributionExport(ctx context.Context, courseID, format string) (*service.ExportResult, error)
	TranscriptExport(ctx context.Context, studentID, format string) (*service.ExportResult, error)
}

// ReportHandler serves downloadable report exports.
type ReportHandler struct {
	service exportService
}

// NewReportHandler constructs the handler.
func NewReportHandler(service exportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GradeDistribution godoc
// @Summary Export per-course grade distribution
// @Tags Reports
// @Produce text/csv
// @Param course_id query string true "Course ID"
// @Param format query string false "csv or pdf (default csv)"
// @Success 200 {file} file
// @Router /reports/grade-distribution [get]
func (h *ReportHandler) GradeDistribution(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	courseID := strings.TrimSpace(c.Query("course_id"))
	format := strings.ToLower(strings.TrimSpace(c.Query("format")))

	result, err := h.service.GradeDistributionExport(c.Request.Context(), courseID, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeDownload(c, result)
}

// Transcript godoc
// @Summary Export a student transcript
// @Tags Reports
// @Produce text/csv
// @Param student_id query string false "Student ID (defaults to the caller for students)"
// @Param format query string false "csv or pdf (default csv)"
// @Success 200 {file} file
// @Router /reports/transcript [get]
func (h *ReportHandler) Transcript(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	studentID := strings.TrimSpace(c.Query("student_id"))
	if claims, ok := currentClaims(c); ok && claims.Role == models.RoleStudent {
		// Students may only export their own transcript.
		studentID = claims.UserID
	}
	format := strings.ToLower(strings.TrimSpace(c.Query("format")))

	result, err := h.service.TranscriptExport(c.Request.Context(), studentID, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeDownload(c, result)
}

func writeDownload(c *gin.Context, result *service.ExportResult) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
