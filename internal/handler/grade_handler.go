package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akademika/lms-api/internal/models"
	"github.com/akademika/lms-api/internal/service"
	appErrors "github.com/akademika/lms-api/pkg/errors"
	"github.com/akademika/lms-api/pkg/response"
)

type gradeService interface {
	List(ctx context.Context, filter models.GradeFilter) ([]models.GradeRecord, *models.Pagination, error)
	Upsert(ctx context.Context, req service.GradeUpsertRequest) (*models.GradeRecord, error)
}

// GradeHandler wires grade listing and recording to HTTP endpoints.
type GradeHandler struct {
	service gradeService
}

// NewGradeHandler constructs the handler.
func NewGradeHandler(service gradeService) *GradeHandler {
	return &GradeHandler{service: service}
}

// List godoc
// @Summary List grade records
// @Tags Grades
// @Produce json
// @Param student_id query string false "Student ID"
// @Param course_id query string false "Course ID"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /grades [get]
func (h *GradeHandler) List(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	filter := models.GradeFilter{
		StudentID:    strings.TrimSpace(c.Query("student_id")),
		CourseID:     strings.TrimSpace(c.Query("course_id")),
		AssignmentID: strings.TrimSpace(c.Query("assignment_id")),
		Page:         parseIntQuery(c, "page", 1),
		PageSize:     parseIntQuery(c, "per_page", 20),
	}
	grades, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, grades, pagination)
}

// Upsert godoc
// @Summary Record or update a grade
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body service.GradeUpsertRequest true "Grade payload"
// @Success 201 {object} response.Envelope
// @Router /grades [post]
func (h *GradeHandler) Upsert(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var req service.GradeUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	grade, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "grade recorded", grade)
}

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
