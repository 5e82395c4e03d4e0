package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akademika/lms-api/internal/dto"
	"github.com/akademika/lms-api/internal/middleware"
	"github.com/akademika/lms-api/internal/models"
	appErrors "github.com/akademika/lms-api/pkg/errors"
	"github.com/akademika/lms-api/pkg/response"
)

type dashboardService interface {
	Student(ctx context.Context, studentID string) (*dto.StudentDashboardResponse, bool, error)
	Faculty(ctx context.Context, instructorID string) (*dto.FacultyDashboardResponse, bool, error)
	Prodi(ctx context.Context, facultyID string) (*dto.ProdiDashboardResponse, bool, error)
	Management(ctx context.Context) (*dto.ManagementDashboardResponse, bool, error)
}

// DashboardHandler wires dashboard service to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func currentClaims(c *gin.Context) (*models.JWTClaims, bool) {
	claimsValue, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil, false
	}
	claims, ok := claimsValue.(*models.JWTClaims)
	return claims, ok
}

func setCacheHeader(c *gin.Context, hit bool) {
	if hit {
		c.Header("X-Cache", "HIT")
		return
	}
	c.Header("X-Cache", "MISS")
}

// Student godoc
// @Summary Student academic dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/student [get]
func (h *DashboardHandler) Student(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	summary, cacheHit, err := h.service.Student(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	setCacheHeader(c, cacheHit)
	response.JSON(c, http.StatusOK, "student dashboard", summary, nil)
}

// Faculty godoc
// @Summary Instructor teaching dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/faculty [get]
func (h *DashboardHandler) Faculty(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	claims, ok := currentClaims(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	summary, cacheHit, err := h.service.Faculty(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	setCacheHeader(c, cacheHit)
	response.JSON(c, http.StatusOK, "faculty dashboard", summary, nil)
}

// Prodi godoc
// @Summary Study program dashboard
// @Tags Dashboard
// @Produce json
// @Param faculty_id query string true "Faculty ID"
// @Success 200 {object} response.Envelope
// @Router /dashboard/prodi [get]
func (h *DashboardHandler) Prodi(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	facultyID := strings.TrimSpace(c.Query("faculty_id"))
	if facultyID == "" {
		if claims, ok := currentClaims(c); ok {
			facultyID = claims.FacultyID
		}
	}
	summary, cacheHit, err := h.service.Prodi(c.Request.Context(), facultyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	setCacheHeader(c, cacheHit)
	response.JSON(c, http.StatusOK, "prodi dashboard", summary, nil)
}

// Management godoc
// @Summary System-wide management dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/management [get]
func (h *DashboardHandler) Management(c *gin.Context) {
	if h.service == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	summary, cacheHit, err := h.service.Management(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	setCacheHeader(c, cacheHit)
	response.JSON(c, http.StatusOK, "management dashboard", summary, nil)
}
