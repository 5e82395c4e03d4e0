package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akademika/lms-api/internal/dto"
	"github.com/akademika/lms-api/internal/middleware"
	"github.com/akademika/lms-api/internal/models"
	appErrors "github.com/akademika/lms-api/pkg/errors"
)

type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
	Error   map[string]interface{} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

type fakeDashboardSrv struct {
	student    *dto.StudentDashboardResponse
	faculty    *dto.FacultyDashboardResponse
	prodi      *dto.ProdiDashboardResponse
	management *dto.ManagementDashboardResponse
	hit        bool
	err        error

	lastStudentID string
	lastFacultyID string
}

func (f *fakeDashboardSrv) Student(_ context.Context, studentID string) (*dto.StudentDashboardResponse, bool, error) {
	f.lastStudentID = studentID
	return f.student, f.hit, f.err
}

func (f *fakeDashboardSrv) Faculty(context.Context, string) (*dto.FacultyDashboardResponse, bool, error) {
	return f.faculty, f.hit, f.err
}

func (f *fakeDashboardSrv) Prodi(_ context.Context, facultyID string) (*dto.ProdiDashboardResponse, bool, error) {
	f.lastFacultyID = facultyID
	if facultyID == "" {
		return nil, false, appErrors.Clone(appErrors.ErrMissingParameter, "faculty_id is required")
	}
	return f.prodi, f.hit, f.err
}

func (f *fakeDashboardSrv) Management(context.Context) (*dto.ManagementDashboardResponse, bool, error) {
	return f.management, f.hit, f.err
}

func testContext(t *testing.T, method, target string, claims *models.JWTClaims) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, nil)
	if claims != nil {
		c.Set(middleware.ContextUserKey, claims)
	}
	return c, rec
}

func TestDashboardHandlerStudentUsesClaims(t *testing.T) {
	srv := &fakeDashboardSrv{student: &dto.StudentDashboardResponse{StudentID: "stu-1", GPA: 3.5}}
	handler := NewDashboardHandler(srv)

	c, rec := testContext(t, http.MethodGet, "/dashboard/student", &models.JWTClaims{UserID: "stu-1", Role: models.RoleStudent})
	handler.Student(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "stu-1", srv.lastStudentID)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, 3.5, env.Data["gpa"])
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
}

func TestDashboardHandlerStudentRequiresAuth(t *testing.T) {
	handler := NewDashboardHandler(&fakeDashboardSrv{})

	c, rec := testContext(t, http.MethodGet, "/dashboard/student", nil)
	handler.Student(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardHandlerStudentCacheHitHeader(t *testing.T) {
	srv := &fakeDashboardSrv{student: &dto.StudentDashboardResponse{StudentID: "stu-1"}, hit: true}
	handler := NewDashboardHandler(srv)

	c, rec := testContext(t, http.MethodGet, "/dashboard/student", &models.JWTClaims{UserID: "stu-1"})
	handler.Student(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
}

func TestDashboardHandlerProdiMissingFaculty(t *testing.T) {
	handler := NewDashboardHandler(&fakeDashboardSrv{})

	c, rec := testContext(t, http.MethodGet, "/dashboard/prodi", &models.JWTClaims{UserID: "adm-1", Role: models.RoleAdmin})
	handler.Prodi(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, appErrors.ErrMissingParameter.Code, env.Error["code"])
}

func TestDashboardHandlerProdiFallsBackToClaimFaculty(t *testing.T) {
	srv := &fakeDashboardSrv{prodi: &dto.ProdiDashboardResponse{FacultyID: "fac-1"}}
	handler := NewDashboardHandler(srv)

	c, rec := testContext(t, http.MethodGet, "/dashboard/prodi", &models.JWTClaims{UserID: "staff-1", FacultyID: "fac-1"})
	handler.Prodi(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fac-1", srv.lastFacultyID)
}

func TestDashboardHandlerManagement(t *testing.T) {
	srv := &fakeDashboardSrv{management: &dto.ManagementDashboardResponse{Role: "management"}}
	handler := NewDashboardHandler(srv)

	c, rec := testContext(t, http.MethodGet, "/dashboard/management", &models.JWTClaims{UserID: "adm-1", Role: models.RoleAdmin})
	handler.Management(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "management", env.Data["role"])
}
