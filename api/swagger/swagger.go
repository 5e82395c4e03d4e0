package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Akademika LMS API",
        "description": "Academic analytics and dashboard API",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Authentication and token lifecycle"},
        {"name": "Dashboard", "description": "Role scoped dashboards"},
        {"name": "Analytics", "description": "Grade and enrollment analytics"},
        {"name": "Grades", "description": "Grade records"},
        {"name": "Reports", "description": "CSV and PDF exports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate with email and password",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Access and refresh tokens", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"},
                    "403": {"description": "Inactive account"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotate a refresh token",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "Fresh token pair", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Expired or revoked refresh token"}
                }
            }
        },
        "/dashboard/student": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard for the authenticated student",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Student dashboard", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Missing or invalid token"}
                }
            }
        },
        "/dashboard/faculty": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard for the authenticated instructor",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Faculty dashboard", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Missing or invalid token"}
                }
            }
        },
        "/dashboard/prodi": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Study-program dashboard for a faculty",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "faculty_id", "in": "query", "type": "string", "description": "Defaults to the caller's faculty"}
                ],
                "responses": {
                    "200": {"description": "Prodi dashboard", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing faculty_id"},
                    "404": {"description": "Unknown faculty"}
                }
            }
        },
        "/dashboard/management": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Institution wide dashboard",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Management dashboard", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Admin role required"}
                }
            }
        },
        "/analytics/grade-distribution": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Letter grade distribution for a course",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "course_id", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Distribution report", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing course_id"},
                    "404": {"description": "Unknown course"}
                }
            }
        },
        "/analytics/enrollment-trends": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Enrollment counts bucketed by period",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "period", "in": "query", "type": "string", "enum": ["monthly", "semesterly", "yearly"]},
                    {"name": "faculty_id", "in": "query", "type": "string"},
                    {"name": "major_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Trend points", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unsupported period"}
                }
            }
        },
        "/analytics/faculty-enrollment": {
            "get": {
                "tags": ["Analytics"],
                "summary": "Enrollment summary per faculty",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Faculty summaries", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/grades": {
            "get": {
                "tags": ["Grades"],
                "summary": "List grade records",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "student_id", "in": "query", "type": "string"},
                    {"name": "course_id", "in": "query", "type": "string"},
                    {"name": "assignment_id", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "per_page", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Paginated grades", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Grades"],
                "summary": "Record or replace a grade",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GradeUpsertRequest"}}
                ],
                "responses": {
                    "201": {"description": "Grade recorded", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload"},
                    "422": {"description": "Score outside 0-100"}
                }
            }
        },
        "/reports/grade-distribution": {
            "get": {
                "tags": ["Reports"],
                "summary": "Export a course grade distribution",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "course_id", "in": "query", "type": "string", "required": true},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Missing course_id or bad format"}
                }
            }
        },
        "/reports/transcript": {
            "get": {
                "tags": ["Reports"],
                "summary": "Export a student transcript",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "student_id", "in": "query", "type": "string", "description": "Ignored for student callers"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Missing student_id"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "RefreshTokenRequest": {
            "type": "object",
            "required": ["refresh_token"],
            "properties": {
                "refresh_token": {"type": "string"}
            }
        },
        "GradeUpsertRequest": {
            "type": "object",
            "required": ["student_id", "course_id", "score"],
            "properties": {
                "student_id": {"type": "string"},
                "course_id": {"type": "string"},
                "assignment_id": {"type": "string"},
                "score": {"type": "number"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "current_page": {"type": "integer"},
                "per_page": {"type": "integer"},
                "total": {"type": "integer"},
                "last_page": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
