package models

import "time"

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleFaculty UserRole = "faculty"
	RoleStudent UserRole = "student"
)

// User represents an application user stored in the users table.
// FacultyID/MajorID are set for students and prodi staff.
type User struct {
	ID             string     `db:"id" json:"id"`
	Email          string     `db:"email" json:"email"`
	PasswordHash   string     `db:"password_hash" json:"-"`
	Name           string     `db:"name" json:"name"`
	Role           UserRole   `db:"role" json:"role"`
	FacultyID      *string    `db:"faculty_id" json:"faculty_id,omitempty"`
	MajorID        *string    `db:"major_id" json:"major_id,omitempty"`
	EnrollmentYear *int       `db:"enrollment_year" json:"enrollment_year,omitempty"`
	Active         bool       `db:"active" json:"active"`
	LastLogin      *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// UserFilter captures filtering criteria for listing users.
type UserFilter struct {
	Role      *UserRole
	FacultyID string
	MajorID   string
	Active    *bool
	Search    string
	Page      int
	PageSize  int
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// NewPagination derives listing metadata from page inputs and a total count.
func NewPagination(page, perPage, total int) *Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	lastPage := total / perPage
	if total%perPage != 0 || lastPage == 0 {
		lastPage++
	}
	return &Pagination{CurrentPage: page, PerPage: perPage, Total: total, LastPage: lastPage}
}
