package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	appErrors "github.com/akademika/lms-api/pkg/errors"

	"github.com/akademika/lms-api/internal/models"
)

// FacultyRepository reads faculty and major reference data.
type FacultyRepository struct {
	db *sqlx.DB
}

// NewFacultyRepository constructs the repository.
func NewFacultyRepository(db *sqlx.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// FindByID returns one faculty or a not found error.
func (r *FacultyRepository) FindByID(ctx context.Context, id string) (*models.Faculty, error) {
	var faculty models.Faculty
	err := r.db.GetContext(ctx, &faculty, "SELECT id, name, code, is_active FROM faculties WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find faculty: %w", err)
	}
	return &faculty, nil
}

// ListAll returns every faculty.
func (r *FacultyRepository) ListAll(ctx context.Context) ([]models.Faculty, error) {
	var faculties []models.Faculty
	if err := r.db.SelectContext(ctx, &faculties, "SELECT id, name, code, is_active FROM faculties ORDER BY name"); err != nil {
		return nil, fmt.Errorf("list faculties: %w", err)
	}
	return faculties, nil
}

// ListMajorsByFaculty returns the majors under one faculty.
func (r *FacultyRepository) ListMajorsByFaculty(ctx context.Context, facultyID string) ([]models.Major, error) {
	var majors []models.Major
	if err := r.db.SelectContext(ctx, &majors, "SELECT id, faculty_id, name, code, is_active FROM majors WHERE faculty_id = $1 ORDER BY name", facultyID); err != nil {
		return nil, fmt.Errorf("list majors by faculty: %w", err)
	}
	return majors, nil
}

// ListAllMajors returns every major.
func (r *FacultyRepository) ListAllMajors(ctx context.Context) ([]models.Major, error) {
	var majors []models.Major
	if err := r.db.SelectContext(ctx, &majors, "SELECT id, faculty_id, name, code, is_active FROM majors ORDER BY name"); err != nil {
		return nil, fmt.Errorf("list all majors: %w", err)
	}
	return majors, nil
}
