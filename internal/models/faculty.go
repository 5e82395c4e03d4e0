package models

// Faculty is a study-program administration unit (prodi scope).
type Faculty struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Code     string `db:"code" json:"code"`
	IsActive bool   `db:"is_active" json:"is_active"`
}

// Major is a study program within a faculty.
type Major struct {
	ID        string `db:"id" json:"id"`
	FacultyID string `db:"faculty_id" json:"faculty_id"`
	Name      string `db:"name" json:"name"`
	Code      string `db:"code" json:"code"`
	IsActive  bool   `db:"is_active" json:"is_active"`
}
