package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/pkg/query"
)

var academicDepartmentQueryConfig = query.Config{
	Fields: []string{"id", "name", "academicFacultyId", "createdAt", "updatedAt"},
	Columns: map[string]string{
		"id":                "id",
		"name":              "name",
		"academicFacultyId": "academic_faculty_id",
		"createdAt":         "created_at",
		"updatedAt":         "updated_at",
	},
	SearchColumns: []string{"name"},
	DefaultSort:   "-createdAt",
}

// AcademicDepartmentRepository handles database operations for academic departments
type AcademicDepartmentRepository struct {
	db *pgxpool.Pool
}

// NewAcademicDepartmentRepository creates a new academic department repository
func NewAcademicDepartmentRepository(db *pgxpool.Pool) *AcademicDepartmentRepository {
	return &AcademicDepartmentRepository{db: db}
}

// Create inserts a new academic department
func (r *AcademicDepartmentRepository) Create(ctx context.Context, dept *models.AcademicDepartment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO academic_departments (name, academic_faculty_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`,
		dept.Name, dept.AcademicFacultyID,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating academic department: %w", err)
	}
	return nil
}

// GetByID retrieves an academic department with its owning faculty
func (r *AcademicDepartmentRepository) GetByID(ctx context.Context, id int64) (*models.AcademicDepartment, error) {
	var d models.AcademicDepartment
	var f models.AcademicFaculty
	err := r.db.QueryRow(ctx, `
		SELECT d.id, d.name, d.academic_faculty_id, d.created_at, d.updated_at,
		       f.id, f.name, f.created_at, f.updated_at
		FROM academic_departments d
		JOIN academic_faculties f ON d.academic_faculty_id = f.id
		WHERE d.id = $1`,
		id,
	).Scan(
		&d.ID, &d.Name, &d.AcademicFacultyID, &d.CreatedAt, &d.UpdatedAt,
		&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving academic department: %w", err)
	}
	d.AcademicFaculty = &f
	return &d, nil
}

// ExistsByName checks whether a department with the name exists
func (r *AcademicDepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM academic_departments WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking academic department existence: %w", err)
	}
	return exists, nil
}

// BelongsToFaculty checks whether the department references the given faculty
func (r *AcademicDepartmentRepository) BelongsToFaculty(ctx context.Context, deptID, facultyID int64) (bool, error) {
	var belongs bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM academic_departments WHERE id = $1 AND academic_faculty_id = $2)`,
		deptID, facultyID).Scan(&belongs)
	if err != nil {
		return false, fmt.Errorf("error checking department faculty membership: %w", err)
	}
	return belongs, nil
}

// List retrieves academic departments through the generic list query pipeline
func (r *AcademicDepartmentRepository) List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	b := query.New("academic_departments", values, academicDepartmentQueryConfig).
		Filter().Search().Sort().Paginate().Fields()
	return collectList(ctx, r.db, b)
}

// Update persists changed department fields
func (r *AcademicDepartmentRepository) Update(ctx context.Context, dept *models.AcademicDepartment) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE academic_departments
		SET name = $1, academic_faculty_id = $2, updated_at = NOW()
		WHERE id = $3`,
		dept.Name, dept.AcademicFacultyID, dept.ID)
	if err != nil {
		return fmt.Errorf("error updating academic department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
