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

var academicFacultyQueryConfig = query.Config{
	Fields: []string{"id", "name", "createdAt", "updatedAt"},
	Columns: map[string]string{
		"id":        "id",
		"name":      "name",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	},
	SearchColumns: []string{"name"},
	DefaultSort:   "-createdAt",
}

// AcademicFacultyRepository handles database operations for academic faculties
type AcademicFacultyRepository struct {
	db *pgxpool.Pool
}

// NewAcademicFacultyRepository creates a new academic faculty repository
func NewAcademicFacultyRepository(db *pgxpool.Pool) *AcademicFacultyRepository {
	return &AcademicFacultyRepository{db: db}
}

// Create inserts a new academic faculty
func (r *AcademicFacultyRepository) Create(ctx context.Context, faculty *models.AcademicFaculty) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO academic_faculties (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at`,
		faculty.Name,
	).Scan(&faculty.ID, &faculty.CreatedAt, &faculty.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating academic faculty: %w", err)
	}
	return nil
}

// GetByID retrieves an academic faculty by ID
func (r *AcademicFacultyRepository) GetByID(ctx context.Context, id int64) (*models.AcademicFaculty, error) {
	var f models.AcademicFaculty
	err := r.db.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM academic_faculties
		WHERE id = $1`,
		id,
	).Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving academic faculty: %w", err)
	}
	return &f, nil
}

// ExistsByName checks whether an academic faculty with the name exists
func (r *AcademicFacultyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM academic_faculties WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking academic faculty existence: %w", err)
	}
	return exists, nil
}

// List retrieves academic faculties through the generic list query pipeline
func (r *AcademicFacultyRepository) List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	b := query.New("academic_faculties", values, academicFacultyQueryConfig).
		Filter().Search().Sort().Paginate().Fields()
	return collectList(ctx, r.db, b)
}

// Update renames an academic faculty
func (r *AcademicFacultyRepository) Update(ctx context.Context, faculty *models.AcademicFaculty) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE academic_faculties SET name = $1, updated_at = NOW() WHERE id = $2`,
		faculty.Name, faculty.ID)
	if err != nil {
		return fmt.Errorf("error updating academic faculty: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
