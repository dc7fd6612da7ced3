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

var academicSemesterQueryConfig = query.Config{
	Fields: []string{"id", "name", "year", "code", "startMonth", "endMonth", "createdAt", "updatedAt"},
	Columns: map[string]string{
		"id":         "id",
		"name":       "name",
		"year":       "year",
		"code":       "code",
		"startMonth": "start_month",
		"endMonth":   "end_month",
		"createdAt":  "created_at",
		"updatedAt":  "updated_at",
	},
	SearchColumns: []string{"name", "year"},
	DefaultSort:   "-createdAt",
}

// AcademicSemesterRepository handles database operations for academic semesters
type AcademicSemesterRepository struct {
	db *pgxpool.Pool
}

// NewAcademicSemesterRepository creates a new academic semester repository
func NewAcademicSemesterRepository(db *pgxpool.Pool) *AcademicSemesterRepository {
	return &AcademicSemesterRepository{db: db}
}

// Create inserts a new academic semester
func (r *AcademicSemesterRepository) Create(ctx context.Context, semester *models.AcademicSemester) error {
	query := `
		INSERT INTO academic_semesters (name, year, code, start_month, end_month)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		semester.Name, semester.Year, semester.Code, semester.StartMonth, semester.EndMonth,
	).Scan(&semester.ID, &semester.CreatedAt, &semester.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating academic semester: %w", err)
	}
	return nil
}

// GetByID retrieves an academic semester by ID
func (r *AcademicSemesterRepository) GetByID(ctx context.Context, id int64) (*models.AcademicSemester, error) {
	query := `
		SELECT id, name, year, code, start_month, end_month, created_at, updated_at
		FROM academic_semesters
		WHERE id = $1
	`
	var s models.AcademicSemester
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Year, &s.Code, &s.StartMonth, &s.EndMonth, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving academic semester: %w", err)
	}
	return &s, nil
}

// ExistsByYearAndName checks whether a semester with the same year and name exists
func (r *AcademicSemesterRepository) ExistsByYearAndName(ctx context.Context, year string, name models.SemesterName) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM academic_semesters WHERE year = $1 AND name = $2)`,
		year, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking academic semester existence: %w", err)
	}
	return exists, nil
}

// List retrieves academic semesters through the generic list query pipeline
func (r *AcademicSemesterRepository) List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	b := query.New("academic_semesters", values, academicSemesterQueryConfig).
		Filter().Search().Sort().Paginate().Fields()
	return collectList(ctx, r.db, b)
}

// Update persists changed semester fields
func (r *AcademicSemesterRepository) Update(ctx context.Context, semester *models.AcademicSemester) error {
	query := `
		UPDATE academic_semesters
		SET name = $1, year = $2, code = $3, start_month = $4, end_month = $5, updated_at = NOW()
		WHERE id = $6
	`
	cmdTag, err := r.db.Exec(ctx, query,
		semester.Name, semester.Year, semester.Code, semester.StartMonth, semester.EndMonth, semester.ID)
	if err != nil {
		return fmt.Errorf("error updating academic semester: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
