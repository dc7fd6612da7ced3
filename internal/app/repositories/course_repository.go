package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/pkg/query"
)

var courseQueryConfig = query.Config{
	Fields: []string{"id", "title", "prefix", "code", "credits", "createdAt", "updatedAt"},
	Columns: map[string]string{
		"id":        "id",
		"title":     "title",
		"prefix":    "prefix",
		"code":      "code",
		"credits":   "credits",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	},
	SearchColumns: []string{"title", "prefix"},
	DefaultSort:   "-createdAt",
}

// CourseRepository handles database operations for catalog courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a new catalog course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (title, prefix, code, credits)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		course.Title, course.Prefix, course.Code, course.Credits,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID. Soft-deleted courses are not returned.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	var c models.Course
	err := r.db.QueryRow(ctx, `
		SELECT id, title, prefix, code, credits, is_deleted, created_at, updated_at
		FROM courses
		WHERE id = $1 AND is_deleted = FALSE`,
		id,
	).Scan(&c.ID, &c.Title, &c.Prefix, &c.Code, &c.Credits, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &c, nil
}

// List retrieves non-deleted courses through the generic list query pipeline
func (r *CourseRepository) List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	b := query.New("courses", values, courseQueryConfig).
		Where(squirrel.Eq{"is_deleted": false}).
		Filter().Search().Sort().Paginate().Fields()
	return collectList(ctx, r.db, b)
}

// Update persists changed course fields
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE courses
		SET title = $1, prefix = $2, code = $3, credits = $4, updated_at = NOW()
		WHERE id = $5 AND is_deleted = FALSE`,
		course.Title, course.Prefix, course.Code, course.Credits, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SoftDelete flags a course as deleted without removing the row
func (r *CourseRepository) SoftDelete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE courses SET is_deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND is_deleted = FALSE`,
		id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
