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
	"github.com/tanvir/campushub/internal/app/models/dto"
	"github.com/tanvir/campushub/internal/db"
	"github.com/tanvir/campushub/internal/pkg/query"
)

var facultyQueryConfig = query.Config{
	Fields: []string{
		"id", "code", "userId", "firstName", "middleName", "lastName", "designation",
		"email", "contactNo", "academicDepartmentId", "createdAt", "updatedAt",
	},
	Columns: map[string]string{
		"id":                   "id",
		"code":                 "code",
		"userId":               "user_id",
		"firstName":            "first_name",
		"middleName":           "middle_name",
		"lastName":             "last_name",
		"designation":          "designation",
		"email":                "email",
		"contactNo":            "contact_no",
		"academicDepartmentId": "academic_department_id",
		"createdAt":            "created_at",
		"updatedAt":            "updated_at",
	},
	SearchColumns: []string{"code", "first_name", "last_name", "email", "designation"},
	DefaultSort:   "-createdAt",
}

// FacultyRepository handles database operations for faculty member profiles
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const facultyColumns = `id, code, user_id, first_name, middle_name, last_name, designation,
	email, contact_no, academic_department_id, is_deleted, created_at, updated_at`

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	var f models.Faculty
	err := row.Scan(
		&f.ID, &f.Code, &f.UserID, &f.Name.FirstName, &f.Name.MiddleName, &f.Name.LastName,
		&f.Designation, &f.Email, &f.ContactNo, &f.AcademicDepartmentID,
		&f.IsDeleted, &f.CreatedAt, &f.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return &f, nil
}

// GetByID retrieves a non-deleted faculty member by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+facultyColumns+` FROM faculties WHERE id = $1 AND is_deleted = FALSE`, id)
	return scanFaculty(row)
}

// GetByUserID retrieves the faculty profile owned by a user account
func (r *FacultyRepository) GetByUserID(ctx context.Context, userID int64) (*models.Faculty, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+facultyColumns+` FROM faculties WHERE user_id = $1 AND is_deleted = FALSE`, userID)
	return scanFaculty(row)
}

// List retrieves non-deleted faculty members through the generic list query pipeline
func (r *FacultyRepository) List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	b := query.New("faculties", values, facultyQueryConfig).
		Where(squirrel.Eq{"is_deleted": false}).
		Filter().Search().Sort().Paginate().Fields()
	return collectList(ctx, r.db, b)
}

// Update applies only the provided fields
func (r *FacultyRepository) Update(ctx context.Context, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	update := r.sb.Update("faculties").Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_deleted": false})

	if req.Name != nil {
		update = update.
			Set("first_name", req.Name.FirstName).
			Set("middle_name", req.Name.MiddleName).
			Set("last_name", req.Name.LastName)
	}
	if req.Designation != nil {
		update = update.Set("designation", *req.Designation)
	}
	if req.Email != nil {
		update = update.Set("email", *req.Email)
	}
	if req.ContactNo != nil {
		update = update.Set("contact_no", *req.ContactNo)
	}
	if req.AcademicDepartmentID != nil {
		update = update.Set("academic_department_id", *req.AcademicDepartmentID)
	}

	sqlStr, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build faculty update: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error updating faculty: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return r.GetByID(ctx, id)
}

// SoftDelete flags the faculty profile and its user account as deleted in
// one transaction.
func (r *FacultyRepository) SoftDelete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var userID int64
		err := tx.QueryRow(ctx, `
			UPDATE faculties SET is_deleted = TRUE, updated_at = NOW()
			WHERE id = $1 AND is_deleted = FALSE
			RETURNING user_id`,
			id).Scan(&userID)
		if err != nil {
			return fmt.Errorf("error deleting faculty: %w", err)
		}
		_, err = tx.Exec(ctx, `
			UPDATE users SET is_deleted = TRUE, updated_at = NOW() WHERE id = $1`, userID)
		if err != nil {
			return fmt.Errorf("error deleting faculty user: %w", err)
		}
		return nil
	})
}
