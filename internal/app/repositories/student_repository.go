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

var studentQueryConfig = query.Config{
	Fields: []string{
		"id", "code", "userId", "firstName", "middleName", "lastName", "email",
		"contactNo", "admissionSemesterId", "academicDepartmentId", "createdAt", "updatedAt",
	},
	Columns: map[string]string{
		"id":                   "id",
		"code":                 "code",
		"userId":               "user_id",
		"firstName":            "first_name",
		"middleName":           "middle_name",
		"lastName":             "last_name",
		"email":                "email",
		"contactNo":            "contact_no",
		"admissionSemesterId":  "admission_semester_id",
		"academicDepartmentId": "academic_department_id",
		"createdAt":            "created_at",
		"updatedAt":            "updated_at",
	},
	SearchColumns: []string{"code", "first_name", "last_name", "email"},
	DefaultSort:   "-createdAt",
}

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentColumns = `id, code, user_id, first_name, middle_name, last_name, email,
	contact_no, admission_semester_id, academic_department_id, is_deleted, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID, &s.Code, &s.UserID, &s.Name.FirstName, &s.Name.MiddleName, &s.Name.LastName,
		&s.Email, &s.ContactNo, &s.AdmissionSemesterID, &s.AcademicDepartmentID,
		&s.IsDeleted, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &s, nil
}

// GetByID retrieves a non-deleted student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1 AND is_deleted = FALSE`, id)
	return scanStudent(row)
}

// GetByUserID retrieves the student profile owned by a user account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE user_id = $1 AND is_deleted = FALSE`, userID)
	return scanStudent(row)
}

// List retrieves non-deleted students through the generic list query pipeline
func (r *StudentRepository) List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	b := query.New("students", values, studentQueryConfig).
		Where(squirrel.Eq{"is_deleted": false}).
		Filter().Search().Sort().Paginate().Fields()
	return collectList(ctx, r.db, b)
}

// Update applies only the provided fields
func (r *StudentRepository) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	update := r.sb.Update("students").Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_deleted": false})

	if req.Name != nil {
		update = update.
			Set("first_name", req.Name.FirstName).
			Set("middle_name", req.Name.MiddleName).
			Set("last_name", req.Name.LastName)
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
		return nil, fmt.Errorf("failed to build student update: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}
	return r.GetByID(ctx, id)
}

// SoftDelete flags the student profile and its user account as deleted in
// one transaction.
func (r *StudentRepository) SoftDelete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var userID int64
		err := tx.QueryRow(ctx, `
			UPDATE students SET is_deleted = TRUE, updated_at = NOW()
			WHERE id = $1 AND is_deleted = FALSE
			RETURNING user_id`,
			id).Scan(&userID)
		if err != nil {
			return fmt.Errorf("error deleting student: %w", err)
		}
		_, err = tx.Exec(ctx, `
			UPDATE users SET is_deleted = TRUE, updated_at = NOW() WHERE id = $1`, userID)
		if err != nil {
			return fmt.Errorf("error deleting student user: %w", err)
		}
		return nil
	})
}
