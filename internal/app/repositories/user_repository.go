package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/db"
)

// UserRepository handles database operations for authentication identities
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// LastCodeByRole returns the generated code of the most recently created
// user of the role, or "" when none exists. Feeds the sequential ID
// generator; uniqueness is still guarded by the users.code constraint.
func (r *UserRepository) LastCodeByRole(ctx context.Context, role models.Role) (string, error) {
	var code string
	err := r.db.QueryRow(ctx, `
		SELECT code FROM users
		WHERE role = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
		role).Scan(&code)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error retrieving last user code: %w", err)
	}
	return code, nil
}

// GetByID retrieves a user by primary key
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getBy(ctx, `id = $1`, id)
}

// GetByCode retrieves a user by generated code
func (r *UserRepository) GetByCode(ctx context.Context, code string) (*models.User, error) {
	return r.getBy(ctx, `code = $1`, code)
}

func (r *UserRepository) getBy(ctx context.Context, cond string, arg interface{}) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, code, role, password, needs_password_change, status, is_deleted, created_at, updated_at
		FROM users
		WHERE `+cond,
		arg,
	).Scan(&u.ID, &u.Code, &u.Role, &u.Password, &u.NeedsPasswordChange, &u.Status, &u.IsDeleted, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return &u, nil
}

func insertUser(ctx context.Context, tx pgx.Tx, user *models.User) error {
	return tx.QueryRow(ctx, `
		INSERT INTO users (code, role, password, needs_password_change, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		user.Code, user.Role, user.Password, user.NeedsPasswordChange, user.Status,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// CreateWithStudent inserts the user and its student profile in one
// transaction, so a failed profile insert leaves no orphan account.
func (r *UserRepository) CreateWithStudent(ctx context.Context, user *models.User, student *models.Student) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := insertUser(ctx, tx, user); err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		student.UserID = user.ID
		student.Code = user.Code
		return tx.QueryRow(ctx, `
			INSERT INTO students (
				code, user_id, first_name, middle_name, last_name, email, contact_no,
				admission_semester_id, academic_department_id
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at, updated_at`,
			student.Code, student.UserID, student.Name.FirstName, student.Name.MiddleName,
			student.Name.LastName, student.Email, student.ContactNo,
			student.AdmissionSemesterID, student.AcademicDepartmentID,
		).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	})
}

// CreateWithFaculty inserts the user and its faculty profile in one transaction
func (r *UserRepository) CreateWithFaculty(ctx context.Context, user *models.User, faculty *models.Faculty) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := insertUser(ctx, tx, user); err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		faculty.UserID = user.ID
		faculty.Code = user.Code
		return tx.QueryRow(ctx, `
			INSERT INTO faculties (
				code, user_id, first_name, middle_name, last_name, designation, email,
				contact_no, academic_department_id
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at, updated_at`,
			faculty.Code, faculty.UserID, faculty.Name.FirstName, faculty.Name.MiddleName,
			faculty.Name.LastName, faculty.Designation, faculty.Email, faculty.ContactNo,
			faculty.AcademicDepartmentID,
		).Scan(&faculty.ID, &faculty.CreatedAt, &faculty.UpdatedAt)
	})
}

// UpdatePassword stores a new password hash and clears the forced-change flag
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password = $1, needs_password_change = FALSE, updated_at = NOW()
		WHERE id = $2`,
		passwordHash, userID)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateStatus blocks or unblocks an account
func (r *UserRepository) UpdateStatus(ctx context.Context, userID int64, status models.UserStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, userID)
	if err != nil {
		return fmt.Errorf("error updating user status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
