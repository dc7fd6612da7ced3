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

var semesterRegistrationQueryConfig = query.Config{
	Fields: []string{"id", "academicSemesterId", "status", "startDate", "endDate", "minCredit", "maxCredit", "createdAt", "updatedAt"},
	Columns: map[string]string{
		"id":                 "id",
		"academicSemesterId": "academic_semester_id",
		"status":             "status",
		"startDate":          "start_date",
		"endDate":            "end_date",
		"minCredit":          "min_credit",
		"maxCredit":          "max_credit",
		"createdAt":          "created_at",
		"updatedAt":          "updated_at",
	},
	SearchColumns: []string{"status"},
	DefaultSort:   "-createdAt",
}

// SemesterRegistrationRepository handles database operations for semester registrations
type SemesterRegistrationRepository struct {
	db *pgxpool.Pool
}

// NewSemesterRegistrationRepository creates a new semester registration repository
func NewSemesterRegistrationRepository(db *pgxpool.Pool) *SemesterRegistrationRepository {
	return &SemesterRegistrationRepository{db: db}
}

// Create inserts a new semester registration
func (r *SemesterRegistrationRepository) Create(ctx context.Context, reg *models.SemesterRegistration) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO semester_registrations (academic_semester_id, status, start_date, end_date, min_credit, max_credit)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		reg.AcademicSemesterID, reg.Status, reg.StartDate, reg.EndDate, reg.MinCredit, reg.MaxCredit,
	).Scan(&reg.ID, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating semester registration: %w", err)
	}
	return nil
}

// GetByID retrieves a semester registration with its academic semester
func (r *SemesterRegistrationRepository) GetByID(ctx context.Context, id int64) (*models.SemesterRegistration, error) {
	var reg models.SemesterRegistration
	var sem models.AcademicSemester
	err := r.db.QueryRow(ctx, `
		SELECT r.id, r.academic_semester_id, r.status, r.start_date, r.end_date,
		       r.min_credit, r.max_credit, r.created_at, r.updated_at,
		       s.id, s.name, s.year, s.code, s.start_month, s.end_month, s.created_at, s.updated_at
		FROM semester_registrations r
		JOIN academic_semesters s ON r.academic_semester_id = s.id
		WHERE r.id = $1`,
		id,
	).Scan(
		&reg.ID, &reg.AcademicSemesterID, &reg.Status, &reg.StartDate, &reg.EndDate,
		&reg.MinCredit, &reg.MaxCredit, &reg.CreatedAt, &reg.UpdatedAt,
		&sem.ID, &sem.Name, &sem.Year, &sem.Code, &sem.StartMonth, &sem.EndMonth, &sem.CreatedAt, &sem.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving semester registration: %w", err)
	}
	reg.AcademicSemester = &sem
	return &reg, nil
}

// GetStatus retrieves just the lifecycle status of a registration
func (r *SemesterRegistrationRepository) GetStatus(ctx context.Context, id int64) (models.RegistrationStatus, error) {
	var status models.RegistrationStatus
	err := r.db.QueryRow(ctx,
		`SELECT status FROM semester_registrations WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", pgx.ErrNoRows
	}
	if err != nil {
		return "", fmt.Errorf("error retrieving semester registration status: %w", err)
	}
	return status, nil
}

// ExistsBySemester checks whether the academic semester is already registered
func (r *SemesterRegistrationRepository) ExistsBySemester(ctx context.Context, semesterID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM semester_registrations WHERE academic_semester_id = $1)`,
		semesterID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking semester registration existence: %w", err)
	}
	return exists, nil
}

// AnyWithStatus checks whether any registration currently holds one of the statuses
func (r *SemesterRegistrationRepository) AnyWithStatus(ctx context.Context, statuses ...models.RegistrationStatus) (bool, error) {
	list := make([]string, len(statuses))
	for i, s := range statuses {
		list[i] = string(s)
	}
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM semester_registrations WHERE status = ANY($1))`,
		list).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking registration statuses: %w", err)
	}
	return exists, nil
}

// List retrieves semester registrations through the generic list query pipeline
func (r *SemesterRegistrationRepository) List(ctx context.Context, values url.Values) ([]map[string]interface{}, query.Meta, error) {
	b := query.New("semester_registrations", values, semesterRegistrationQueryConfig).
		Filter().Search().Sort().Paginate().Fields()
	return collectList(ctx, r.db, b)
}

// Update persists changed registration fields
func (r *SemesterRegistrationRepository) Update(ctx context.Context, reg *models.SemesterRegistration) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE semester_registrations
		SET status = $1, start_date = $2, end_date = $3, min_credit = $4, max_credit = $5, updated_at = NOW()
		WHERE id = $6`,
		reg.Status, reg.StartDate, reg.EndDate, reg.MinCredit, reg.MaxCredit, reg.ID)
	if err != nil {
		return fmt.Errorf("error updating semester registration: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
