package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanvir/campushub/internal/app/models"
	"github.com/tanvir/campushub/internal/pkg/auth"
	"github.com/tanvir/campushub/internal/pkg/identifier"
	"github.com/tanvir/campushub/internal/pkg/logger"
)

// CreateDefaultAdmin ensures at least one admin account exists so the API
// can be bootstrapped. The account is created with the configured password
// and forced to change it on first login.
func CreateDefaultAdmin(ctx context.Context, pool *pgxpool.Pool, password string) error {
	if password == "" {
		logger.Warn().Msg("No seed admin password configured, skipping admin seed")
		return nil
	}

	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`, models.RoleAdmin).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking for existing admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing seed admin password: %w", err)
	}

	code := identifier.NextAdminID("")
	_, err = pool.Exec(ctx, `
		INSERT INTO users (code, role, password, needs_password_change, status)
		VALUES ($1, $2, $3, TRUE, $4)`,
		code, models.RoleAdmin, hash, models.UserStatusInProgress)
	if err != nil {
		return fmt.Errorf("error creating seed admin: %w", err)
	}

	logger.Info().Str("code", code).Msg("Seed admin account created")
	return nil
}
