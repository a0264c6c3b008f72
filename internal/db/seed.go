package db

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/attendly/payroll-backend-go/internal/config"
	"github.com/attendly/payroll-backend-go/internal/domain/user"
	"github.com/attendly/payroll-backend-go/internal/pkg/database"
	"github.com/attendly/payroll-backend-go/internal/repository/postgresql"
)

// Seed ensures one admin account and a fixed-size pool of employee
// accounts exist. Employee passwords equal their usernames; salaries are
// drawn from 5,000,000-20,000,000 minor units. The whole batch runs in
// one transaction, and re-running is a no-op for users that already
// exist.
func Seed(ctx context.Context, db *database.DB, cfg config.SeedConfig) error {
	return postgresql.WithTransaction(ctx, db, func(txCtx context.Context) error {
		if err := ensureUser(txCtx, db, cfg.AdminUsername, cfg.AdminPassword, user.RoleAdmin, 0); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}

		for i := 1; i <= cfg.EmployeeCount; i++ {
			username := strconv.Itoa(i)
			salary := 5_000_000 + rand.Int64N(15_000_001)
			if err := ensureUser(txCtx, db, username, username, user.RoleEmployee, salary); err != nil {
				return fmt.Errorf("seed employee %s: %w", username, err)
			}
		}

		return nil
	})
}

func ensureUser(ctx context.Context, db *database.DB, username, password string, role user.Role, salary int64) error {
	q := postgresql.GetQuerier(ctx, db)

	var exists bool
	err := q.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", username).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = q.Exec(ctx, `
		INSERT INTO users (username, password_hash, role, salary)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING
	`, username, string(hash), string(role), salary)
	return err
}
