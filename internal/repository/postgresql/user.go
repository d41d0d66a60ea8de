package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gopal-construction/worksite-backend-go/internal/domain/user"
	"github.com/gopal-construction/worksite-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

// GetByID implements user.Repository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, name, role, password_hash, created_at
		FROM user_profiles
		WHERE id = $1
	`

	var p user.Profile
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Email, &p.Name, &p.Role, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to get profile with id %s: %w", id, err)
	}

	return p, nil
}

// GetByEmail implements user.Repository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, name, role, password_hash, created_at
		FROM user_profiles
		WHERE email = $1
	`

	var p user.Profile
	err := q.QueryRow(ctx, query, email).Scan(&p.ID, &p.Email, &p.Name, &p.Role, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to get profile with email %s: %w", email, err)
	}

	return p, nil
}
