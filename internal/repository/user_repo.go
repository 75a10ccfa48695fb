package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contact_management/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL        = `INSERT INTO users (username, name, password_hash) VALUES (?, ?, ?)`
	selectUserSQL        = `SELECT username, name, password_hash, token FROM users WHERE username = ?`
	selectUserByTokenSQL = `SELECT username, name, password_hash, token FROM users WHERE token = ?`
	updateUserProfileSQL = `UPDATE users SET name = ?, password_hash = ? WHERE username = ?`
	updateUserTokenSQL   = `UPDATE users SET token = ? WHERE username = ?`
)

// Create inserts a new user. A duplicate username surfaces as the
// driver's unique-constraint error.
func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL, user.Username, user.Name, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("insert user %q: %w", user.Username, err)
	}
	return nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserSQL, username))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return user, nil
}

// GetByToken fetches the user holding the given session token.
// Returns (nil, nil) if no user holds it.
func (r *UserRepository) GetByToken(ctx context.Context, token string) (*models.User, error) {
	user, err := r.scanUser(r.db.QueryRowContext(ctx, selectUserByTokenSQL, token))
	if err != nil {
		return nil, fmt.Errorf("select user by token: %w", err)
	}
	return user, nil
}

// UpdateProfile writes only the profile columns (name, password hash),
// never the token, so a concurrent login cannot be clobbered.
func (r *UserRepository) UpdateProfile(ctx context.Context, user models.User) error {
	_, err := r.db.ExecContext(ctx, updateUserProfileSQL, user.Name, user.PasswordHash, user.Username)
	if err != nil {
		return fmt.Errorf("update user %q: %w", user.Username, err)
	}
	return nil
}

// SetToken stores a new session token, or clears it when token is nil.
func (r *UserRepository) SetToken(ctx context.Context, username string, token *string) error {
	var value any
	if token != nil {
		value = *token
	}
	_, err := r.db.ExecContext(ctx, updateUserTokenSQL, value, username)
	if err != nil {
		return fmt.Errorf("set token for user %q: %w", username, err)
	}
	return nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var token sql.NullString
	err := row.Scan(&u.Username, &u.Name, &u.PasswordHash, &token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if token.Valid {
		u.Token = &token.String
	}
	return &u, nil
}
