package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quickpoll/quickpoll/models"
)

// UserStore persists registered identities. Emails are stored lowercase
// so lookups are case-insensitive.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// CreateUser inserts a new identity. passwordHash must already be
// hashed; the store never sees plaintext credentials. Duplicate
// usernames or emails surface as ErrUserExists via the unique
// constraints, so two racing registrations cannot both succeed.
func (s *UserStore) CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || passwordHash == "" {
		return models.User{}, fmt.Errorf("%w: username, email, and password are required", ErrValidation)
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_user (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// FindUserByEmail looks up an identity by email, case-insensitively.
func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findUser(ctx, `WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

// FindUserByID looks up an identity by id.
func (s *UserStore) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return s.findUser(ctx, `WHERE id = $1`, id)
}

// FindUserByEmailOrUsername reports whether either field is taken.
func (s *UserStore) FindUserByEmailOrUsername(ctx context.Context, email, username string) (models.User, error) {
	return s.findUser(ctx, `WHERE email = $1 OR username = $2`,
		strings.ToLower(strings.TrimSpace(email)), strings.TrimSpace(username))
}

func (s *UserStore) findUser(ctx context.Context, predicate string, args ...any) (models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, created_at
		FROM app_user `+predicate,
		args...,
	).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}
