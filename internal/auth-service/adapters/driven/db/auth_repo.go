package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/domain/models"
	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/myerrors"
	"github.com/maharjanPranish/NepXplore/internal/auth-service/core/ports"
)

const uniqueViolation = "23505"

const userColumns = `
	u.user_id,
	u.name,
	u.email,
	u.password_hash,
	u.role,
	u.phone,
	u.google_id,
	u.created_at,
	u.updated_at
`

type AuthRepo struct {
	db *DB
}

func NewAuthRepo(db *DB) ports.IAuthRepo {
	return &AuthRepo{db: db}
}

func (ar *AuthRepo) Create(ctx context.Context, user models.User) (string, error) {
	q := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id
	`
	id := ""
	row := ar.db.conn.QueryRow(ctx, q, user.Name, user.Email, user.PasswordHash, user.Role)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", myerrors.ErrEmailRegistered
		}
		return "", fmt.Errorf("failed to insert user: %v", err)
	}

	return id, nil
}

func (ar *AuthRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users u WHERE u.email = $1`

	u, err := scanUser(ar.db.conn.QueryRow(ctx, q, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, myerrors.ErrUnknownEmail
		}
		return models.User{}, err
	}
	return u, nil
}

func (ar *AuthRepo) GetByID(ctx context.Context, userID string) (models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users u WHERE u.user_id = $1`

	u, err := scanUser(ar.db.conn.QueryRow(ctx, q, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, myerrors.ErrUnknownUser
		}
		return models.User{}, err
	}
	return u, nil
}

func (ar *AuthRepo) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	q := `
		UPDATE users
		SET name = $2, phone = $3, updated_at = now()
		WHERE user_id = $1
		RETURNING user_id, name, email, password_hash, role, phone, google_id, created_at, updated_at
	`

	u, err := scanUser(ar.db.conn.QueryRow(ctx, q, user.UserId, user.Name, user.Phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, myerrors.ErrUnknownUser
		}
		return models.User{}, err
	}
	return u, nil
}

// GetOrCreateByGoogle looks the account up by google id, then by email
// (linking the google id to an existing password account), and finally
// creates a fresh tourist account.
func (ar *AuthRepo) GetOrCreateByGoogle(ctx context.Context, user models.User) (models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users u WHERE u.google_id = $1`
	u, err := scanUser(ar.db.conn.QueryRow(ctx, q, user.GoogleId))
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, err
	}

	linkQ := `
		UPDATE users
		SET google_id = $2, updated_at = now()
		WHERE email = $1
		RETURNING user_id, name, email, password_hash, role, phone, google_id, created_at, updated_at
	`
	u, err = scanUser(ar.db.conn.QueryRow(ctx, linkQ, user.Email, user.GoogleId))
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, err
	}

	insertQ := `
		INSERT INTO users (name, email, role, google_id)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, name, email, password_hash, role, phone, google_id, created_at, updated_at
	`
	u, err = scanUser(ar.db.conn.QueryRow(ctx, insertQ, user.Name, user.Email, user.Role, user.GoogleId))
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert google user: %v", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	var passwordHash []byte
	var phone, googleId sql.NullString

	err := row.Scan(
		&u.UserId,
		&u.Name,
		&u.Email,
		&passwordHash,
		&u.Role,
		&phone,
		&googleId,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	u.PasswordHash = passwordHash
	u.Phone = phone.String
	u.GoogleId = googleId.String
	return u, nil
}
