package db

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/rotisserie/eris"
)

// primaryRole picks admin over contractor over client.
const primaryRole = `COALESCE((
	SELECT r.role::text FROM user_roles r WHERE r.user_id = u.id
	ORDER BY CASE r.role WHEN 'admin' THEN 0 WHEN 'contractor' THEN 1 ELSE 2 END
	LIMIT 1), 'client')`

const userSelect = `SELECT u.id, u.email, COALESCE(p.full_name, ''), u.password_hash, ` + primaryRole + `,
	u.created_at, u.updated_at
	FROM users u LEFT JOIN profiles p ON p.user_id = u.id`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = types.AppRole(role)
	return &u, nil
}

// normalizeEmail lower-cases and trims an address so lookups are case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser inserts the user, its profile and its role in one transaction.
func (db *DB) CreateUser(ctx context.Context, in NewUser) (uuid.UUID, error) {
	role := in.Role
	if role == "" {
		role = types.RoleClient
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, eris.Wrap(err, "db: begin create user")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id`,
		normalizeEmail(in.Email), in.PasswordHash,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, eris.Wrap(err, "db: insert user")
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO profiles (user_id, full_name, email, company_name, phone)
		 VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), NULLIF($5, ''))`,
		id, in.FullName, normalizeEmail(in.Email), in.CompanyName, in.Phone,
	); err != nil {
		return uuid.Nil, eris.Wrap(err, "db: insert profile")
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2::app_role)`,
		id, string(role),
	); err != nil {
		return uuid.Nil, eris.Wrap(err, "db: insert user role")
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, eris.Wrap(err, "db: commit create user")
	}
	return id, nil
}

// GetUser retrieves a user by ID, or nil if there is none.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := scanUser(db.pool.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, eris.Wrap(err, "db: get user")
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email, or nil if there is none.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := scanUser(db.pool.QueryRow(ctx, userSelect+` WHERE u.email = $1`, normalizeEmail(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, eris.Wrap(err, "db: get user by email")
	}
	return u, nil
}

// LookupUser resolves a session's identity.
func (db *DB) LookupUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	u, err := db.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Identity(), nil
}

// CheckEmailExists reports whether an account uses email.
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		normalizeEmail(email),
	).Scan(&exists)
	if err != nil {
		return false, eris.Wrap(err, "db: check email exists")
	}
	return exists, nil
}

// UpdatePassword replaces a user's password hash.
func (db *DB) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id,
	)
	if err != nil {
		return eris.Wrap(err, "db: update password")
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("db: update password: user %s not found", id)
	}
	return nil
}

// GetProfile returns a user's profile, or nil if there is none.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	var p types.Profile
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, COALESCE(full_name, ''), COALESCE(email, ''), COALESCE(company_name, ''),
			COALESCE(phone, ''), COALESCE(avatar_url, ''), created_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.FullName, &p.Email, &p.CompanyName, &p.Phone, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, eris.Wrap(err, "db: get profile")
	}
	return &p, nil
}

// AssignRole grants role to a user. Granting a held role is a no-op.
func (db *DB) AssignRole(ctx context.Context, userID uuid.UUID, role types.AppRole) error {
	if _, err := db.pool.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2::app_role)
		 ON CONFLICT (user_id, role) DO NOTHING`,
		userID, string(role),
	); err != nil {
		return eris.Wrap(err, "db: assign role")
	}
	return nil
}

// HasRole reports whether a user holds role.
func (db *DB) HasRole(ctx context.Context, userID uuid.UUID, role types.AppRole) (bool, error) {
	var has bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2::app_role)`,
		userID, string(role),
	).Scan(&has)
	if err != nil {
		return false, eris.Wrap(err, "db: has role")
	}
	return has, nil
}
