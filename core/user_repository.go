package core

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// User is the outward-facing projection of a stored user. It never carries
// the password hash; handlers can marshal it directly into responses.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRecord is the full row including the credential hash. Only the login
// path may load it; it has no JSON tags on purpose.
type UserRecord struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// FindByID loads a user without the password hash column.
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*UserRecord, error)
	Create(ctx context.Context, id, name, email, passwordHash string, isAdmin bool) (*User, error)
	List(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, id, name, email string) error
	Delete(ctx context.Context, id string) error
	HasAdmin(ctx context.Context) (bool, error)
}

// PgUserRepository implements UserRepository using pgxpool.
type PgUserRepository struct {
	db *pgxpool.Pool
}

func NewPgUserRepository(db *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{db: db}
}

func (r *PgUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	const q = `SELECT id, name, email, is_admin, created_at FROM users WHERE id=$1`
	var u User
	if err := r.db.QueryRow(ctx, q, id).Scan(&u.ID, &u.Name, &u.Email, &u.IsAdmin, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PgUserRepository) FindByEmail(ctx context.Context, email string) (*UserRecord, error) {
	const q = `SELECT id, name, email, password_hash, is_admin, created_at FROM users WHERE email=$1`
	var u UserRecord
	if err := r.db.QueryRow(ctx, q, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PgUserRepository) Create(ctx context.Context, id, name, email, passwordHash string, isAdmin bool) (*User, error) {
	name = strings.TrimSpace(name)
	const q = `INSERT INTO users (id, name, email, password_hash, is_admin) VALUES ($1,$2,$3,$4,$5) RETURNING created_at`
	u := User{ID: id, Name: name, Email: email, IsAdmin: isAdmin}
	if err := r.db.QueryRow(ctx, q, id, name, email, passwordHash, isAdmin).Scan(&u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns all users without password hashes, oldest first.
func (r *PgUserRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, is_admin, created_at FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateProfile changes name/email only. Privilege and credential columns
// are never client-writable through this path.
func (r *PgUserRepository) UpdateProfile(ctx context.Context, id, name, email string) error {
	const q = `UPDATE users SET name=$1, email=$2 WHERE id=$3`
	_, err := r.db.Exec(ctx, q, strings.TrimSpace(name), email, id)
	return err
}

func (r *PgUserRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM users WHERE id=$1`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgUserRepository) HasAdmin(ctx context.Context) (bool, error) {
	const q = `SELECT 1 FROM users WHERE is_admin LIMIT 1`
	var one int
	if err := r.db.QueryRow(ctx, q).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
