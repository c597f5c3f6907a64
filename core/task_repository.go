package core

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Task represents a task record owned by a single user.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskRepository defines persistence operations for tasks. Every read and
// write is scoped by owner: a task belonging to someone else is
// indistinguishable from one that does not exist.
type TaskRepository interface {
	Create(ctx context.Context, id, ownerID, title, description, status string) (*Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Task, error)
	FindByOwner(ctx context.Context, id, ownerID string) (*Task, error)
	Update(ctx context.Context, id, ownerID, title, description, status string) error
	Delete(ctx context.Context, id, ownerID string) error
}

// PgTaskRepository is a pgx implementation.
type PgTaskRepository struct {
	db *pgxpool.Pool
}

func NewPgTaskRepository(db *pgxpool.Pool) *PgTaskRepository {
	return &PgTaskRepository{db: db}
}

func (r *PgTaskRepository) Create(ctx context.Context, id, ownerID, title, description, status string) (*Task, error) {
	title = strings.TrimSpace(title)
	const q = `INSERT INTO tasks (id, title, description, status, owner_id) VALUES ($1,$2,$3,$4,$5) RETURNING created_at, updated_at`
	t := Task{ID: id, Title: title, Description: description, Status: status, OwnerID: ownerID}
	if err := r.db.QueryRow(ctx, q, id, title, description, status, ownerID).Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByOwner returns all tasks owned by ownerID, newest first.
func (r *PgTaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]Task, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, title, description, status, owner_id, created_at, updated_at
FROM tasks
WHERE owner_id=$1
ORDER BY created_at DESC, id
`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tasks := make([]Task, 0)
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *PgTaskRepository) FindByOwner(ctx context.Context, id, ownerID string) (*Task, error) {
	const q = `SELECT id, title, description, status, owner_id, created_at, updated_at FROM tasks WHERE id=$1 AND owner_id=$2`
	var t Task
	if err := r.db.QueryRow(ctx, q, id, ownerID).Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *PgTaskRepository) Update(ctx context.Context, id, ownerID, title, description, status string) error {
	const q = `UPDATE tasks SET title=$1, description=$2, status=$3, updated_at=NOW() WHERE id=$4 AND owner_id=$5`
	ct, err := r.db.Exec(ctx, q, strings.TrimSpace(title), description, status, id, ownerID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgTaskRepository) Delete(ctx context.Context, id, ownerID string) error {
	const q = `DELETE FROM tasks WHERE id=$1 AND owner_id=$2`
	ct, err := r.db.Exec(ctx, q, id, ownerID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
