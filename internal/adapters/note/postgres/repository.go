package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulselabs/pulse-api/internal/core/note"
)

// Repository implements the note.Repository interface using PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewRepository creates a new PostgreSQL note repository.
func NewRepository(pool *pgxpool.Pool, log *slog.Logger) note.Repository {
	return &Repository{pool: pool, log: log}
}

// Create persists a new note.
func (r *Repository) Create(ctx context.Context, n note.Note) error {
	query := `
		INSERT INTO notes (id, title, body, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := r.pool.Exec(ctx, query, n.ID, n.Title, n.Body, n.CreatedAt); err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// FindByID retrieves a note by its ID. Returns nil if not found.
func (r *Repository) FindByID(ctx context.Context, id string) (*note.Note, error) {
	query := `
		SELECT id, title, body, created_at
		FROM notes
		WHERE id = $1
	`

	var n note.Note
	err := r.pool.QueryRow(ctx, query, id).Scan(&n.ID, &n.Title, &n.Body, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select note: %w", err)
	}
	return &n, nil
}

// List retrieves up to limit notes, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]note.Note, error) {
	query := `
		SELECT id, title, body, created_at
		FROM notes
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	defer rows.Close()

	notes := make([]note.Note, 0, limit)
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}
