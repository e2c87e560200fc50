package note

import "context"

// Repository defines the interface for note persistence operations.
type Repository interface {
	// Create persists a new note.
	Create(ctx context.Context, note Note) error

	// FindByID retrieves a note by its ID.
	// Returns nil if not found.
	FindByID(ctx context.Context, id string) (*Note, error)

	// List retrieves up to limit notes, newest first.
	List(ctx context.Context, limit int) ([]Note, error)
}
