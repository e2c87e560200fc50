package note

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	corenote "github.com/pulselabs/pulse-api/internal/core/note"
)

// ErrTitleRequired is returned when a note is created without a title.
var ErrTitleRequired = errors.New("note title is required")

const (
	defaultListLimit = 50
	maxListLimit     = 200
	maxTitleLength   = 200
)

// Service exposes the note use cases to adapters.
type Service struct {
	repo corenote.Repository
}

func NewService(repo corenote.Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new note with a server-assigned ID and returns it.
func (s *Service) Create(ctx context.Context, title, body string) (corenote.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return corenote.Note{}, ErrTitleRequired
	}
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength]
	}

	n := corenote.Note{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return corenote.Note{}, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

// Get retrieves a note by ID. Returns nil without error when the note does
// not exist; a malformed ID cannot match anything, so it is treated the same
// way instead of reaching the database.
func (s *Service) Get(ctx context.Context, id string) (*corenote.Note, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find note: %w", err)
	}
	return n, nil
}

// List returns up to limit notes, newest first. Out-of-range limits are
// clamped rather than rejected.
func (s *Service) List(ctx context.Context, limit int) ([]corenote.Note, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	notes, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}
