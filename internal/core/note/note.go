package note

import "time"

// Note is a minimal demonstration entity: the REST endpoints in front of it
// exist to exercise the database, not to model anything real.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
