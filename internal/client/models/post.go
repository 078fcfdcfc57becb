// Package models holds the client-side domain types: the authenticated user,
// the branding profile, and generated content posts.
package models

import "time"

// PostFormat is the content shape requested from the generation service.
type PostFormat string

const (
	FormatShortPost PostFormat = "short_post"
	FormatArticle   PostFormat = "article"
	FormatCarousel  PostFormat = "carousel"
)

// Valid reports whether f is one of the formats the service accepts.
func (f PostFormat) Valid() bool {
	switch f {
	case FormatShortPost, FormatArticle, FormatCarousel:
		return true
	}
	return false
}

// Visibility is the audience scope applied when a post is published.
type Visibility string

const (
	VisibilityPublic      Visibility = "PUBLIC"
	VisibilityConnections Visibility = "CONNECTIONS"
)

// PostState tracks a post through its lifecycle. A post has no client-side
// identity until generation succeeds; there is no pre-generation draft.
type PostState string

const (
	StateDraft     PostState = "DRAFT"
	StateScheduled PostState = "SCHEDULED"
	StatePublished PostState = "PUBLISHED"
	StateFailed    PostState = "FAILED"
)

// Post is a generated content item. ID is assigned by the service upon
// generation; scheduling and publishing both require it.
type Post struct {
	ID     int64
	Text   string
	Format PostFormat
	State  PostState

	// Set when State is StateScheduled.
	ScheduledAt time.Time
	Provider    string

	// Set when State is StatePublished and the service echoed a reference.
	URN string
}
