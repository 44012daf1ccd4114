package model

import (
	"time"

	"github.com/google/uuid"
)

// Blog states. The enum is two-valued and deliberately unguarded: an update
// may set either value from either value.
const (
	StateDraft     = "draft"
	StatePublished = "published"
)

// Sort keys accepted by the published listing. Anything else falls back to
// creation time.
const (
	SortByReadCount   = "read_count"
	SortByReadingTime = "reading_time"
	SortByTimestamp   = "timestamp"
)

// Blog is the persisted post record. Author is set once at creation and is
// the ownership anchor for every mutation.
type Blog struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	AuthorID    uuid.UUID `json:"author" db:"author_id"`
	State       string    `json:"state" db:"state"`
	ReadCount   int       `json:"read_count" db:"read_count"`
	ReadingTime string    `json:"reading_time" db:"reading_time"`
	Tags        []string  `json:"tags" db:"tags"`
	Body        string    `json:"body" db:"body"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Author is the read-only projection of the referencing user, joined into
// query results. It is never mutated through this domain.
type Author struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

// BlogWithAuthor is a repository row with the author populated.
type BlogWithAuthor struct {
	Blog
	Author Author
}

// BlogFilter drives the listing query. FilterByAuthors distinguishes "no
// author constraint" from "author resolved to an empty id set".
type BlogFilter struct {
	State           string
	AuthorID        *uuid.UUID
	AuthorIDs       []uuid.UUID
	FilterByAuthors bool
	Search          string
	SortBy          string
	Order           string
	Offset          int
	Limit           int
}
