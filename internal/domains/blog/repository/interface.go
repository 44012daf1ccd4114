package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/awomotoyosi/blogs-api/internal/domains/blog/model"
)

// RepositoryInterface is the typed surface over the blog collection.
type RepositoryInterface interface {
	// Insert persists a new blog. Returns model.ErrTitleAlreadyExists when
	// the title uniqueness constraint is violated.
	Insert(ctx context.Context, b *model.Blog) error

	// GetByID loads the raw record, model.ErrBlogNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)

	// GetByIDWithAuthor loads the record with the author projection joined.
	GetByIDWithAuthor(ctx context.Context, id uuid.UUID) (*model.BlogWithAuthor, error)

	// List returns the filtered page plus the total count matching the
	// filter with skip/limit ignored.
	List(ctx context.Context, filter *model.BlogFilter) ([]model.BlogWithAuthor, int, error)

	// Save persists the mutable fields of an existing record and refreshes
	// updated_at. read_count is deliberately not written here.
	Save(ctx context.Context, b *model.Blog) error

	// Delete hard-deletes and returns the removed record's snapshot.
	Delete(ctx context.Context, id uuid.UUID) (*model.Blog, error)

	// IncrementReadCount bumps read_count by one atomically, but only for a
	// published record, and returns the updated record with its author.
	// Absent and unpublished both come back as model.ErrBlogNotFound.
	IncrementReadCount(ctx context.Context, id uuid.UUID) (*model.BlogWithAuthor, error)
}
