package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/awomotoyosi/blogs-api/internal/domains/blog/model"
)

// AuthorDirectory resolves a free-text name fragment to author ids. The user
// domain provides the production implementation.
type AuthorDirectory interface {
	ResolveAuthors(ctx context.Context, fragment string) ([]uuid.UUID, error)
}

// ServiceInterface is the blog lifecycle and query surface.
type ServiceInterface interface {
	// Create persists a new draft owned by authorID and returns it with the
	// author populated.
	Create(ctx context.Context, authorID uuid.UUID, req *model.CreateBlogRequest) (*model.BlogWithAuthor, error)

	// ViewPublished returns a published blog and counts the view. Drafts and
	// missing ids are both model.ErrBlogNotFound.
	ViewPublished(ctx context.Context, id uuid.UUID) (*model.BlogWithAuthor, error)

	// Update applies the present fields of req to a blog owned by callerID.
	Update(ctx context.Context, callerID, id uuid.UUID, req *model.UpdateBlogRequest) (*model.BlogWithAuthor, error)

	// Delete removes a blog owned by callerID and returns its last snapshot.
	Delete(ctx context.Context, callerID, id uuid.UUID) (*model.Blog, error)

	// ListPublished pages through published blogs with search, author filter
	// and sorting applied.
	ListPublished(ctx context.Context, req *model.ListPublishedRequest) ([]model.BlogWithAuthor, *model.PaginationMeta, error)

	// ListOwned pages through the caller's own blogs, drafts included.
	ListOwned(ctx context.Context, ownerID uuid.UUID, req *model.ListOwnedRequest) ([]model.BlogWithAuthor, *model.PaginationMeta, error)
}
