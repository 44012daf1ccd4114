package service

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/awomotoyosi/blogs-api/internal/domains/blog/model"
	"github.com/awomotoyosi/blogs-api/internal/domains/blog/repository"
)

type blogService struct {
	repo      repository.RepositoryInterface
	directory AuthorDirectory
}

// NewBlogService wires the blog service with its repository and the author
// directory used for name-based filtering.
func NewBlogService(repo repository.RepositoryInterface, directory AuthorDirectory) ServiceInterface {
	return &blogService{repo: repo, directory: directory}
}

func (s *blogService) Create(ctx context.Context, authorID uuid.UUID, req *model.CreateBlogRequest) (*model.BlogWithAuthor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b := &model.Blog{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    authorID,
		State:       model.StateDraft,
		ReadCount:   0,
		ReadingTime: model.EstimateReadingTime(req.Body),
		Tags:        req.Tags,
		Body:        req.Body,
	}

	if err := s.repo.Insert(ctx, b); err != nil {
		return nil, err
	}

	return s.repo.GetByIDWithAuthor(ctx, b.ID)
}

func (s *blogService) ViewPublished(ctx context.Context, id uuid.UUID) (*model.BlogWithAuthor, error) {
	return s.repo.IncrementReadCount(ctx, id)
}

func (s *blogService) Update(ctx context.Context, callerID, id uuid.UUID, req *model.UpdateBlogRequest) (*model.BlogWithAuthor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.AuthorID != callerID {
		return nil, model.ErrNotBlogOwner
	}

	changed := false
	if req.Title != nil && *req.Title != b.Title {
		b.Title = *req.Title
		changed = true
	}
	if req.Description != nil && *req.Description != b.Description {
		b.Description = *req.Description
		changed = true
	}
	if req.Tags != nil && !slices.Equal(*req.Tags, b.Tags) {
		b.Tags = *req.Tags
		changed = true
	}
	if req.Body != nil && *req.Body != b.Body {
		b.Body = *req.Body
		b.ReadingTime = model.EstimateReadingTime(b.Body)
		changed = true
	}
	if req.State != nil && *req.State != b.State {
		b.State = *req.State
		changed = true
	}

	// A payload that matches the stored values skips the write entirely,
	// leaving updated_at untouched.
	if !changed {
		return s.repo.GetByIDWithAuthor(ctx, id)
	}

	if err := s.repo.Save(ctx, b); err != nil {
		return nil, err
	}

	return s.repo.GetByIDWithAuthor(ctx, id)
}

func (s *blogService) Delete(ctx context.Context, callerID, id uuid.UUID) (*model.Blog, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.AuthorID != callerID {
		return nil, model.ErrNotBlogOwner
	}

	return s.repo.Delete(ctx, id)
}

func (s *blogService) ListPublished(ctx context.Context, req *model.ListPublishedRequest) ([]model.BlogWithAuthor, *model.PaginationMeta, error) {
	filter := &model.BlogFilter{
		State:  model.StatePublished,
		Search: req.Search,
		SortBy: req.SortBy,
		Order:  req.Order,
		Offset: (req.Page - 1) * req.Limit,
		Limit:  req.Limit,
	}

	if req.Author != "" {
		ids, err := s.directory.ResolveAuthors(ctx, req.Author)
		if err != nil {
			return nil, nil, err
		}
		// No author matched and there is no search term to rescue the
		// query: the result set is empty by construction.
		if len(ids) == 0 && req.Search == "" {
			return []model.BlogWithAuthor{}, model.NewPaginationMeta(0, req.Page, req.Limit), nil
		}
		filter.AuthorIDs = ids
		filter.FilterByAuthors = true
	}

	blogs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	return blogs, model.NewPaginationMeta(total, req.Page, req.Limit), nil
}

func (s *blogService) ListOwned(ctx context.Context, ownerID uuid.UUID, req *model.ListOwnedRequest) ([]model.BlogWithAuthor, *model.PaginationMeta, error) {
	filter := &model.BlogFilter{
		AuthorID: &ownerID,
		SortBy:   model.SortByTimestamp,
		Order:    "desc",
		Offset:   (req.Page - 1) * req.Limit,
		Limit:    req.Limit,
	}

	// Anything outside the state enum is ignored rather than rejected.
	if req.State == model.StateDraft || req.State == model.StatePublished {
		filter.State = req.State
	}

	blogs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	return blogs, model.NewPaginationMeta(total, req.Page, req.Limit), nil
}
