package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REQUEST DTOs
// ========================================

// CreateBlogRequest is the create payload. New blogs always start as drafts;
// state, read_count and reading_time are never client-settable.
type CreateBlogRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Body        string   `json:"body"`
}

func (r CreateBlogRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error(`"title" is required`),
			validation.Length(1, 255),
		),
		validation.Field(&r.Body,
			validation.Required.Error(`"body" is required`),
		),
	)
}

// UpdateBlogRequest carries the allowed mutable fields. Absent fields are
// left untouched; at least one must be present.
type UpdateBlogRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Body        *string   `json:"body"`
	State       *string   `json:"state"`
}

func (r UpdateBlogRequest) Validate() error {
	if r.Title == nil && r.Description == nil && r.Tags == nil && r.Body == nil && r.State == nil {
		return validation.Errors{
			"update": validation.NewError("validation_empty_update", "at least one field must be provided"),
		}
	}

	// NilOrNotEmpty distinguishes "field absent" from "field explicitly
	// empty": the skip-on-empty rules alone would wave the latter through.
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error(`"title" must not be empty`),
			validation.Length(1, 255),
		),
		validation.Field(&r.Body,
			validation.NilOrNotEmpty.Error(`"body" must not be empty`),
		),
		validation.Field(&r.State,
			validation.NilOrNotEmpty.Error(`"state" must be one of [draft, published]`),
			validation.In(StateDraft, StatePublished).Error(`"state" must be one of [draft, published]`),
		),
	)
}

// ListPublishedRequest is the public listing query, already normalized by
// the handler (page >= 1, bounded limit).
type ListPublishedRequest struct {
	Page   int
	Limit  int
	Search string
	Author string
	SortBy string
	Order  string
}

// ListOwnedRequest is the authenticated owner listing query. A State value
// outside the enum is silently ignored, never an error.
type ListOwnedRequest struct {
	Page  int
	Limit int
	State string
}

// ========================================
// RESPONSE DTOs
// ========================================

// BlogResponse is the full record with the author populated.
type BlogResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      Author    `json:"author"`
	State       string    `json:"state"`
	ReadCount   int       `json:"read_count"`
	ReadingTime string    `json:"reading_time"`
	Tags        []string  `json:"tags"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BlogSummary is the public listing projection: no body, no state.
type BlogSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      Author    `json:"author"`
	ReadCount   int       `json:"read_count"`
	ReadingTime string    `json:"reading_time"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OwnedBlogSummary is the owner listing projection: drafts are visible and
// the state is included.
type OwnedBlogSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      Author    `json:"author"`
	State       string    `json:"state"`
	ReadCount   int       `json:"read_count"`
	ReadingTime string    `json:"reading_time"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PaginationMeta accompanies every listing response.
type PaginationMeta struct {
	TotalBlogs  int `json:"totalBlogs"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	Limit       int `json:"limit"`
}

// NewPaginationMeta computes totalPages = ceil(total/limit).
func NewPaginationMeta(total, page, limit int) *PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &PaginationMeta{
		TotalBlogs:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
		Limit:       limit,
	}
}

// ========================================
// MAPPERS
// ========================================

func ToBlogResponse(b *BlogWithAuthor) *BlogResponse {
	return &BlogResponse{
		ID:          b.ID.String(),
		Title:       b.Title,
		Description: b.Description,
		Author:      b.Author,
		State:       b.State,
		ReadCount:   b.ReadCount,
		ReadingTime: b.ReadingTime,
		Tags:        b.Tags,
		Body:        b.Body,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func ToBlogSummary(b BlogWithAuthor) BlogSummary {
	return BlogSummary{
		ID:          b.ID.String(),
		Title:       b.Title,
		Description: b.Description,
		Author:      b.Author,
		ReadCount:   b.ReadCount,
		ReadingTime: b.ReadingTime,
		Tags:        b.Tags,
		CreatedAt:   b.CreatedAt,
	}
}

func ToOwnedBlogSummary(b BlogWithAuthor) OwnedBlogSummary {
	return OwnedBlogSummary{
		ID:          b.ID.String(),
		Title:       b.Title,
		Description: b.Description,
		Author:      b.Author,
		State:       b.State,
		ReadCount:   b.ReadCount,
		ReadingTime: b.ReadingTime,
		Tags:        b.Tags,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
