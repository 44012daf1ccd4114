package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/awomotoyosi/blogs-api/internal/domains/blog/model"
	"github.com/awomotoyosi/blogs-api/internal/domains/blog/service"
	"github.com/awomotoyosi/blogs-api/internal/shared/middleware"
	"github.com/awomotoyosi/blogs-api/internal/shared/response"
	"github.com/awomotoyosi/blogs-api/internal/shared/utils"
	"github.com/awomotoyosi/blogs-api/pkg/logger"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// BlogHandler exposes the blog lifecycle over HTTP.
type BlogHandler struct {
	service service.ServiceInterface
}

func NewBlogHandler(service service.ServiceInterface) *BlogHandler {
	return &BlogHandler{service: service}
}

// Create handles POST /api/v1/blogs.
func (h *BlogHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req model.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	blog, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Blog created successfully", model.ToBlogResponse(blog))
}

// ListPublished handles GET /api/v1/blogs. Public, published blogs only.
func (h *BlogHandler) ListPublished(c *gin.Context) {
	req := &model.ListPublishedRequest{
		Page:   parsePositiveInt(c.Query("page"), defaultPage),
		Limit:  parseLimit(c.Query("limit")),
		Search: c.Query("search"),
		Author: c.Query("author"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	}

	blogs, meta, err := h.service.ListPublished(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	summaries := make([]model.BlogSummary, 0, len(blogs))
	for _, b := range blogs {
		summaries = append(summaries, model.ToBlogSummary(b))
	}

	response.SuccessWithMeta(c, http.StatusOK, "Published blogs retrieved successfully", summaries, meta)
}

// ListOwned handles GET /api/v1/blogs/my-blogs.
func (h *BlogHandler) ListOwned(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	req := &model.ListOwnedRequest{
		Page:  parsePositiveInt(c.Query("page"), defaultPage),
		Limit: parseLimit(c.Query("limit")),
		State: c.Query("state"),
	}

	blogs, meta, err := h.service.ListOwned(c.Request.Context(), userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	summaries := make([]model.OwnedBlogSummary, 0, len(blogs))
	for _, b := range blogs {
		summaries = append(summaries, model.ToOwnedBlogSummary(b))
	}

	response.SuccessWithMeta(c, http.StatusOK, "Owner's blogs retrieved successfully", summaries, meta)
}

// GetByID handles GET /api/v1/blogs/:id. Public; the view is counted.
func (h *BlogHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	blog, err := h.service.ViewPublished(c.Request.Context(), id)
	if errors.Is(err, model.ErrBlogNotFound) {
		response.Error(c, http.StatusNotFound, "Blog not found or is not published.")
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Blog retrieved successfully", model.ToBlogResponse(blog))
}

// Update handles PUT /api/v1/blogs/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid update payload")
		return
	}

	blog, err := h.service.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotBlogOwner):
			response.Error(c, http.StatusForbidden, "You are not authorized to update this blog.")
		case errors.Is(err, model.ErrBlogNotFound):
			response.Error(c, http.StatusNotFound, "Blog not found.")
		default:
			h.handleError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, "Blog updated successfully", model.ToBlogResponse(blog))
}

// Delete handles DELETE /api/v1/blogs/:id. Not-found and not-owner collapse
// into one message so existence of someone else's blog is not confirmed.
func (h *BlogHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, ok := h.parseID(c)
	if !ok {
		return
	}

	blog, err := h.service.Delete(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotBlogOwner):
			response.Error(c, http.StatusForbidden, "You are not authorized to delete this blog.")
		case errors.Is(err, model.ErrBlogNotFound):
			response.Error(c, http.StatusNotFound, "Blog not found or you do not have permission to delete this blog.")
		default:
			h.handleError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, "Blog deleted successfully", gin.H{"id": blog.ID.String()})
}

func (h *BlogHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	if !utils.IsValidUUID(raw) {
		response.Error(c, http.StatusBadRequest, "Invalid blog id")
		return uuid.Nil, false
	}
	id, _ := uuid.Parse(raw)
	return id, true
}

func (h *BlogHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", utils.ValidationMessages(err))
	case errors.Is(err, model.ErrTitleAlreadyExists):
		response.Error(c, http.StatusConflict, "A blog with this title already exists")
	case errors.Is(err, model.ErrBlogNotFound):
		response.Error(c, http.StatusNotFound, "Blog not found.")
	default:
		logger.Error("blog handler error", err)
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func parseLimit(raw string) int {
	n := parsePositiveInt(raw, defaultLimit)
	if n > maxLimit {
		return maxLimit
	}
	return n
}
