package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/awomotoyosi/blogs-api/internal/domains/user"
	"github.com/awomotoyosi/blogs-api/internal/shared/response"
	"github.com/awomotoyosi/blogs-api/internal/shared/utils"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register - POST /api/v1/users/signup
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User created successfully", result)
}

// Login - POST /api/v1/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User logged in successfully", result)
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	switch {
	case errors.As(err, &fieldErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", utils.ValidationMessages(err))
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.Error(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		log.Error().Err(err).Msg("user handler: unexpected error")
		response.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
