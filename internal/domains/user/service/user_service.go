package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/awomotoyosi/blogs-api/internal/domains/user"
	"github.com/awomotoyosi/blogs-api/pkg/jwt"
)

// bcryptCost balances hashing latency against brute-force resistance.
const bcryptCost = 12

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

// NewUserService wires the repository and token manager into the account
// service.
func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// Register creates an account and returns the sanitized user plus a token.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	newUser := &user.User{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Email uniqueness is enforced by the store constraint; the repository
	// surfaces the conflict instead of a check-then-act race here.
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(newUser.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.AuthResponse{User: newUser.ToDTO(), Token: token}, nil
}

// Login verifies the credentials and returns the sanitized user plus a token.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email collapses into the same error as a wrong password.
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.AuthResponse{User: u.ToDTO(), Token: token}, nil
}
