package service

import (
	"context"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/awomotoyosi/blogs-api/internal/domains/user"
	"github.com/awomotoyosi/blogs-api/pkg/jwt"
)

type fakeRepository struct {
	byEmail map[string]*user.User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byEmail: make(map[string]*user.User)}
}

func (f *fakeRepository) Create(_ context.Context, u *user.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return user.ErrEmailAlreadyExists
	}
	stored := *u
	f.byEmail[u.Email] = &stored
	return nil
}

func (f *fakeRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeRepository) ResolveAuthors(_ context.Context, fragment string) ([]uuid.UUID, error) {
	fragment = strings.ToLower(fragment)
	ids := []uuid.UUID{}
	for _, u := range f.byEmail {
		if strings.Contains(strings.ToLower(u.FirstName), fragment) ||
			strings.Contains(strings.ToLower(u.LastName), fragment) ||
			strings.Contains(strings.ToLower(u.Email), fragment) {
			ids = append(ids, u.ID)
		}
	}
	return ids, nil
}

func newTestService() (user.Service, *fakeRepository, *jwt.Manager) {
	repo := newFakeRepository()
	manager := jwt.NewManager("test-secret", time.Hour)
	return NewUserService(repo, manager), repo, manager
}

func validRegister() user.RegisterRequest {
	return user.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret-pass",
	}
}

func TestRegisterCreatesUserWithHashedPassword(t *testing.T) {
	svc, repo, manager := newTestService()

	resp, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	assert.Equal(t, "Ada", resp.User.FirstName)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)

	claims, err := manager.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims.UserID)

	stored := repo.byEmail["ada@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))
}

func TestRegisterValidatesPayload(t *testing.T) {
	svc, _, _ := newTestService()

	req := validRegister()
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)

	var vErrs validation.Errors
	require.ErrorAs(t, err, &vErrs)
	assert.Contains(t, vErrs, "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegister())
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-pass",
	})

	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownEmailIsIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Same error as a wrong password so account existence is not probeable.
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}
