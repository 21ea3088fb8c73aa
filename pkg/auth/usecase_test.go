package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{byEmail: map[string]User{}} }

func (r *fakeUserRepo) Create(_ context.Context, u User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrUserAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

type fakeTokens struct{}

func (fakeTokens) Generate(_ context.Context, u User) (string, error) {
	return "token-" + u.ID.String(), nil
}

func TestRegister(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeTokens{})

	res, err := svc.Register(context.Background(), " hr@example.com ", "secret", " Анна ", RoleEmployer)
	require.NoError(t, err)

	assert.Equal(t, "hr@example.com", res.User.Email)
	assert.Equal(t, "Анна", res.User.FullName)
	assert.Equal(t, RoleEmployer, res.User.Role)
	assert.NotEmpty(t, res.Token)
	assert.NotEqual(t, "secret", res.User.PasswordHash)
}

func TestRegisterDefaultsToCandidate(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeTokens{})

	res, err := svc.Register(context.Background(), "dev@example.com", "secret", "Пётр", "admin")
	require.NoError(t, err)
	assert.Equal(t, RoleCandidate, res.User.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeTokens{})

	_, err := svc.Register(context.Background(), "dev@example.com", "secret", "", RoleCandidate)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "dev@example.com", "other", "", RoleCandidate)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterEmptyCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), fakeTokens{})

	_, err := svc.Register(context.Background(), "  ", "secret", "", RoleCandidate)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(context.Background(), "dev@example.com", "", "", RoleCandidate)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, fakeTokens{})

	reg, err := svc.Register(context.Background(), "dev@example.com", "secret", "Пётр", RoleCandidate)
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := svc.Login(context.Background(), "dev@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, reg.User.ID, res.User.ID)
		assert.NotEmpty(t, res.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "dev@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost@example.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
