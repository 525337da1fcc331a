package session_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentcredit/rentcredit/internal/session"
)

// memRepo is an in-memory Repository for tests.
type memRepo struct {
	role session.Role
	user *session.User
}

func (m *memRepo) Load(context.Context) (session.Role, *session.User, error) {
	return m.role, m.user, nil
}

func (m *memRepo) Save(_ context.Context, role session.Role, user *session.User) error {
	m.role = role
	m.user = user
	return nil
}

func (m *memRepo) Clear(context.Context) error {
	m.role = ""
	m.user = nil
	return nil
}

func TestService_SignIn(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}

	svc, err := session.NewService(ctx, repo, "test-secret")
	require.NoError(t, err)

	_, _, err = svc.Current()
	assert.ErrorIs(t, err, session.ErrNotSignedIn)

	token, err := svc.SignIn(ctx, session.RoleLandlord, session.User{
		Name:  "Adithya",
		Email: "demo@rentcredit.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	role, user, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, session.RoleLandlord, role)
	assert.Equal(t, "Adithya", user.Name)

	// Both values were persisted on change.
	assert.Equal(t, session.RoleLandlord, repo.role)
	require.NotNil(t, repo.user)
	assert.Equal(t, "demo@rentcredit.com", repo.user.Email)
}

func TestService_TokenClaims(t *testing.T) {
	ctx := context.Background()

	svc, err := session.NewService(ctx, &memRepo{}, "test-secret")
	require.NoError(t, err)

	raw, err := svc.SignUp(ctx, session.RoleTenant, session.User{Name: "Priya", Email: "p@x.in"})
	require.NoError(t, err)

	token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "tenant", claims["role"])
	assert.Equal(t, "Priya", claims["name"])
}

func TestService_UnknownRole(t *testing.T) {
	ctx := context.Background()

	svc, err := session.NewService(ctx, &memRepo{}, "test-secret")
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, "admin", session.User{Name: "X"})
	assert.ErrorIs(t, err, session.ErrUnknownRole)
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{}

	svc, err := session.NewService(ctx, repo, "test-secret")
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, session.RoleTenant, session.User{Name: "Priya"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, _, err = svc.Current()
	assert.ErrorIs(t, err, session.ErrNotSignedIn)

	// Cleared together.
	assert.Empty(t, repo.role)
	assert.Nil(t, repo.user)
}

func TestService_LoadsPersistedSession(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{
		role: session.RoleTenant,
		user: &session.User{Name: "Priya"},
	}

	svc, err := session.NewService(ctx, repo, "test-secret")
	require.NoError(t, err)

	role, user, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, session.RoleTenant, role)
	assert.Equal(t, "Priya", user.Name)
}
