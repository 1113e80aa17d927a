package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return &Service{Repo: NewMemoryRepository()}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	u, err := svc.Register(ctx, RegisterInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.Greater(t, u.ID, int64(0))
	require.NotEqual(t, "correct horse", u.PasswordHash)
	require.False(t, u.RegisteredAt.IsZero())

	got, err := svc.Authenticate(ctx, "ana@example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = svc.Authenticate(ctx, "ana@example.com", "wrong password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	// Same error as a wrong password: no account enumeration.
	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	first, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "Other", Email: "ana@example.com", Password: "password2"})
	require.ErrorIs(t, err, ErrEmailTaken)

	// Exactly the first registration persists.
	got, err := svc.Repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
	require.Equal(t, "Ana", got.Name)
}

func TestRegister_InvalidInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	cases := []RegisterInput{
		{Name: "", Email: "a@example.com", Password: "longenough"},
		{Name: "Ana", Email: "", Password: "longenough"},
		{Name: "Ana", Email: "a@example.com", Password: "short"},
	}
	for _, in := range cases {
		_, err := svc.Register(ctx, in)
		require.ErrorIs(t, err, ErrInvalidInput)
	}
}
