package service

import (
	"context"
	"testing"

	"github.com/NaniCherry131202/Internship-Task/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAccountRepo implements AccountRepository in memory.
type fakeAccountRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (f *fakeAccountRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) UserByID(ctx context.Context, id string) (*models.User, error) {
	return f.byID[id], nil
}

func (f *fakeAccountRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func TestRegister(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	user, err := svc.Register(context.Background(), "  A@X.com ", "pw1", "Alice", " US ")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "US", user.Country)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "pw1", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	_, err := svc.Register(context.Background(), "a@x.com", "pw1", "Alice", "US")
	require.NoError(t, err)

	// Same address with different casing is still a duplicate.
	_, err = svc.Register(context.Background(), "A@X.COM", "pw2", "Alice Again", "US")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	tests := []struct {
		name     string
		email    string
		password string
		userName string
	}{
		{name: "empty email", email: "  ", password: "pw1", userName: "Alice"},
		{name: "empty password", email: "a@x.com", password: "", userName: "Alice"},
		{name: "empty name", email: "a@x.com", password: "pw1", userName: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.email, tt.password, tt.userName, "US")

			var validation *ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	registered, err := svc.Register(context.Background(), "a@x.com", "pw1", "Alice", "US")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	_, err := svc.Authenticate(context.Background(), "nobody@x.com", "pw1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	_, err := svc.Register(context.Background(), "a@x.com", "pw1", "Alice", "US")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
