package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mcdev12/pelada/go/internal/apperr"
	"github.com/mcdev12/pelada/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	users map[uuid.UUID]models.User
}

func newTestApp() (*App, *fakeRepo) {
	repo := &fakeRepo{users: map[uuid.UUID]models.User{}}
	app := NewApp(repo)
	app.hashCost = bcrypt.MinCost
	return app, repo
}

func (f *fakeRepo) CreateUser(_ context.Context, username, email, passwordHash string) (*models.User, error) {
	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.UserRoleOrganizer,
		Active:       true,
	}
	f.users[user.ID] = user
	return &user, nil
}

func (f *fakeRepo) GetUser(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperr.NotFound("user", id)
	}
	return &user, nil
}

func (f *fakeRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, apperr.NotFound("user", username)
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperr.NotFound("user", email)
}

func TestRegister(t *testing.T) {
	app, _ := newTestApp()
	ctx := context.Background()

	user, err := app.Register(ctx, RegisterRequest{Username: " telê ", Email: "Tele@Selecao.com.br", Password: "futebol-arte"})
	require.NoError(t, err)
	assert.Equal(t, "telê", user.Username)
	assert.Equal(t, "tele@selecao.com.br", user.Email)
	assert.Equal(t, models.UserRoleOrganizer, user.Role)
	assert.NotEqual(t, "futebol-arte", user.PasswordHash)

	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{"taken username", RegisterRequest{Username: "telê", Email: "outro@x.com", Password: "123456"}, apperr.ErrUsernameTaken},
		{"taken email", RegisterRequest{Username: "outro", Email: "tele@selecao.com.br", Password: "123456"}, apperr.ErrEmailTaken},
		{"missing username", RegisterRequest{Email: "a@b.com", Password: "123456"}, apperr.ErrValidation},
		{"bad email", RegisterRequest{Username: "a", Email: "sem-arroba.com", Password: "123456"}, apperr.ErrValidation},
		{"short password", RegisterRequest{Username: "a", Email: "a@b.com", Password: "12345"}, apperr.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.Register(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	app, repo := newTestApp()
	ctx := context.Background()

	user, err := app.Register(ctx, RegisterRequest{Username: "parreira", Email: "cap@x.com", Password: "tetra1994"})
	require.NoError(t, err)

	got, err := app.Authenticate(ctx, AuthenticateRequest{Username: "parreira", Password: "tetra1994"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = app.Authenticate(ctx, AuthenticateRequest{Username: "parreira", Password: "penta2002"})
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = app.Authenticate(ctx, AuthenticateRequest{Username: "zagallo", Password: "tetra1994"})
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	inactive := repo.users[user.ID]
	inactive.Active = false
	repo.users[user.ID] = inactive
	_, err = app.Authenticate(ctx, AuthenticateRequest{Username: "parreira", Password: "tetra1994"})
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestGetUser(t *testing.T) {
	app, _ := newTestApp()

	_, err := app.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
