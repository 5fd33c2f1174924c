package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/petshop/pkg/security/password"
)

type fakeUserRepo struct {
	byEmail map[string]User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]User)}
}

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

func (r *fakeUserRepo) Update(_ context.Context, u User) error {
	for email, existing := range r.byEmail {
		if existing.ID == u.ID {
			delete(r.byEmail, email)
			r.byEmail[u.Email] = u
			return nil
		}
	}
	return ErrNotFound
}

type staticTokens struct{ token string }

func (t staticTokens) Generate(_ context.Context, _ User) (string, error) {
	return t.token, nil
}

func newTestService() (UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewService(repo, staticTokens{token: "tok"}), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	res, err := svc.Register(ctx, "user@example.com", "pass123")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", res.User.Email)
	assert.NotEqual(t, uuid.Nil, res.User.ID)
	assert.True(t, res.User.IsActive)
	assert.False(t, res.User.IsSuperuser)
	assert.NotEqual(t, "pass123", res.User.HashedPassword)
	assert.Equal(t, "tok", res.Token)

	logged, err := svc.Login(ctx, "user@example.com", "pass123")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, logged.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "dup@example.com", "pass123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "dup@example.com", "other")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "known@example.com", "right-pass")
	require.NoError(t, err)

	_, wrongPass := svc.Login(ctx, "known@example.com", "wrong-pass")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "whatever")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknownEmail.Error())
}

func TestLoginInactiveUser(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	res, err := svc.Register(ctx, "sleepy@example.com", "pass123")
	require.NoError(t, err)

	inactive := false
	_, err = svc.UpdateUser(ctx, res.User, UserUpdate{IsActive: &inactive})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "sleepy@example.com", "pass123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserSuperuser(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "root@example.com", "rootpass", true)
	require.NoError(t, err)
	assert.True(t, u.IsSuperuser)

	stored, err := repo.GetByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.True(t, password.Verify("rootpass", stored.HashedPassword))
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	res, err := svc.Register(ctx, "rotate@example.com", "old-pass")
	require.NoError(t, err)
	oldDigest := res.User.HashedPassword

	newPass := "new-pass"
	updated, err := svc.UpdateUser(ctx, res.User, UserUpdate{Password: &newPass})
	require.NoError(t, err)

	assert.NotEqual(t, oldDigest, updated.HashedPassword)
	assert.NotEqual(t, "new-pass", updated.HashedPassword)

	stored, err := repo.GetByEmail(ctx, "rotate@example.com")
	require.NoError(t, err)
	assert.True(t, password.Verify("new-pass", stored.HashedPassword))

	_, err = svc.Login(ctx, "rotate@example.com", "old-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "rotate@example.com", "new-pass")
	assert.NoError(t, err)
}

func TestUpdateUserLeavesOtherFieldsAlone(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	res, err := svc.Register(ctx, "keep@example.com", "pass123")
	require.NoError(t, err)

	superuser := true
	updated, err := svc.UpdateUser(ctx, res.User, UserUpdate{IsSuperuser: &superuser})
	require.NoError(t, err)

	assert.Equal(t, res.User.Email, updated.Email)
	assert.Equal(t, res.User.HashedPassword, updated.HashedPassword)
	assert.True(t, updated.IsActive)
	assert.True(t, updated.IsSuperuser)
}
