package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkuznetsov/ssocore/internal/common"
	"github.com/mkuznetsov/ssocore/internal/cryptox"
	"github.com/mkuznetsov/ssocore/internal/dbx"
	"github.com/mkuznetsov/ssocore/internal/logging"
	"github.com/mkuznetsov/ssocore/internal/server/auth"
	"github.com/mkuznetsov/ssocore/internal/server/users"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// fakeRepo keeps users in memory and reproduces the repository's sentinel
// error contract.
type fakeRepo struct {
	nextID int64
	byID   map[int64]*users.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, byID: map[int64]*users.User{}}
}

func (r *fakeRepo) ExistsByLogin(_ context.Context, login string) (bool, error) {
	for _, u := range r.byID {
		if u.Login == login {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) Create(_ context.Context, user *users.User) (*users.User, error) {
	for _, u := range r.byID {
		if u.Login == user.Login {
			return nil, common.ErrorLoginAlreadyExists
		}
	}
	u := *user
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.nextID++
	r.byID[u.ID] = &u
	return &u, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*users.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeRepo) GetByLogin(_ context.Context, login string) (*users.User, error) {
	for _, u := range r.byID {
		if u.Login == login {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeRepo) UpdatePasswordHash(_ context.Context, id int64, newHash string) error {
	u, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash = newHash
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}

// fakeManager hands out the in-memory repository; the *sql.DB comes from
// sqlmock so transactional paths still exercise begin/commit/rollback.
type fakeManager struct {
	db   *sql.DB
	repo users.Repository
}

func (m *fakeManager) RunMigrations(context.Context) error { return nil }
func (m *fakeManager) Conn() *sql.DB                       { return m.db }
func (m *fakeManager) Users(dbx.DBTX) users.Repository     { return m.repo }
func (m *fakeManager) Close() error                        { return nil }

type fixture struct {
	svc    *UserService
	repo   *fakeRepo
	tokens *auth.TokenService
	mock   sqlmock.Sqlmock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := newFakeRepo()
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour, 24*time.Hour)
	svc := NewUserService(&fakeManager{db: db, repo: repo}, cryptox.NewHasher(4), tokens, nopLogger{})

	return &fixture{svc: svc, repo: repo, tokens: tokens, mock: mock}
}

func (f *fixture) mustRegister(t *testing.T, login, password string, admin bool) *users.User {
	t.Helper()
	u, err := f.svc.Register(context.Background(), login, login+"@example.com", "", password)
	require.NoError(t, err)
	if admin {
		f.repo.byID[u.ID].IsAdmin = true
	}
	return u
}

func TestRegister_OK(t *testing.T) {
	f := newFixture(t)

	u, err := f.svc.Register(context.Background(), "alice", "alice@example.com", "Alice A.", "s3cret!")
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "alice", u.Login)
	assert.NotEqual(t, "s3cret!", u.PasswordHash)
	assert.True(t, cryptox.NewHasher(4).Verify("s3cret!", u.PasswordHash))
}

func TestRegister_DuplicateLogin(t *testing.T) {
	f := newFixture(t)
	f.mustRegister(t, "alice", "s3cret!", false)

	_, err := f.svc.Register(context.Background(), "alice", "other@example.com", "", "other")
	assert.ErrorIs(t, err, common.ErrorLoginAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Register(context.Background(), "", "", "", "pwd")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = f.svc.Register(context.Background(), "bob", "", "", "")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestLogin_OK(t *testing.T) {
	f := newFixture(t)
	u := f.mustRegister(t, "alice", "s3cret!", false)

	pair, err := f.svc.Login(context.Background(), "alice", "s3cret!", "gateway")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	id, err := f.tokens.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t)
	f.mustRegister(t, "alice", "s3cret!", false)

	_, err := f.svc.Login(context.Background(), "alice", "wrong", "")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
}

func TestLogin_UnknownLogin(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Login(context.Background(), "ghost", "whatever", "")
	// indistinguishable from a wrong password
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
}

func TestRefresh_OK(t *testing.T) {
	f := newFixture(t)
	u := f.mustRegister(t, "alice", "s3cret!", false)

	pair, err := f.svc.Login(context.Background(), "alice", "s3cret!", "gateway")
	require.NoError(t, err)

	fresh, err := f.svc.Refresh(context.Background(), pair.RefreshToken, "gateway")
	require.NoError(t, err)

	id, err := f.tokens.VerifyAccess(fresh.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	f := newFixture(t)
	f.mustRegister(t, "alice", "s3cret!", false)

	pair, err := f.svc.Login(context.Background(), "alice", "s3cret!", "gateway")
	require.NoError(t, err)

	_, err = f.svc.Refresh(context.Background(), pair.AccessToken, "gateway")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefresh_AudienceMismatch(t *testing.T) {
	f := newFixture(t)
	f.mustRegister(t, "alice", "s3cret!", false)

	pair, err := f.svc.Login(context.Background(), "alice", "s3cret!", "gateway")
	require.NoError(t, err)

	_, err = f.svc.Refresh(context.Background(), pair.RefreshToken, "other-app")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefresh_RemovedUser(t *testing.T) {
	f := newFixture(t)
	u := f.mustRegister(t, "alice", "s3cret!", false)

	pair, err := f.svc.Login(context.Background(), "alice", "s3cret!", "")
	require.NoError(t, err)

	delete(f.repo.byID, u.ID)

	_, err = f.svc.Refresh(context.Background(), pair.RefreshToken, "")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestGetUser_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetUser(context.Background(), 404)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestIsAdmin(t *testing.T) {
	f := newFixture(t)
	regular := f.mustRegister(t, "alice", "s3cret!", false)
	admin := f.mustRegister(t, "root", "s3cret!", true)

	got, err := f.svc.IsAdmin(context.Background(), regular.ID)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = f.svc.IsAdmin(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestUpdatePassword_Self(t *testing.T) {
	f := newFixture(t)
	u := f.mustRegister(t, "alice", "s3cret!", false)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	err := f.svc.UpdatePassword(context.Background(), u.ID, u.ID, "n3w-pass")
	require.NoError(t, err)

	_, err = f.svc.Login(context.Background(), "alice", "s3cret!", "")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)

	_, err = f.svc.Login(context.Background(), "alice", "n3w-pass", "")
	assert.NoError(t, err)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestUpdatePassword_OtherUserNotAdmin(t *testing.T) {
	f := newFixture(t)
	caller := f.mustRegister(t, "alice", "s3cret!", false)
	target := f.mustRegister(t, "bob", "s3cret!", false)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	err := f.svc.UpdatePassword(context.Background(), caller.ID, target.ID, "n3w-pass")
	assert.ErrorIs(t, err, common.ErrorForbidden)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestUpdatePassword_OtherUserAsAdmin(t *testing.T) {
	f := newFixture(t)
	admin := f.mustRegister(t, "root", "s3cret!", true)
	target := f.mustRegister(t, "bob", "s3cret!", false)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	err := f.svc.UpdatePassword(context.Background(), admin.ID, target.ID, "n3w-pass")
	require.NoError(t, err)

	_, err = f.svc.Login(context.Background(), "bob", "n3w-pass", "")
	assert.NoError(t, err)
}

func TestUpdatePassword_TargetMissing(t *testing.T) {
	f := newFixture(t)
	admin := f.mustRegister(t, "root", "s3cret!", true)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	err := f.svc.UpdatePassword(context.Background(), admin.ID, 404, "n3w-pass")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdatePassword_EmptyPassword(t *testing.T) {
	f := newFixture(t)
	u := f.mustRegister(t, "alice", "s3cret!", false)

	err := f.svc.UpdatePassword(context.Background(), u.ID, u.ID, "")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestRemoveUser_AsAdmin(t *testing.T) {
	f := newFixture(t)
	admin := f.mustRegister(t, "root", "s3cret!", true)
	target := f.mustRegister(t, "bob", "s3cret!", false)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	err := f.svc.RemoveUser(context.Background(), admin.ID, target.ID)
	require.NoError(t, err)

	_, err = f.svc.GetUser(context.Background(), target.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRemoveUser_NotAdmin(t *testing.T) {
	f := newFixture(t)
	caller := f.mustRegister(t, "alice", "s3cret!", false)
	target := f.mustRegister(t, "bob", "s3cret!", false)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	err := f.svc.RemoveUser(context.Background(), caller.ID, target.ID)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	_, err = f.svc.GetUser(context.Background(), target.ID)
	assert.NoError(t, err)
}
