package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkuznetsov/ssocore/internal/common"
	"github.com/mkuznetsov/ssocore/internal/gateway/client"
	"github.com/mkuznetsov/ssocore/internal/logging"
	"github.com/mkuznetsov/ssocore/internal/server/auth"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// fakeClient satisfies client.Client without a network.
type fakeClient struct {
	pingErr error

	registerID  int64
	registerErr error

	loginPair *client.TokenPair
	loginErr  error

	refreshPair *client.TokenPair
	refreshErr  error

	userInfo    *client.UserInfo
	userInfoErr error

	isAdmin    bool
	isAdminErr error

	updatePasswordErr error
	removeUserErr     error

	// captured
	lastBearer   string
	lastTargetID int64
	lastPassword string
	lastAppID    string
}

func (f *fakeClient) Connect() error                  { return nil }
func (f *fakeClient) Close() error                    { return nil }
func (f *fakeClient) WaitReady(context.Context) error { return nil }
func (f *fakeClient) Ping(ctx context.Context) error  { return f.pingErr }

func (f *fakeClient) Register(_ context.Context, login, email, fullName, password string) (int64, error) {
	return f.registerID, f.registerErr
}

func (f *fakeClient) Login(_ context.Context, login, password, appID string) (*client.TokenPair, error) {
	f.lastAppID = appID
	return f.loginPair, f.loginErr
}

func (f *fakeClient) Refresh(_ context.Context, refreshToken, appID string) (*client.TokenPair, error) {
	f.lastBearer = refreshToken
	f.lastAppID = appID
	return f.refreshPair, f.refreshErr
}

func (f *fakeClient) UserInfo(_ context.Context, userID int64) (*client.UserInfo, error) {
	f.lastTargetID = userID
	return f.userInfo, f.userInfoErr
}

func (f *fakeClient) IsAdmin(_ context.Context, userID int64) (bool, error) {
	return f.isAdmin, f.isAdminErr
}

func (f *fakeClient) UpdatePassword(_ context.Context, accessToken string, targetID int64, newPassword string) error {
	f.lastBearer = accessToken
	f.lastTargetID = targetID
	f.lastPassword = newPassword
	return f.updatePasswordErr
}

func (f *fakeClient) RemoveUser(_ context.Context, accessToken string, targetID int64) error {
	f.lastBearer = accessToken
	f.lastTargetID = targetID
	return f.removeUserErr
}

type apiFixture struct {
	api    *API
	fake   *fakeClient
	tokens *auth.TokenService
	srv    *httptest.Server
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	fake := &fakeClient{}
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour, 24*time.Hour)
	api := NewAPI(fake, tokens, "gateway", nopLogger{})

	srv := httptest.NewServer(api.Router())
	t.Cleanup(srv.Close)

	return &apiFixture{api: api, fake: fake, tokens: tokens, srv: srv}
}

func (f *apiFixture) accessToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := f.tokens.IssueAccess(userID, "")
	require.NoError(t, err)
	return token
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, f.srv.URL+path, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", common.BearerPrefix+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestPing(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	f.fake.pingErr = common.ErrorUnavailable
	resp = f.do(t, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRegister_Created(t *testing.T) {
	f := newAPIFixture(t)
	f.fake.registerID = 7

	resp := f.do(t, http.MethodPost, "/api/v1/auth/register", "", registerRequest{
		Login: "alice", Email: "alice@example.com", Password: "s3cret!",
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode[map[string]int64](t, resp)
	assert.Equal(t, int64(7), body["user_id"])
}

func TestRegister_DuplicateLogin(t *testing.T) {
	f := newAPIFixture(t)
	f.fake.registerErr = common.ErrorLoginAlreadyExists

	resp := f.do(t, http.MethodPost, "/api/v1/auth/register", "", registerRequest{
		Login: "alice", Password: "s3cret!",
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegister_BadBody(t *testing.T) {
	f := newAPIFixture(t)

	req, err := http.NewRequest(http.MethodPost, f.srv.URL+"/api/v1/auth/register", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin_OK(t *testing.T) {
	f := newAPIFixture(t)
	f.fake.loginPair = &client.TokenPair{AccessToken: "A1", RefreshToken: "R1"}

	resp := f.do(t, http.MethodPost, "/api/v1/auth/login", "", loginRequest{Login: "alice", Password: "s3cret!"})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[tokenPairResponse](t, resp)
	assert.Equal(t, "A1", body.AccessToken)
	assert.Equal(t, "R1", body.RefreshToken)
	assert.Equal(t, "gateway", f.fake.lastAppID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newAPIFixture(t)
	f.fake.loginErr = common.ErrorInvalidCredentials

	resp := f.do(t, http.MethodPost, "/api/v1/auth/login", "", loginRequest{Login: "alice", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "unauthorized", body["error"])
}

func TestRefresh_OK(t *testing.T) {
	f := newAPIFixture(t)
	f.fake.refreshPair = &client.TokenPair{AccessToken: "A2", RefreshToken: "R2"}

	resp := f.do(t, http.MethodPost, "/api/v1/auth/refresh", "", refreshRequest{RefreshToken: "R1"})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "R1", f.fake.lastBearer)
	assert.Equal(t, "gateway", f.fake.lastAppID)
}

func TestRefresh_MissingToken(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/api/v1/auth/refresh", "", refreshRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdatePassword_RequiresAuth(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/api/v1/auth/password", "", updatePasswordRequest{NewPassword: "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = f.do(t, http.MethodPost, "/api/v1/auth/password", "garbage-token", updatePasswordRequest{NewPassword: "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpdatePassword_DefaultsToSelf(t *testing.T) {
	f := newAPIFixture(t)
	token := f.accessToken(t, 42)

	resp := f.do(t, http.MethodPost, "/api/v1/auth/password", token, updatePasswordRequest{NewPassword: "n3w-pass"})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(42), f.fake.lastTargetID)
	assert.Equal(t, "n3w-pass", f.fake.lastPassword)
	assert.Equal(t, token, f.fake.lastBearer)
}

func TestUpdatePassword_OtherUserForbidden(t *testing.T) {
	f := newAPIFixture(t)
	f.fake.updatePasswordErr = common.ErrorForbidden
	token := f.accessToken(t, 42)

	resp := f.do(t, http.MethodPost, "/api/v1/auth/password", token, updatePasswordRequest{UserID: 7, NewPassword: "x"})

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, int64(7), f.fake.lastTargetID)
}

func TestUserInfo_Self(t *testing.T) {
	f := newAPIFixture(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.fake.userInfo = &client.UserInfo{ID: 42, Login: "alice", CreatedAt: created}
	token := f.accessToken(t, 42)

	resp := f.do(t, http.MethodGet, "/api/v1/users/42", token, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[userInfoResponse](t, resp)
	assert.Equal(t, int64(42), body.UserID)
	assert.Equal(t, "alice", body.Login)
	assert.True(t, body.CreatedAt.Equal(created))
}

func TestUserInfo_OtherUser_NotAdmin(t *testing.T) {
	f := newAPIFixture(t)
	token := f.accessToken(t, 42)

	resp := f.do(t, http.MethodGet, "/api/v1/users/7", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUserInfo_OtherUser_AsAdmin(t *testing.T) {
	f := newAPIFixture(t)
	f.fake.isAdmin = true
	f.fake.userInfo = &client.UserInfo{ID: 7, Login: "bob"}
	token := f.accessToken(t, 42)

	resp := f.do(t, http.MethodGet, "/api/v1/users/7", token, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(7), f.fake.lastTargetID)
}

func TestUserInfo_BadID(t *testing.T) {
	f := newAPIFixture(t)
	token := f.accessToken(t, 42)

	resp := f.do(t, http.MethodGet, "/api/v1/users/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRemoveUser_ForwardsBearer(t *testing.T) {
	f := newAPIFixture(t)
	token := f.accessToken(t, 42)

	resp := f.do(t, http.MethodDelete, "/api/v1/users/7", token, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(7), f.fake.lastTargetID)
	assert.Equal(t, token, f.fake.lastBearer)
}

func TestRemoveUser_RemoteForbidden(t *testing.T) {
	f := newAPIFixture(t)
	f.fake.removeUserErr = common.ErrorForbidden
	token := f.accessToken(t, 42)

	resp := f.do(t, http.MethodDelete, "/api/v1/users/7", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestWriteError_UnknownErrorIsInternal(t *testing.T) {
	f := newAPIFixture(t)
	f.fake.registerErr = context.DeadlineExceeded

	resp := f.do(t, http.MethodPost, "/api/v1/auth/register", "", registerRequest{Login: "alice", Password: "x"})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "internal error", body["error"])
}
