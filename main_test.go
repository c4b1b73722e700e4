package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gin-accounts/dto"
	"gin-accounts/infra"
	"gin-accounts/models"
	"gin-accounts/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// mailbox captures queued mail so tests can read the verification link.
type mailbox struct {
	mails []services.Mail
}

func (b *mailbox) Enqueue(mail services.Mail) {
	b.mails = append(b.mails, mail)
}

func setupTestServer(t *testing.T) (*gin.Engine, *mailbox) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &infra.Config{
		SecretKey: "super-secret",
		Algorithm: "HS256",
		ServerURI: "http://localhost:8080",
		Port:      "8080",
	}

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))

	mail, err := services.NewMailService(cfg)
	require.NoError(t, err)
	box := &mailbox{}

	r, err := setupRouter(db, cfg, mail, box)
	require.NoError(t, err)
	return r, box
}

func doRequest(r *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signupAlice(t *testing.T, r *gin.Engine) {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/users/signin",
		`{"username":"alice","email":"alice@x.com","password":"longenough1"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
}

// tokenFromMail pulls the verification token out of the plaintext fallback.
func tokenFromMail(t *testing.T, mail services.Mail) string {
	t.Helper()
	idx := strings.Index(mail.Fallback, "token=")
	require.GreaterOrEqual(t, idx, 0)
	token, err := url.QueryUnescape(mail.Fallback[idx+len("token="):])
	require.NoError(t, err)
	return token
}

func TestLiveness(t *testing.T) {
	r, _ := setupTestServer(t)

	w := doRequest(r, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestSignupVerifyLoginFlow(t *testing.T) {
	r, box := setupTestServer(t)

	signupAlice(t, r)
	require.Len(t, box.mails, 1)
	token := tokenFromMail(t, box.mails[0])

	w := doRequest(r, http.MethodGet, "/users/verify?token="+url.QueryEscape(token), "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@x.com")

	w = doRequest(r, http.MethodPost, "/users/login",
		`{"email":"alice@x.com","password":"longenough1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.AccessToken)

	w = doRequest(r, http.MethodGet, "/users/test", "", login.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	var me dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "alice", me.Username)
	assert.Equal(t, "alice@x.com", me.Email)
	assert.Equal(t, dto.PasswordPlaceholder, me.Password)
	assert.True(t, me.Verified)
}

func TestSignupValidation(t *testing.T) {
	r, _ := setupTestServer(t)

	// Password shorter than 8 characters.
	w := doRequest(r, http.MethodPost, "/users/signin",
		`{"username":"alice","email":"alice@x.com","password":"short"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email.
	w = doRequest(r, http.MethodPost, "/users/signin",
		`{"username":"alice","email":"not-an-email","password":"longenough1"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate email.
	signupAlice(t, r)
	w = doRequest(r, http.MethodPost, "/users/signin",
		`{"username":"impostor","email":"alice@x.com","password":"longenough1"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	r, box := setupTestServer(t)
	signupAlice(t, r)
	token := tokenFromMail(t, box.mails[0])

	w := doRequest(r, http.MethodGet, "/users/verify", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]
	w = doRequest(r, http.MethodGet, "/users/verify?token="+url.QueryEscape(tampered), "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token credentials")
}

func TestLoginFailuresLookIdentical(t *testing.T) {
	r, _ := setupTestServer(t)
	signupAlice(t, r)

	wrongPassword := doRequest(r, http.MethodPost, "/users/login",
		`{"email":"alice@x.com","password":"wrongpassword"}`, "")
	unknownEmail := doRequest(r, http.MethodPost, "/users/login",
		`{"email":"ghost@x.com","password":"longenough1"}`, "")

	assert.Equal(t, http.StatusNotFound, wrongPassword.Code)
	assert.Equal(t, http.StatusNotFound, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestCurrentUserRequiresToken(t *testing.T) {
	r, _ := setupTestServer(t)
	signupAlice(t, r)

	w := doRequest(r, http.MethodGet, "/users/test", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/users/test", "", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// The middleware's 401 body must match the translator's token failure
	// word for word.
	verify := doRequest(r, http.MethodGet, "/users/verify?token=garbage", "", "")
	require.Equal(t, http.StatusUnauthorized, verify.Code)
	assert.Equal(t, verify.Body.String(), w.Body.String())
}

func TestDeleteFreesEmailForSignup(t *testing.T) {
	r, _ := setupTestServer(t)
	signupAlice(t, r)

	w := doRequest(r, http.MethodDelete, "/users/id/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	signupAlice(t, r)
}

func TestUserCrud(t *testing.T) {
	r, _ := setupTestServer(t)
	signupAlice(t, r)

	w := doRequest(r, http.MethodGet, "/users/id/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, dto.PasswordPlaceholder, user.Password)

	// Partial update: only the email changes.
	w = doRequest(r, http.MethodPut, "/users/id/1", `{"email":"alice@y.com"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "alice@y.com", user.Email)
	assert.Equal(t, "alice", user.Username)

	w = doRequest(r, http.MethodDelete, "/users/id/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "alice@y.com", user.Email)

	w = doRequest(r, http.MethodGet, "/users/id/1", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodGet, "/users/id/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
