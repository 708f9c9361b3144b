package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sstarkov/styleshop/internal/models"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"username": "ana",
		"email":    "a@x.com",
		"password": "pw",
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", payload)
	require.NoError(t, env.Auth.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.Equal(t, true, resp["success"])
	require.NotEmpty(t, resp["token"])

	user := resp["user"].(map[string]interface{})
	require.Equal(t, "ana", user["username"])
	require.Equal(t, "a@x.com", user["email"])
	require.NotEmpty(t, user["id"])
	require.NotContains(t, user, "passwordHash")

	var stored models.User
	require.NoError(t, env.DB.Where("username = ?", "ana").First(&stored).Error)
	require.NotEqual(t, "pw", stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "ana", "a@x.com", "pw")

	payload := map[string]string{
		"username": "someone_else",
		"email":    "a@x.com",
		"password": "pw",
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", payload)
	require.NoError(t, env.Auth.Register(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.Equal(t, false, resp["success"])
	require.Equal(t, "Email already exists", resp["error"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "ana", "a@x.com", "pw")

	payload := map[string]string{
		"username": "ana",
		"email":    "other@x.com",
		"password": "pw",
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", payload)
	require.NoError(t, env.Auth.Register(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.Equal(t, "Username already exists", resp["error"])
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "ana", "a@x.com", "pw")

	payload := map[string]string{"email": "a@x.com", "password": "pw"}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", payload)
	require.NoError(t, env.Auth.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.Equal(t, true, resp["success"])
	require.NotEmpty(t, resp["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "ana", "a@x.com", "pw")

	// same answer whether the email exists or not
	for _, payload := range []map[string]string{
		{"email": "a@x.com", "password": "wrong"},
		{"email": "nobody@x.com", "password": "pw"},
	} {
		rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", payload)
		require.NoError(t, env.Auth.Login(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		resp := decodeEnvelope(t, rec)
		require.Equal(t, false, resp["success"])
		require.Equal(t, "Invalid credentials", resp["error"])
	}
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "ana", "a@x.com", "pw")

	rec, c := env.doJSONRequest(http.MethodGet, "/api/auth/me", nil)
	env.asUser(t, c, user.ID)
	require.NoError(t, env.Auth.Me(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope(t, rec)
	got := resp["user"].(map[string]interface{})
	require.Equal(t, "ana", got["username"])
}

func TestMeUserGone(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/auth/me", nil)
	env.asUser(t, c, 12345)
	require.NoError(t, env.Auth.Me(c))
	require.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.Equal(t, "User not found", resp["error"])
}
