package user

import (
	"campus-connect/internal/global/middleware"
	"campus-connect/internal/global/response"
	"campus-connect/internal/model"
	"campus-connect/test"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newClient(t *testing.T) (*test.Client, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db := test.NewDB(t)
	sessions := test.Sessions()
	r := gin.New()
	NewHandler(db, sessions).Routes(r.Group("/api"), middleware.Auth(sessions, db))
	return test.NewClient(t, r), db
}

func TestRegisterStartsSession(t *testing.T) {
	client, db := newClient(t)

	w := client.Do(http.MethodPost, "/api/register", gin.H{"username": "alice", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := test.Decode[map[string]any](t, w)
	require.Equal(t, "alice", created["username"])
	require.Equal(t, string(model.RoleStudent), created["role"])
	require.NotContains(t, created, "password")

	w = client.Do(http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "alice", test.Decode[model.User](t, w).Username)

	var stored model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)
	require.NotEqual(t, "secret1", stored.Password)
}

func TestRegisterValidation(t *testing.T) {
	client, _ := newClient(t)

	w := client.Do(http.MethodPost, "/api/register", gin.H{"username": "al", "password": "123"})
	body := test.ErrorEqual(t, response.ErrValidation, w)
	require.ElementsMatch(t, []response.FieldError{
		{Field: "username", Message: "username must be at least 3 characters"},
		{Field: "password", Message: "password must be at least 6 characters"},
	}, body.Fields)

	w = client.Do(http.MethodPost, "/api/register", gin.H{"username": "alice", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = client.Do(http.MethodPost, "/api/register", gin.H{"username": "alice", "password": "another"})
	body = test.ErrorEqual(t, response.ErrValidation, w)
	require.Equal(t, []response.FieldError{{Field: "username", Message: "Username already exists"}}, body.Fields)
}

func TestLoginLogout(t *testing.T) {
	client, db := newClient(t)
	test.CreateUser(t, db, "bob", model.RoleAdmin)

	w := client.Do(http.MethodPost, "/api/login", gin.H{"username": "bob", "password": "wrong-password"})
	test.ErrorEqual(t, response.ErrInvalidCredentials, w)
	w = client.Do(http.MethodPost, "/api/login", gin.H{"username": "nobody", "password": test.Password})
	test.ErrorEqual(t, response.ErrInvalidCredentials, w)

	test.ErrorEqual(t, response.ErrUnauthorized, client.Do(http.MethodGet, "/api/user", nil))

	client.Login("/api/login", "bob", test.Password)
	w = client.Do(http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, model.RoleAdmin, test.Decode[model.User](t, w).Role)

	w = client.Do(http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	test.ErrorEqual(t, response.ErrUnauthorized, client.Do(http.MethodGet, "/api/user", nil))

	// 没有会话时注销也成功
	require.Equal(t, http.StatusOK, client.Do(http.MethodPost, "/api/logout", nil).Code)
}
