package response

import (
	"campus-connect/config"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type signupReq struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url"`
}

func TestErrorIsIgnoresDecorations(t *testing.T) {
	e := ErrNotFound.WithTips("Event not found").WithOrigin(errors.New("record not found"))
	require.ErrorIs(t, e, ErrNotFound)
	require.NotErrorIs(t, e, ErrForbidden)
	require.Equal(t, "Not found", ErrNotFound.Message)
	require.NotNil(t, e.StackTrace())
}

func TestFailWritesStatusAndFields(t *testing.T) {
	config.Set(config.Default())
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	Fail(c, Field("name", "A club with this name already exists"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.True(t, c.IsAborted())
	var body Error
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, []FieldError{{Field: "name", Message: "A club with this name already exists"}}, body.Fields)
}

func TestFailHidesOriginInRelease(t *testing.T) {
	cfg := config.Default()
	cfg.Mode = config.ModeRelease
	config.Set(cfg)
	defer config.Set(config.Default())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Fail(c, errors.New("dial tcp: refused"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "refused")
	require.Contains(t, w.Body.String(), "Internal server error")
}

func TestFromBindingProducesFieldErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"ab","imageUrl":"not a url"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req signupReq
	err := c.ShouldBindJSON(&req)
	require.Error(t, err)

	e := FromBinding(err)
	require.ErrorIs(t, e, ErrValidation)
	got := map[string]string{}
	for _, f := range e.Fields {
		got[f.Field] = f.Message
	}
	require.Equal(t, "username must be at least 3 characters", got["username"])
	require.Equal(t, "password is required", got["password"])
	require.Equal(t, "imageUrl must be a valid URL", got["imageUrl"])
}

func TestFromBindingMalformedJSON(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req signupReq
	require.ErrorIs(t, FromBinding(c.ShouldBindJSON(&req)), ErrInvalidRequest)
}

func TestRecoveryTurnsPanicInto500(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		defer Recovery(c)
		c.Next()
	})
	r.GET("/", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
