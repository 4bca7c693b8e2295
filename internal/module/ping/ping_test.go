package ping

import (
	"campus-connect/internal/global/database"
	"campus-connect/internal/global/response"
	"campus-connect/test"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	database.DB = test.NewDB(t)
	t.Cleanup(func() { database.DB = nil })

	r := gin.New()
	(&ModulePing{}).InitRouter(r.Group("/api"))
	client := test.NewClient(t, r)

	w := client.Do(http.MethodGet, "/api/ping", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"pong","version":"1.0.0"}`, w.Body.String())

	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	test.ErrorEqual(t, response.ErrUnavailable, client.Do(http.MethodGet, "/api/ping", nil))
}
