package tools

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newContext(target string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestGetPage(t *testing.T) {
	cases := []struct {
		query         string
		limit, offset int
	}{
		{"", 10, 0},
		{"?limit=5&offset=20", 5, 20},
		{"?limit=abc&offset=-3", 10, 0},
		{"?limit=0", 10, 0},
		{"?limit=1000", 100, 0},
	}
	for _, tc := range cases {
		limit, offset := GetPage(newContext("/x"+tc.query), 10, 100)
		require.Equal(t, tc.limit, limit, tc.query)
		require.Equal(t, tc.offset, offset, tc.query)
	}
}

func TestParamID(t *testing.T) {
	c := newContext("/x")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, err := ParamID(c, "id")
	require.NoError(t, err)
	require.EqualValues(t, 42, id)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		c.Params = gin.Params{{Key: "id", Value: bad}}
		_, err := ParamID(c, "id")
		require.Error(t, err, bad)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2026-03-15T18:30:00+08:00")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC), d)
	require.Equal(t, time.UTC, d.Location())

	_, err = ParseDate("15/03/2026")
	require.Error(t, err)
}
