package test

import (
	"campus-connect/internal/global/response"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// ErrorEqual 断言响应是给定的错误（状态码与错误码一致）
func ErrorEqual(t *testing.T, expected *response.Error, w *httptest.ResponseRecorder) response.Error {
	t.Helper()
	require.Equal(t, int(expected.Code), w.Code, w.Body.String())
	body := Decode[response.Error](t, w)
	require.Equal(t, expected.Code, body.Code)
	return body
}
