package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordEncrypt(t *testing.T) {
	hash := PasswordEncrypt("student123")
	require.NotEqual(t, "student123", hash)
	require.True(t, PasswordCompare("student123", hash))
	require.False(t, PasswordCompare("student124", hash))

	// 同一密码两次加密结果不同（带盐）
	require.NotEqual(t, hash, PasswordEncrypt("student123"))
}
