package test

import (
	"campus-connect/config"
	"campus-connect/internal/global/session"
)

// Sessions 使用内存存储的会话管理器
func Sessions() *session.Manager {
	return session.NewManager(session.NewMemoryStore(), config.Session{Secret: "test-secret", MaxAge: 3600})
}
