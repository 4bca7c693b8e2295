// Package session 实现基于 cookie 的登录会话：cookie 中是签名的 JWT，
// 服务端按 jti 保存会话记录，注销时删除记录使令牌立即失效
package session

import (
	"campus-connect/config"
	"campus-connect/internal/global/jwt"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

var Default *Manager

type Manager struct {
	store  Store
	secret []byte
	maxAge time.Duration
	cookie string
	secure bool
	now    func() time.Time
}

func NewManager(store Store, cfg config.Session) *Manager {
	cookie := cfg.CookieName
	if cookie == "" {
		cookie = "campus_session"
	}
	maxAge := time.Duration(cfg.MaxAge) * time.Second
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}
	return &Manager{
		store:  store,
		secret: []byte(cfg.Secret),
		maxAge: maxAge,
		cookie: cookie,
		secure: cfg.Secure,
		now:    time.Now,
	}
}

// Init 有 Redis 客户端时使用 RedisStore，否则退回内存存储
func Init(client *goredis.Client) *Manager {
	var store Store = NewMemoryStore()
	if client != nil {
		store = NewRedisStore(client)
	}
	Default = NewManager(store, config.Get().Session)
	return Default
}

func (m *Manager) CookieName() string {
	return m.cookie
}

// Start 为用户创建新会话并写入 cookie
func (m *Manager) Start(c *gin.Context, userID uint) error {
	id := uuid.NewString()
	if err := m.store.Save(c.Request.Context(), id, userID, m.maxAge); err != nil {
		return err
	}
	token, err := jwt.CreateToken(id, userID, m.secret, m.maxAge, m.now())
	if err != nil {
		return err
	}
	m.setCookie(c, token, int(m.maxAge.Seconds()))
	return nil
}

// Resolve 返回当前请求会话对应的用户 ID
func (m *Manager) Resolve(c *gin.Context) (uint, error) {
	claims, err := m.claims(c)
	if err != nil {
		return 0, err
	}
	userID, err := m.store.Load(c.Request.Context(), claims.Id)
	if err != nil {
		return 0, err
	}
	if userID != claims.UserID {
		return 0, ErrNotFound
	}
	return userID, nil
}

// End 删除服务端会话并清除 cookie；没有会话时也算成功
func (m *Manager) End(c *gin.Context) error {
	defer m.setCookie(c, "", -1)
	claims, err := m.claims(c)
	if err != nil {
		return nil
	}
	return m.store.Delete(c.Request.Context(), claims.Id)
}

func (m *Manager) claims(c *gin.Context) (*jwt.Claims, error) {
	token, err := c.Cookie(m.cookie)
	if err != nil || token == "" {
		return nil, ErrNotFound
	}
	claims, ok := jwt.ParseToken(token, m.secret)
	if !ok {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookie, value, maxAge, "/", "", m.secure, true)
}
