package middleware

import (
	"campus-connect/internal/global/context"
	"campus-connect/internal/global/response"
	"campus-connect/internal/global/session"
	"campus-connect/internal/model"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Auth 解析会话 cookie 并加载当前用户，未登录返回 401
func Auth(sessions *session.Manager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := sessions.Resolve(c)
		if err != nil {
			response.Fail(c, response.ErrUnauthorized)
			return
		}

		var user model.User
		err = db.WithContext(c.Request.Context()).First(&user, userID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Fail(c, response.ErrUnauthorized)
			return
		case err != nil:
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}

		context.SetUser(c, &user)
		c.Next()
	}
}

// Admin 必须放在 Auth 之后，非管理员返回 403
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := context.GetUser(c)
		if !ok {
			response.Fail(c, response.ErrUnauthorized)
			return
		}
		if !user.IsAdmin() {
			response.Fail(c, response.ErrForbidden)
			return
		}
		c.Next()
	}
}
