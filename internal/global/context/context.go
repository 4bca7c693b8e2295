package context

import (
	"campus-connect/internal/model"

	"github.com/gin-gonic/gin"
)

// UserKey 认证中间件把当前用户放在 gin.Context 的这个键下
const UserKey = "user"

func SetUser(c *gin.Context, user *model.User) {
	c.Set(UserKey, user)
}

func GetUser(c *gin.Context) (user *model.User, exist bool) {
	v, _ := c.Get(UserKey)
	user, exist = v.(*model.User)
	return
}
