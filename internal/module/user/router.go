package user

import (
	"github.com/gin-gonic/gin"
)

// InitRouter 挂载注册、登录、注销和当前用户接口
func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	u.h.Routes(r, u.auth())
}

func (h *Handler) Routes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	r.GET("/user", auth, h.Current)
}
