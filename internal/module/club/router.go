package club

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) Routes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	clubGroup := r.Group("/clubs")
	clubGroup.Use(auth)
	{
		clubGroup.GET("", h.List)
		clubGroup.GET("/categories", h.Categories)
		clubGroup.GET("/:id", h.Get)

		// 加入社团，重复加入返回已有记录
		clubGroup.POST("/:id/join", h.Join)
	}
}
