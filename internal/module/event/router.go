package event

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) Routes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	eventGroup := r.Group("/events")
	eventGroup.Use(auth)
	{
		eventGroup.GET("", h.List)
		eventGroup.GET("/upcoming", h.Upcoming)
		eventGroup.GET("/categories", h.Categories)
		eventGroup.GET("/:id", h.Get)

		// 报名，重复报名返回已有记录
		eventGroup.POST("/:id/register", h.Register)
	}
}
