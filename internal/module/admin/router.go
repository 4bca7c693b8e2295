package admin

import (
	"campus-connect/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

// Routes 管理接口，必须是已登录的管理员
func (h *Handler) Routes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(auth, middleware.Admin())
	{
		adminGroup.GET("/events", h.ListEvents)
		adminGroup.POST("/events", h.CreateEvent)
		adminGroup.PUT("/events/:id", h.UpdateEvent)
		adminGroup.DELETE("/events/:id", h.DeleteEvent)

		adminGroup.GET("/clubs", h.ListClubs)
		adminGroup.POST("/clubs", h.CreateClub)
		adminGroup.PUT("/clubs/:id", h.UpdateClub)
		adminGroup.DELETE("/clubs/:id", h.DeleteClub)
		adminGroup.POST("/clubs/:id/meetings", h.AddMeeting)

		adminGroup.GET("/analytics", h.Analytics)
		adminGroup.GET("/analytics/export", h.ExportAnalytics)

		adminGroup.POST("/uploads/presign", h.PresignUpload)
		adminGroup.POST("/uploads", h.Upload)
	}
}
