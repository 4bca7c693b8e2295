package me

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) Routes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	meGroup := r.Group("/users")
	meGroup.Use(auth)
	{
		meGroup.GET("/events", h.Events)
		meGroup.GET("/clubs", h.Clubs)
		meGroup.GET("/activities", h.Activities)
		meGroup.GET("/stats", h.Stats)
		meGroup.GET("/calendar", h.Calendar)
	}
}
