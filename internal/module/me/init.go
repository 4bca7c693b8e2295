// Package me 当前登录用户的个人视图：已报名活动、社团、动态、统计和日历
package me

import (
	"campus-connect/internal/catalog"
	"campus-connect/internal/engagement"
	"campus-connect/internal/global/database"
	"campus-connect/internal/global/logger"
	"campus-connect/internal/global/middleware"
	"campus-connect/internal/global/session"
	"log/slog"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

type ModuleMe struct {
	h *Handler
}

func (m *ModuleMe) GetName() string {
	return "Me"
}

func (m *ModuleMe) Init() {
	log = logger.New("Me")
	m.h = NewHandler(catalog.New(database.DB), engagement.New(database.DB))
}

func selfInit() {
	if log == nil {
		log = logger.New("Me")
	}
}

func (m *ModuleMe) InitRouter(r *gin.RouterGroup) {
	m.h.Routes(r, middleware.Auth(session.Default, database.DB))
}
