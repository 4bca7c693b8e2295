package user

import (
	"campus-connect/internal/global/database"
	"campus-connect/internal/global/logger"
	"campus-connect/internal/global/middleware"
	"campus-connect/internal/global/session"
	"log/slog"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

type ModuleUser struct {
	h *Handler
}

func (u *ModuleUser) GetName() string {
	return "User"
}

func (u *ModuleUser) Init() {
	log = logger.New("User")
	u.h = NewHandler(database.DB, session.Default)
}

func selfInit() {
	if log == nil {
		log = logger.New("User")
	}
}

func (u *ModuleUser) auth() gin.HandlerFunc {
	return middleware.Auth(session.Default, database.DB)
}
