package club

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

type ModuleClub struct {
	h *Handler
}

func (m *ModuleClub) GetName() string {
	return "Club"
}

func (m *ModuleClub) Init() {
	log = logger.New("Club")
	m.h = NewHandler(catalog.New(database.DB), engagement.New(database.DB))
}

func selfInit() {
	if log == nil {
		log = logger.New("Club")
	}
}

func (m *ModuleClub) InitRouter(r *gin.RouterGroup) {
	m.h.Routes(r, middleware.Auth(session.Default, database.DB))
}
