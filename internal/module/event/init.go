package event

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

type ModuleEvent struct {
	h *Handler
}

func (m *ModuleEvent) GetName() string {
	return "Event"
}

func (m *ModuleEvent) Init() {
	log = logger.New("Event")
	m.h = NewHandler(catalog.New(database.DB), engagement.New(database.DB))
}

func selfInit() {
	if log == nil {
		log = logger.New("Event")
	}
}

func (m *ModuleEvent) InitRouter(r *gin.RouterGroup) {
	m.h.Routes(r, middleware.Auth(session.Default, database.DB))
}
