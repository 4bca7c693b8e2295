package admin

import (
	"campus-connect/config"
	"campus-connect/internal/analytics"
	"campus-connect/internal/catalog"
	"campus-connect/internal/global/database"
	"campus-connect/internal/global/httpclient"
	"campus-connect/internal/global/logger"
	"campus-connect/internal/global/middleware"
	"campus-connect/internal/global/pictureBed"
	"campus-connect/internal/global/session"
	"log/slog"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

type ModuleAdmin struct {
	h *Handler
}

func (m *ModuleAdmin) GetName() string {
	return "Admin"
}

func (m *ModuleAdmin) Init() {
	log = logger.New("Admin")

	var prober ImageProber
	if config.Get().Validation.CheckImageReachable {
		prober = httpclient.NewImageProber(httpclient.Client)
	}
	m.h = NewHandler(catalog.New(database.DB), analytics.New(database.DB), pictureBed.Default, prober)
}

func selfInit() {
	if log == nil {
		log = logger.New("Admin")
	}
}

func (m *ModuleAdmin) InitRouter(r *gin.RouterGroup) {
	m.h.Routes(r, middleware.Auth(session.Default, database.DB))
}
