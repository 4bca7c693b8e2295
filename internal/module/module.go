package module

import (
	"campus-connect/internal/module/admin"
	"campus-connect/internal/module/club"
	"campus-connect/internal/module/event"
	"campus-connect/internal/module/me"
	"campus-connect/internal/module/ping"
	"campus-connect/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&user.ModuleUser{},
		&ping.ModulePing{},
		&event.ModuleEvent{},
		&club.ModuleClub{},
		&me.ModuleMe{},
		&admin.ModuleAdmin{},
	})
}
