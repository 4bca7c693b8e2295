package ping

import (
	"campus-connect/internal/global/database"
	"campus-connect/internal/global/response"

	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	r.GET("/ping", Ping)
}

// Ping 存活检查，数据库不可用时返回 503
func Ping(c *gin.Context) {
	if database.DB != nil {
		sqlDB, err := database.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			if log != nil {
				log.Error("数据库不可用", "error", err)
			}
			response.Fail(c, response.ErrUnavailable.WithOrigin(err))
			return
		}
	}
	response.Success(c, gin.H{
		"message": "pong",
		"version": version,
	})
}
