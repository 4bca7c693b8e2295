package me

import (
	"campus-connect/internal/catalog"
	"campus-connect/internal/engagement"
	"campus-connect/internal/global/context"
	"campus-connect/internal/global/response"
	"campus-connect/tools"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog    *catalog.Service
	engagement *engagement.Service
	now        func() time.Time
}

func NewHandler(cs *catalog.Service, es *engagement.Service) *Handler {
	selfInit()
	return &Handler{catalog: cs, engagement: es, now: time.Now}
}

func (h *Handler) Events(c *gin.Context) {
	user, _ := context.GetUser(c)
	events, err := h.catalog.UserEvents(c.Request.Context(), user.ID)
	if err != nil {
		log.Error("查询已报名活动失败", "error", err, "user_id", user.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, events)
}

func (h *Handler) Clubs(c *gin.Context) {
	user, _ := context.GetUser(c)
	clubs, err := h.catalog.UserClubs(c.Request.Context(), user.ID, h.now())
	if err != nil {
		log.Error("查询已加入社团失败", "error", err, "user_id", user.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, clubs)
}

// Activities 按时间倒序分页返回动态
func (h *Handler) Activities(c *gin.Context) {
	user, _ := context.GetUser(c)
	limit, offset := tools.GetPage(c, engagement.DefaultActivityLimit, engagement.MaxActivityLimit)

	activities, err := h.engagement.ListActivities(c.Request.Context(), user.ID, limit, offset)
	if err != nil {
		log.Error("查询动态失败", "error", err, "user_id", user.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, activities)
}

func (h *Handler) Stats(c *gin.Context) {
	user, _ := context.GetUser(c)
	stats, err := h.engagement.UserStats(c.Request.Context(), user.ID, h.now())
	if err != nil {
		log.Error("统计用户数据失败", "error", err, "user_id", user.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, stats)
}

func (h *Handler) Calendar(c *gin.Context) {
	user, _ := context.GetUser(c)
	events, err := h.catalog.Calendar(c.Request.Context(), user.ID)
	if err != nil {
		log.Error("查询日历失败", "error", err, "user_id", user.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, events)
}
