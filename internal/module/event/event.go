package event

import (
	"campus-connect/internal/catalog"
	"campus-connect/internal/engagement"
	"campus-connect/internal/global/context"
	"campus-connect/internal/global/response"
	"campus-connect/internal/model"
	"campus-connect/tools"
	"time"

	"github.com/gin-gonic/gin"
)

var errEventNotFound = response.ErrNotFound.WithTips("Event not found")

type Handler struct {
	catalog    *catalog.Service
	engagement *engagement.Service
	now        func() time.Time
}

func NewHandler(cs *catalog.Service, es *engagement.Service) *Handler {
	selfInit()
	return &Handler{catalog: cs, engagement: es, now: time.Now}
}

// ListReq 活动列表的查询参数
type ListReq struct {
	Category string `form:"category"`
	Date     string `form:"date" binding:"omitempty,oneof=today this-week this-month upcoming past"`
	Search   string `form:"search"`
}

func (h *Handler) List(c *gin.Context) {
	var req ListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.FromBinding(err))
		return
	}
	user, _ := context.GetUser(c)
	limit, offset := tools.GetPage(c, catalog.DefaultListLimit, catalog.MaxListLimit)

	events, err := h.catalog.ListEvents(c.Request.Context(), user.ID, catalog.EventFilter{
		Category: req.Category,
		Date:     req.Date,
		Search:   req.Search,
		Limit:    limit,
		Offset:   offset,
	}, h.now())
	if err != nil {
		log.Error("查询活动列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, events)
}

func (h *Handler) Upcoming(c *gin.Context) {
	user, _ := context.GetUser(c)
	limit, _ := tools.GetPage(c, catalog.DefaultUpcomingLimit, catalog.MaxListLimit)

	events, err := h.catalog.UpcomingEvents(c.Request.Context(), user.ID, limit, h.now())
	if err != nil {
		log.Error("查询即将开始的活动失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, events)
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context(), model.CategoryTypeEvent)
	if err != nil {
		log.Error("查询活动分类失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, categories)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := tools.ParamID(c, "id")
	if err != nil {
		response.Fail(c, errEventNotFound)
		return
	}
	user, _ := context.GetUser(c)

	event, err := h.catalog.GetEvent(c.Request.Context(), id, user.ID)
	switch {
	case catalog.IsNotFound(err):
		response.Fail(c, errEventNotFound)
		return
	case err != nil:
		log.Error("查询活动失败", "error", err, "event_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, event)
}

// Register 报名活动，首次报名时同时记积分和动态
func (h *Handler) Register(c *gin.Context) {
	id, err := tools.ParamID(c, "id")
	if err != nil {
		response.Fail(c, errEventNotFound)
		return
	}
	user, _ := context.GetUser(c)

	registration, created, err := h.engagement.RegisterForEvent(c.Request.Context(), id, user.ID)
	switch {
	case catalog.IsNotFound(err):
		response.Fail(c, errEventNotFound)
		return
	case err != nil:
		log.Error("报名失败", "error", err, "event_id", id, "user_id", user.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if created {
		log.Info("报名成功", "event_id", id, "user_id", user.ID)
	}
	response.Created(c, registration)
}
