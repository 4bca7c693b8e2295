package admin

import (
	"campus-connect/internal/catalog"
	"campus-connect/internal/global/context"
	"campus-connect/internal/global/response"
	"campus-connect/tools"

	"github.com/gin-gonic/gin"
)

var errEventNotFound = response.ErrNotFound.WithTips("Event not found")

// EventReq 创建和更新共用，更新时同样校验全部字段
type EventReq struct {
	Title       string     `json:"title" binding:"required,min=3,max=255"`
	Description string     `json:"description" binding:"required,min=10"`
	Date        string     `json:"date" binding:"required"` // RFC3339 或 YYYY-MM-DD
	Time        string     `json:"time" binding:"required"`
	Location    string     `json:"location" binding:"required"`
	ImageURL    string     `json:"imageUrl" binding:"required,http_url"`
	Categories  Categories `json:"categories" binding:"required,min=1"`
}

// bindEvent 绑定并校验请求，失败时已写入响应
func (h *Handler) bindEvent(c *gin.Context) (catalog.EventInput, bool) {
	var req EventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.FromBinding(err))
		return catalog.EventInput{}, false
	}
	date, err := tools.ParseDate(req.Date)
	if err != nil {
		response.Fail(c, response.Field("date", "date must be a valid date"))
		return catalog.EventInput{}, false
	}
	if h.prober != nil {
		if err := h.prober.Probe(c.Request.Context(), req.ImageURL); err != nil {
			log.Warn("封面图片无法访问", "url", req.ImageURL, "error", err)
			response.Fail(c, response.Field("imageUrl", "imageUrl is not reachable"))
			return catalog.EventInput{}, false
		}
	}
	return catalog.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Categories:  req.Categories,
	}, true
}

func (h *Handler) ListEvents(c *gin.Context) {
	limit, offset := tools.GetPage(c, catalog.MaxListLimit, catalog.MaxListLimit)
	events, err := h.catalog.ListEvents(c.Request.Context(), 0, catalog.EventFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
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

func (h *Handler) CreateEvent(c *gin.Context) {
	in, ok := h.bindEvent(c)
	if !ok {
		return
	}
	user, _ := context.GetUser(c)

	event, err := h.catalog.CreateEvent(c.Request.Context(), in, user.ID)
	if err != nil {
		log.Error("创建活动失败", "error", err, "title", in.Title)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("活动创建成功", "event_id", event.ID, "title", event.Title, "admin_id", user.ID)
	response.Created(c, event)
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	id, err := tools.ParamID(c, "id")
	if err != nil {
		response.Fail(c, errEventNotFound)
		return
	}
	in, ok := h.bindEvent(c)
	if !ok {
		return
	}

	event, err := h.catalog.UpdateEvent(c.Request.Context(), id, in)
	switch {
	case catalog.IsNotFound(err):
		response.Fail(c, errEventNotFound)
		return
	case err != nil:
		log.Error("更新活动失败", "error", err, "event_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("活动更新成功", "event_id", id)
	response.Success(c, event)
}

// DeleteEvent 连同报名和分类关联一起删除，积分与动态保留
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, err := tools.ParamID(c, "id")
	if err != nil {
		response.Fail(c, errEventNotFound)
		return
	}

	err = h.catalog.DeleteEvent(c.Request.Context(), id)
	switch {
	case catalog.IsNotFound(err):
		response.Fail(c, errEventNotFound)
		return
	case err != nil:
		log.Error("删除活动失败", "error", err, "event_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("活动删除成功", "event_id", id)
	response.Success(c, gin.H{"message": "Event deleted successfully"})
}
