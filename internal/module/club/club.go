package club

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

var errClubNotFound = response.ErrNotFound.WithTips("Club not found")

type Handler struct {
	catalog    *catalog.Service
	engagement *engagement.Service
	now        func() time.Time
}

func NewHandler(cs *catalog.Service, es *engagement.Service) *Handler {
	selfInit()
	return &Handler{catalog: cs, engagement: es, now: time.Now}
}

type ListReq struct {
	Category string `form:"category"`
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

	clubs, err := h.catalog.ListClubs(c.Request.Context(), user.ID, catalog.ClubFilter{
		Category: req.Category,
		Search:   req.Search,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		log.Error("查询社团列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, clubs)
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context(), model.CategoryTypeClub)
	if err != nil {
		log.Error("查询社团分类失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, categories)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := tools.ParamID(c, "id")
	if err != nil {
		response.Fail(c, errClubNotFound)
		return
	}
	user, _ := context.GetUser(c)

	club, err := h.catalog.GetClub(c.Request.Context(), id, user.ID, h.now())
	switch {
	case catalog.IsNotFound(err):
		response.Fail(c, errClubNotFound)
		return
	case err != nil:
		log.Error("查询社团失败", "error", err, "club_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, club)
}

func (h *Handler) Join(c *gin.Context) {
	id, err := tools.ParamID(c, "id")
	if err != nil {
		response.Fail(c, errClubNotFound)
		return
	}
	user, _ := context.GetUser(c)

	membership, created, err := h.engagement.JoinClub(c.Request.Context(), id, user.ID)
	switch {
	case catalog.IsNotFound(err):
		response.Fail(c, errClubNotFound)
		return
	case err != nil:
		log.Error("加入社团失败", "error", err, "club_id", id, "user_id", user.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if created {
		log.Info("加入社团成功", "club_id", id, "user_id", user.ID)
	}
	response.Created(c, membership)
}
