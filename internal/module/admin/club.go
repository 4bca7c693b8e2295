package admin

import (
	"campus-connect/internal/catalog"
	"campus-connect/internal/global/context"
	"campus-connect/internal/global/response"
	"campus-connect/tools"
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	errClubNotFound  = response.ErrNotFound.WithTips("Club not found")
	errDuplicateName = response.Field("name", "A club with this name already exists")
)

type ClubReq struct {
	Name        string `json:"name" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"required,min=10"`
	Category    string `json:"category" binding:"required,max=64"`
}

type MeetingReq struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Location string `json:"location" binding:"required"`
}

func (h *Handler) ListClubs(c *gin.Context) {
	limit, offset := tools.GetPage(c, catalog.MaxListLimit, catalog.MaxListLimit)
	clubs, err := h.catalog.ListClubs(c.Request.Context(), 0, catalog.ClubFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
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

func (h *Handler) CreateClub(c *gin.Context) {
	var req ClubReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.FromBinding(err))
		return
	}
	user, _ := context.GetUser(c)

	club, err := h.catalog.CreateClub(c.Request.Context(), catalog.ClubInput(req), user.ID, h.now())
	switch {
	case errors.Is(err, catalog.ErrDuplicateName):
		response.Fail(c, errDuplicateName)
		return
	case err != nil:
		log.Error("创建社团失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("社团创建成功", "club_id", club.ID, "name", club.Name, "admin_id", user.ID)
	response.Created(c, club)
}

func (h *Handler) UpdateClub(c *gin.Context) {
	id, err := tools.ParamID(c, "id")
	if err != nil {
		response.Fail(c, errClubNotFound)
		return
	}
	var req ClubReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.FromBinding(err))
		return
	}

	club, err := h.catalog.UpdateClub(c.Request.Context(), id, catalog.ClubInput(req), h.now())
	switch {
	case catalog.IsNotFound(err):
		response.Fail(c, errClubNotFound)
		return
	case errors.Is(err, catalog.ErrDuplicateName):
		response.Fail(c, errDuplicateName)
		return
	case err != nil:
		log.Error("更新社团失败", "error", err, "club_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("社团更新成功", "club_id", id)
	response.Success(c, club)
}

func (h *Handler) DeleteClub(c *gin.Context) {
	id, err := tools.ParamID(c, "id")
	if err != nil {
		response.Fail(c, errClubNotFound)
		return
	}

	err = h.catalog.DeleteClub(c.Request.Context(), id)
	switch {
	case catalog.IsNotFound(err):
		response.Fail(c, errClubNotFound)
		return
	case err != nil:
		log.Error("删除社团失败", "error", err, "club_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	log.Info("社团删除成功", "club_id", id)
	response.Success(c, gin.H{"message": "Club deleted successfully"})
}

func (h *Handler) AddMeeting(c *gin.Context) {
	id, err := tools.ParamID(c, "id")
	if err != nil {
		response.Fail(c, errClubNotFound)
		return
	}
	var req MeetingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.FromBinding(err))
		return
	}
	date, err := tools.ParseDate(req.Date)
	if err != nil {
		response.Fail(c, response.Field("date", "date must be a valid date"))
		return
	}

	meeting, err := h.catalog.AddMeeting(c.Request.Context(), id, catalog.MeetingInput{
		Date:     date,
		Time:     req.Time,
		Location: req.Location,
	})
	switch {
	case catalog.IsNotFound(err):
		response.Fail(c, errClubNotFound)
		return
	case err != nil:
		log.Error("添加例会失败", "error", err, "club_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Created(c, meeting)
}
