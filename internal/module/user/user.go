package user

import (
	"campus-connect/internal/global/context"
	"campus-connect/internal/global/response"
	"campus-connect/internal/global/session"
	"campus-connect/internal/model"
	"campus-connect/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Handler struct {
	db       *gorm.DB
	sessions *session.Manager
}

func NewHandler(db *gorm.DB, sessions *session.Manager) *Handler {
	selfInit()
	return &Handler{db: db, sessions: sessions}
}

// RegisterReq 注册请求，注册的用户一律为学生
type RegisterReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 创建学生账号并直接登录
func (h *Handler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.FromBinding(err))
		return
	}

	user := model.User{
		Username: req.Username,
		Password: tools.PasswordEncrypt(req.Password),
		Role:     model.RoleStudent,
	}
	err := h.db.WithContext(c.Request.Context()).Create(&user).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		log.Warn("用户名已存在", "username", req.Username)
		response.Fail(c, response.Field("username", "Username already exists"))
		return
	case err != nil:
		log.Error("创建用户失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := h.sessions.Start(c, user.ID); err != nil {
		log.Error("创建会话失败", "error", err, "user_id", user.ID)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	log.Info("用户注册成功", "user_id", user.ID, "username", user.Username)
	response.Created(c, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.FromBinding(err))
		return
	}

	var user model.User
	err := h.db.WithContext(c.Request.Context()).Where("username = ?", req.Username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("用户不存在", "username", req.Username)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("密码错误", "username", req.Username)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	if err := h.sessions.Start(c, user.ID); err != nil {
		log.Error("创建会话失败", "error", err, "user_id", user.ID)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	log.Info("用户登录成功", "user_id", user.ID, "role", user.Role)
	response.Success(c, user)
}

// Logout 没有会话时同样返回成功
func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.End(c); err != nil {
		log.Error("删除会话失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) Current(c *gin.Context) {
	user, _ := context.GetUser(c)
	response.Success(c, user)
}
