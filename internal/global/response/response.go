package response

import (
	"campus-connect/config"
	"campus-connect/internal/global/logger"
	"campus-connect/internal/global/sentry"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Success 以 200 返回数据本身；没有数据时返回 {"message":"ok"}
func Success(c *gin.Context, data ...any) {
	write(c, http.StatusOK, data)
}

// Created 以 201 返回新建的记录
func Created(c *gin.Context, data any) {
	write(c, http.StatusCreated, []any{data})
}

func write(c *gin.Context, status int, data []any) {
	var body any = gin.H{"message": "ok"}
	if len(data) > 0 {
		body = data[0]
	}
	c.Set(ResponseContextKey, body)
	c.JSON(status, body)
}

// Fail 按错误码设置 HTTP 状态并中止后续处理；5xx 上报 Sentry
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrInternal.WithOrigin(err)
	}

	c.Set(ErrorContextKey, e)
	if e.Code >= 500 {
		sentry.CaptureException(c, e)
	}

	body := e
	if config.Get().Mode != config.ModeDebug && e.Origin != "" {
		body = e.clone()
		body.Origin = ""
	}
	c.Set(ResponseContextKey, body)
	c.AbortWithStatusJSON(statusOf(e.Code), body)
}

func statusOf(code int32) int {
	if code < 100 || code > 599 {
		return http.StatusInternalServerError
	}
	return int(code)
}

// Recovery 在 defer 中调用，把 panic 转为 500 响应
func Recovery(c *gin.Context) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	logger.New("Recovery").Error("请求处理 panic", "path", c.Request.URL.Path, "error", err)
	Fail(c, ErrInternal.WithOrigin(errors.WithStack(err)))
}
