package response

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorContextKey 是用于在 gin.Context 中存储错误对象的键
const ErrorContextKey = "error"

// ResponseContextKey 是用于在 gin.Context 中存储响应体的键，供访问日志和 Sentry 使用
const ResponseContextKey = "response_body"

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error 自定义错误类型，Code 同时作为 HTTP 状态码
type Error struct {
	Code    int32        `json:"code"`
	Message string       `json:"message"`
	Origin  string       `json:"origin,omitempty"`
	Fields  []FieldError `json:"errors,omitempty"`

	kind  string
	cause error
	stack pkgerrors.StackTrace
}

func newError(code int32, kind, msg string) *Error {
	return &Error{Code: code, Message: msg, kind: kind}
}

var (
	ErrInvalidRequest     = newError(400, "invalid_request", "Invalid request")
	ErrValidation         = newError(400, "validation", "Validation failed")
	ErrAlreadyExists      = newError(400, "already_exists", "Already exists")
	ErrUnauthorized       = newError(401, "unauthorized", "Not authenticated")
	ErrInvalidCredentials = newError(401, "invalid_credentials", "Invalid username or password")
	ErrForbidden          = newError(403, "forbidden", "Admin access required")
	ErrNotFound           = newError(404, "not_found", "Not found")
	ErrDatabase           = newError(500, "database", "Internal server error")
	ErrInternal           = newError(500, "internal", "Internal server error")
	ErrUnavailable        = newError(503, "unavailable", "Service unavailable")
)

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("code:%d, msg:%s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Message)
}

// GetCode 实现 sentry.CodedError
func (e *Error) GetCode() int32 {
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace 供 Sentry 提取堆栈
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	if st, ok := e.cause.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

// Is 同一种错误（无论是否附加了 origin/tips）视为相等
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.kind == t.kind
}

func (e *Error) clone() *Error {
	c := *e
	c.Fields = append([]FieldError(nil), e.Fields...)
	return &c
}

// WithOrigin 附加原始错误；origin 只在 debug 模式下返回给前端
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}
	wrapped := err
	if _, ok := err.(stackTracer); !ok {
		wrapped = pkgerrors.WithStack(err)
	}
	c := e.clone()
	c.Origin = fmt.Sprintf("%+v", wrapped)
	c.cause = wrapped
	c.stack = wrapped.(stackTracer).StackTrace()
	return c
}

// WithTips 替换返回给前端的提示信息
func (e *Error) WithTips(message string) *Error {
	c := e.clone()
	c.Message = message
	return c
}

// WithFields 附加字段级错误
func (e *Error) WithFields(fields ...FieldError) *Error {
	c := e.clone()
	c.Fields = append(c.Fields, fields...)
	return c
}

// Field 构造只含一个字段错误的校验错误
func Field(field, message string) *Error {
	return ErrValidation.WithFields(FieldError{Field: field, Message: message})
}
