package admin

import (
	"campus-connect/internal/global/pictureBed"
	"campus-connect/internal/global/response"
	"errors"

	"github.com/gin-gonic/gin"
)

var errStorageDisabled = response.ErrUnavailable.WithTips("Image storage is not configured")

// PresignUpload 返回浏览器直传 S3 的预签名地址
func (h *Handler) PresignUpload(c *gin.Context) {
	if !h.images.Enabled() {
		response.Fail(c, errStorageDisabled)
		return
	}
	var req pictureBed.PresignedUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.FromBinding(err))
		return
	}

	resp, err := h.images.GeneratePresignedUploadURL(c.Request.Context(), req)
	switch {
	case errors.Is(err, pictureBed.ErrUnsupportedType):
		response.Fail(c, response.Field("filename", "filename must be a jpg, png, gif or webp image"))
		return
	case err != nil:
		log.Error("生成预签名地址失败", "error", err, "filename", req.Filename)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	response.Success(c, resp)
}

// Upload 经由后端上传 multipart 表单中的 file 字段
func (h *Handler) Upload(c *gin.Context) {
	if !h.images.Enabled() {
		response.Fail(c, errStorageDisabled)
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.Field("file", "file is required"))
		return
	}

	url, err := h.images.Upload(c.Request.Context(), fileHeader)
	switch {
	case errors.Is(err, pictureBed.ErrUnsupportedType):
		response.Fail(c, response.Field("file", "file must be a jpg, png, gif or webp image"))
		return
	case err != nil:
		log.Error("上传图片失败", "error", err, "filename", fileHeader.Filename)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	log.Info("图片上传成功", "url", url)
	response.Created(c, gin.H{"url": url})
}
