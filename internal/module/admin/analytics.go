package admin

import (
	"campus-connect/internal/global/response"
	"campus-connect/tools"
	"fmt"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Analytics(c *gin.Context) {
	summary, err := h.analytics.Summary(c.Request.Context(), h.now())
	if err != nil {
		log.Error("统计失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, summary)
}

// ExportAnalytics 以 xlsx 附件导出统计结果
func (h *Handler) ExportAnalytics(c *gin.Context) {
	now := h.now()
	data, err := h.analytics.Export(c.Request.Context(), now)
	if err != nil {
		log.Error("导出统计失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	tools.SendAttachment(c, data, fmt.Sprintf("campus-analytics-%s.xlsx", now.Format("20060102")), tools.ExcelContentType)
}
