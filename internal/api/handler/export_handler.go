package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Muskan244/CareClock/internal/service"
	"github.com/Muskan244/CareClock/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportTimesheet 导出月度考勤表（管理端）
// GET /api/v1/manager/timesheet/export?year=2026&month=8
// 缺省导出当前月份
func (h *ExportHandler) ExportTimesheet(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2000 || n > 2100 {
			response.BadRequest(c, 10001, "year 参数无效")
			return
		}
		year = n
	}
	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			response.BadRequest(c, 10001, "month 参数无效")
			return
		}
		month = time.Month(n)
	}

	buf, filename, err := h.exportSvc.ExportTimesheet(c.Request.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportNoRecords):
			response.NotFound(c, 15001, "该月份没有打卡记录")
		case errors.Is(err, service.ErrExportGenerateFail):
			response.InternalError(c)
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
