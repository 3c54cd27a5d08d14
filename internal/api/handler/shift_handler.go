package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muskan244/CareClock/internal/dto"
	"github.com/Muskan244/CareClock/internal/service"
	"github.com/Muskan244/CareClock/pkg/response"
)

// ShiftHandler 打卡模块 HTTP 处理器
type ShiftHandler struct {
	shiftSvc service.ShiftService
}

// NewShiftHandler 创建 ShiftHandler
func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// ClockIn 上班打卡
// POST /api/v1/shifts/clock-in
func (h *ShiftHandler) ClockIn(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.shiftSvc.ClockIn(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.Created(c, result)
}

// ClockOut 下班打卡
// POST /api/v1/shifts/clock-out
func (h *ShiftHandler) ClockOut(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.shiftSvc.ClockOut(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.OK(c, result)
}

// GetActive 查询当前打开的打卡记录
// GET /api/v1/shifts/active
// 无打开记录时返回 data=null，前端据此渲染"未上班"状态
func (h *ShiftHandler) GetActive(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.shiftSvc.GetActive(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListMine 查询本人打卡历史
// GET /api/v1/shifts?start_date=2026-08-01&end_date=2026-08-31
func (h *ShiftHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ShiftListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 14004, "日期范围无效")
		return
	}

	result, err := h.shiftSvc.ListMine(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.OK(c, result)
}

// ActiveRoster 在岗名册（管理端）
// GET /api/v1/manager/roster
func (h *ShiftHandler) ActiveRoster(c *gin.Context) {
	result, err := h.shiftSvc.ActiveRoster(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Analytics 考勤统计（管理端）
// GET /api/v1/manager/analytics
func (h *ShiftHandler) Analytics(c *gin.Context) {
	result, err := h.shiftSvc.Analytics(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// handleShiftError 统一处理打卡模块业务错误
func (h *ShiftHandler) handleShiftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftAlreadyOpen):
		response.Conflict(c, 14001, "已处于上班状态")
	case errors.Is(err, service.ErrOutsidePerimeter):
		response.Error(c, http.StatusForbidden, 14002, "不在机构围栏范围内，无法打卡")
	case errors.Is(err, service.ErrNoActiveShift):
		response.Conflict(c, 14003, "当前没有未关闭的打卡记录")
	case errors.Is(err, service.ErrInvalidRange):
		response.BadRequest(c, 14004, "日期范围无效")
	case errors.Is(err, service.ErrFacilityNotConfigured):
		response.NotFound(c, 13001, "机构围栏尚未配置")
	case errors.Is(err, service.ErrInvalidCoordinate):
		response.BadRequest(c, 13002, "坐标无效")
	default:
		response.InternalError(c)
	}
}
