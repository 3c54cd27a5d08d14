package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Muskan244/CareClock/internal/dto"
	"github.com/Muskan244/CareClock/internal/service"
	"github.com/Muskan244/CareClock/pkg/response"
)

// FacilityHandler 机构围栏配置模块 HTTP 处理器
type FacilityHandler struct {
	facilitySvc service.FacilityService
}

// NewFacilityHandler 创建 FacilityHandler
func NewFacilityHandler(facilitySvc service.FacilityService) *FacilityHandler {
	return &FacilityHandler{facilitySvc: facilitySvc}
}

// GetConfig 获取当前机构配置
// GET /api/v1/facility
// 所有已登录用户可读（客户端需要展示围栏半径）
func (h *FacilityHandler) GetConfig(c *gin.Context) {
	result, err := h.facilitySvc.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrFacilityNotConfigured) {
			response.NotFound(c, 13001, "机构围栏尚未配置")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ReplaceConfig 全量替换机构配置
// PUT /api/v1/facility
func (h *FacilityHandler) ReplaceConfig(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ReplaceFacilityConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13003, "机构配置无效")
		return
	}

	result, err := h.facilitySvc.Replace(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
