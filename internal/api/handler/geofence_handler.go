package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Muskan244/CareClock/internal/dto"
	"github.com/Muskan244/CareClock/internal/service"
	"github.com/Muskan244/CareClock/pkg/geo"
	"github.com/Muskan244/CareClock/pkg/response"
)

// GeofenceHandler 地理围栏模块 HTTP 处理器
type GeofenceHandler struct {
	geofenceSvc service.GeofenceService
}

// NewGeofenceHandler 创建 GeofenceHandler
func NewGeofenceHandler(geofenceSvc service.GeofenceService) *GeofenceHandler {
	return &GeofenceHandler{geofenceSvc: geofenceSvc}
}

// Validate 位置围栏校验
// POST /api/v1/geofence/validate
// 纯计算端点：只要求有效会话，不检查角色
func (h *GeofenceHandler) Validate(c *gin.Context) {
	var req dto.ValidateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13002, "坐标无效")
		return
	}

	position := geo.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}

	result, err := h.geofenceSvc.Validate(c.Request.Context(), position)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFacilityNotConfigured):
			response.NotFound(c, 13001, "机构围栏尚未配置")
		case errors.Is(err, service.ErrInvalidCoordinate):
			response.BadRequest(c, 13002, "坐标无效")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
