package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Muskan244/CareClock/internal/dto"
	"github.com/Muskan244/CareClock/internal/service"
	"github.com/Muskan244/CareClock/pkg/response"
)

// UserHandler 用户模块 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// UpdateMyRole 角色自助切换
// PUT /api/v1/users/me/role
// 本系统没有独立管理员角色，角色切换对已登录用户自助开放；
// 新角色在下一次登录或刷新 Token 后生效
func (h *UserHandler) UpdateMyRole(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "角色取值必须为 worker 或 manager")
		return
	}

	result, err := h.userSvc.UpdateRole(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12001, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
