package dto

// ── 用户模块 DTO ──

// UpdateRoleRequest 角色自助切换请求
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=worker manager"`
}

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	Department      string `json:"department,omitempty"`
	Role            string `json:"role"`
}
