package model

import "time"

// ── 角色常量 ──

const (
	RoleWorker  = "worker"
	RoleManager = "manager"
)

// ValidRole 校验角色取值
func ValidRole(role string) bool {
	return role == RoleWorker || role == RoleManager
}

// BaseModel 通用审计字段
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
