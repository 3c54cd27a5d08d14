package model

// FacilityConfig 机构围栏配置表 — 对应 facility_config（单行强类型）
// 主键恒为 TRUE，全量替换而非增量更新；Replace 必须整行原子交换
type FacilityConfig struct {
	Singleton         bool    `gorm:"primaryKey;default:true"            json:"-"`
	Name              string  `gorm:"type:varchar(200);not null"         json:"name"`
	Address           string  `gorm:"type:varchar(500);not null"         json:"address"`
	Latitude          float64 `gorm:"type:decimal(10,8);not null"        json:"latitude"`
	Longitude         float64 `gorm:"type:decimal(11,8);not null"        json:"longitude"`
	PerimeterRadiusKm float64 `gorm:"type:decimal(5,2);not null;default:2.0" json:"perimeter_radius_km"`
	UpdatedBy         *string `gorm:"type:uuid"                          json:"updated_by,omitempty"`
	BaseModel
}

// TableName 指定表名
func (FacilityConfig) TableName() string { return "facility_config" }
