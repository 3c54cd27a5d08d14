package dto

// ── 机构围栏配置模块 DTO ──

// ReplaceFacilityConfigRequest 全量替换机构配置请求
// 整行替换而非增量合并，所有字段必填
type ReplaceFacilityConfigRequest struct {
	Name            string   `json:"name"             binding:"required,min=1,max=200"`
	Address         string   `json:"address"          binding:"required,min=1,max=500"`
	Latitude        *float64 `json:"latitude"         binding:"required,gte=-90,lte=90"`
	Longitude       *float64 `json:"longitude"        binding:"required,gte=-180,lte=180"`
	PerimeterRadius *float64 `json:"perimeter_radius" binding:"required,gt=0,lte=100"`
}

// FacilityConfigResponse 机构配置响应
type FacilityConfigResponse struct {
	Name            string  `json:"name"`
	Address         string  `json:"address"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	PerimeterRadius float64 `json:"perimeter_radius"`
	UpdatedAt       string  `json:"updated_at"`
}
