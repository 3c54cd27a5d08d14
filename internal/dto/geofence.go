package dto

// ── 地理围栏模块 DTO ──

// ValidateLocationRequest 位置校验请求
// 纬度/经度为必填且限定有效地理范围；0 值合法（赤道/本初子午线），故用指针区分缺省
type ValidateLocationRequest struct {
	Latitude  *float64 `json:"latitude"  binding:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

// GeofenceVerdictResponse 围栏判定响应
type GeofenceVerdictResponse struct {
	IsWithinPerimeter bool    `json:"is_within_perimeter"`
	Distance          float64 `json:"distance"`         // 公里，保留 1 位小数
	PerimeterRadius   float64 `json:"perimeter_radius"` // 公里
}
