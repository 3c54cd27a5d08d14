package dto

// ── 打卡模块 DTO ──

// ClockRequest 上班/下班打卡请求（两种转换共用同一载荷）
type ClockRequest struct {
	Latitude  *float64 `json:"latitude"  binding:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	Location  string   `json:"location"  binding:"omitempty,max=200"`
	Note      string   `json:"note"      binding:"omitempty,max=2000"`
}

// ShiftListRequest 打卡历史查询参数
// 起止日期成对给出时按 clock_in_time 的闭区间过滤
type ShiftListRequest struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   binding:"omitempty,datetime=2006-01-02"`
}

// ShiftRecordResponse 单条打卡记录响应
type ShiftRecordResponse struct {
	ID                string   `json:"id"`
	WorkerID          string   `json:"worker_id"`
	ClockInTime       string   `json:"clock_in_time"`
	ClockOutTime      string   `json:"clock_out_time,omitempty"`
	ClockInLatitude   *float64 `json:"clock_in_latitude,omitempty"`
	ClockInLongitude  *float64 `json:"clock_in_longitude,omitempty"`
	ClockOutLatitude  *float64 `json:"clock_out_latitude,omitempty"`
	ClockOutLongitude *float64 `json:"clock_out_longitude,omitempty"`
	ClockInLocation   string   `json:"clock_in_location,omitempty"`
	ClockOutLocation  string   `json:"clock_out_location,omitempty"`
	ClockInNote       string   `json:"clock_in_note,omitempty"`
	ClockOutNote      string   `json:"clock_out_note,omitempty"`
	IsOpen            bool     `json:"is_open"`
}

// RosterEntryResponse 在岗名册条目（管理端）
type RosterEntryResponse struct {
	Record ShiftRecordResponse `json:"record"`
	Worker UserResponse        `json:"worker"`
}

// AnalyticsResponse 管理端统计响应
type AnalyticsResponse struct {
	CurrentlyClocked  int     `json:"currently_clocked"`
	AvgHours          float64 `json:"avg_hours"` // 今日平均工时，保留 1 位小数
	DailyCheckins     int     `json:"daily_checkins"`
	YesterdayCheckins int     `json:"yesterday_checkins"`
}
