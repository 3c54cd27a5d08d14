package model

import "time"

// ShiftRecord 打卡记录表 — 对应 shift_records
// 生命周期：上班打卡创建（is_open=true）→ 下班打卡关闭（唯一一次变更）→ 关闭后不可再修改
// is_open 与 clock_out_time 保持一致：is_open=true ⟺ clock_out_time IS NULL
type ShiftRecord struct {
	ShiftRecordID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_record_id"`
	WorkerID          string     `gorm:"type:uuid;not null"                             json:"worker_id"`
	ClockInTime       time.Time  `gorm:"not null"                                       json:"clock_in_time"`
	ClockOutTime      *time.Time `json:"clock_out_time,omitempty"`
	ClockInLatitude   *float64   `gorm:"type:decimal(10,8)"                             json:"clock_in_latitude,omitempty"`
	ClockInLongitude  *float64   `gorm:"type:decimal(11,8)"                             json:"clock_in_longitude,omitempty"`
	ClockOutLatitude  *float64   `gorm:"type:decimal(10,8)"                             json:"clock_out_latitude,omitempty"`
	ClockOutLongitude *float64   `gorm:"type:decimal(11,8)"                             json:"clock_out_longitude,omitempty"`
	ClockInLocation   string     `gorm:"type:varchar(200);not null;default:''"          json:"clock_in_location"`
	ClockOutLocation  string     `gorm:"type:varchar(200);not null;default:''"          json:"clock_out_location"`
	ClockInNote       string     `gorm:"type:text;not null;default:''"                  json:"clock_in_note"`
	ClockOutNote      string     `gorm:"type:text;not null;default:''"                  json:"clock_out_note"`
	IsOpen            bool       `gorm:"not null;default:true"                          json:"is_open"`
	CreatedAt         time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 关联
	Worker *User `gorm:"foreignKey:WorkerID;references:UserID" json:"worker,omitempty"`
}

// TableName 指定表名
func (ShiftRecord) TableName() string { return "shift_records" }

// Duration 返回本条记录的工时；未关闭的记录按当前时间计算
func (r *ShiftRecord) Duration(now time.Time) time.Duration {
	end := now
	if r.ClockOutTime != nil {
		end = *r.ClockOutTime
	}
	return end.Sub(r.ClockInTime)
}
