package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Muskan244/CareClock/internal/model"
)

// pgUniqueViolation PostgreSQL 唯一约束冲突错误码
const pgUniqueViolation = "23505"

// ShiftRepository 打卡记录数据访问接口
type ShiftRepository interface {
	// CreateOpen 插入一条打开状态的记录；同一员工已有打开记录时返回 ErrDuplicateOpenShift
	CreateOpen(ctx context.Context, rec *model.ShiftRecord) error
	GetOpenByWorker(ctx context.Context, workerID string) (*model.ShiftRecord, error)
	// Close 关闭指定记录并写入下班快照；记录已被关闭时返回 gorm.ErrRecordNotFound
	Close(ctx context.Context, rec *model.ShiftRecord) error
	ListByWorker(ctx context.Context, workerID string, start, end *time.Time) ([]model.ShiftRecord, error)
	ListAllOpen(ctx context.Context) ([]model.ShiftRecord, error)
	ListOpenedBetween(ctx context.Context, from, to time.Time) ([]model.ShiftRecord, error)
	CountOpen(ctx context.Context) (int64, error)
	CountOpenedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo 创建 ShiftRepository 实例
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) CreateOpen(ctx context.Context, rec *model.ShiftRecord) error {
	rec.IsOpen = true
	rec.ClockOutTime = nil

	err := r.db.WithContext(ctx).Create(rec).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateOpenShift
		}
		return err
	}
	return nil
}

func (r *shiftRepo) GetOpenByWorker(ctx context.Context, workerID string) (*model.ShiftRecord, error) {
	var rec model.ShiftRecord
	err := r.db.WithContext(ctx).
		Where("worker_id = ? AND is_open", workerID).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *shiftRepo) Close(ctx context.Context, rec *model.ShiftRecord) error {
	// 带 is_open 条件的条件更新：并发重复下班打卡时只有一方能关闭
	result := r.db.WithContext(ctx).
		Model(&model.ShiftRecord{}).
		Where("shift_record_id = ? AND is_open", rec.ShiftRecordID).
		Updates(map[string]interface{}{
			"clock_out_time":      rec.ClockOutTime,
			"clock_out_latitude":  rec.ClockOutLatitude,
			"clock_out_longitude": rec.ClockOutLongitude,
			"clock_out_location":  rec.ClockOutLocation,
			"clock_out_note":      rec.ClockOutNote,
			"is_open":             false,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	rec.IsOpen = false
	return nil
}

func (r *shiftRepo) ListByWorker(ctx context.Context, workerID string, start, end *time.Time) ([]model.ShiftRecord, error) {
	db := r.db.WithContext(ctx).Where("worker_id = ?", workerID)

	if start != nil && end != nil {
		db = db.Where("clock_in_time BETWEEN ? AND ?", *start, *end)
	}

	var records []model.ShiftRecord
	err := db.Order("clock_in_time DESC").Find(&records).Error
	return records, err
}

func (r *shiftRepo) ListAllOpen(ctx context.Context) ([]model.ShiftRecord, error) {
	var records []model.ShiftRecord
	err := r.db.WithContext(ctx).
		Where("is_open").
		Preload("Worker").
		Order("clock_in_time DESC").
		Find(&records).Error
	return records, err
}

func (r *shiftRepo) ListOpenedBetween(ctx context.Context, from, to time.Time) ([]model.ShiftRecord, error) {
	var records []model.ShiftRecord
	err := r.db.WithContext(ctx).
		Where("clock_in_time BETWEEN ? AND ?", from, to).
		Preload("Worker").
		Order("clock_in_time ASC").
		Find(&records).Error
	return records, err
}

func (r *shiftRepo) CountOpen(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.ShiftRecord{}).
		Where("is_open").
		Count(&n).Error
	return n, err
}

func (r *shiftRepo) CountOpenedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.ShiftRecord{}).
		Where("clock_in_time BETWEEN ? AND ?", from, to).
		Count(&n).Error
	return n, err
}
