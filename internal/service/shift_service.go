package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Muskan244/CareClock/config"
	"github.com/Muskan244/CareClock/internal/dto"
	"github.com/Muskan244/CareClock/internal/model"
	"github.com/Muskan244/CareClock/internal/repository"
	"github.com/Muskan244/CareClock/pkg/geo"
)

// ── 打卡模块业务错误 ──

var (
	ErrShiftAlreadyOpen = errors.New("已处于上班状态")
	ErrNoActiveShift    = errors.New("当前没有未关闭的打卡记录")
	ErrOutsidePerimeter = errors.New("不在机构围栏范围内")
	ErrInvalidRange     = errors.New("日期范围无效")
)

const dateLayout = "2006-01-02"

// ShiftService 打卡业务接口
//
// 状态机：OPEN →（唯一一次 ClockOut）→ CLOSED，关闭后不可重开。
// 同一员工同时最多一条 OPEN 记录；并发竞争最终由数据库部分唯一索引仲裁。
type ShiftService interface {
	ClockIn(ctx context.Context, workerID string, req *dto.ClockRequest) (*dto.ShiftRecordResponse, error)
	ClockOut(ctx context.Context, workerID string, req *dto.ClockRequest) (*dto.ShiftRecordResponse, error)
	// GetActive 查询员工当前打开的记录；不存在时返回 (nil, nil)
	GetActive(ctx context.Context, workerID string) (*dto.ShiftRecordResponse, error)
	ListMine(ctx context.Context, workerID string, req *dto.ShiftListRequest) ([]dto.ShiftRecordResponse, error)
	ActiveRoster(ctx context.Context) ([]dto.RosterEntryResponse, error)
	Analytics(ctx context.Context) (*dto.AnalyticsResponse, error)
}

type shiftService struct {
	cfg      *config.Config
	repo     *repository.Repository
	geofence GeofenceService
	logger   *zap.Logger
	now      func() time.Time
}

// NewShiftService 创建 ShiftService 实例
func NewShiftService(
	cfg *config.Config,
	repo *repository.Repository,
	geofence GeofenceService,
	logger *zap.Logger,
) ShiftService {
	return &shiftService{
		cfg:      cfg,
		repo:     repo,
		geofence: geofence,
		logger:   logger,
		now:      time.Now,
	}
}

// ────────────────────── ClockIn ──────────────────────

func (s *shiftService) ClockIn(ctx context.Context, workerID string, req *dto.ClockRequest) (*dto.ShiftRecordResponse, error) {
	position := geo.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}

	// 服务端围栏复核：不信任客户端的预校验结果，直接绕过 /geofence/validate
	// 调用打卡接口的客户端也会在这里被拦下
	if s.cfg.Feature.EnforceClockInGeofence {
		verdict, err := s.geofence.Validate(ctx, position)
		if err != nil {
			return nil, err
		}
		if !verdict.IsWithinPerimeter {
			return nil, ErrOutsidePerimeter
		}
	}

	// 预检查给出友好错误；真正的不变量由数据库唯一索引保证
	if _, err := s.repo.Shift.GetOpenByWorker(ctx, workerID); err == nil {
		return nil, ErrShiftAlreadyOpen
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询打开记录失败", zap.Error(err))
		return nil, err
	}

	rec := &model.ShiftRecord{
		WorkerID:         workerID,
		ClockInTime:      s.now(), // 服务端时间，不信任客户端时钟
		ClockInLatitude:  req.Latitude,
		ClockInLongitude: req.Longitude,
		ClockInLocation:  req.Location,
		ClockInNote:      req.Note,
		IsOpen:           true,
	}

	if err := s.repo.Shift.CreateOpen(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicateOpenShift) {
			// 并发打卡竞争落败：另一请求先插入了打开记录
			return nil, ErrShiftAlreadyOpen
		}
		s.logger.Error("创建打卡记录失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("员工上班打卡",
		zap.String("worker_id", workerID),
		zap.String("shift_record_id", rec.ShiftRecordID),
	)

	resp := toShiftResponse(rec)
	return &resp, nil
}

// ────────────────────── ClockOut ──────────────────────

func (s *shiftService) ClockOut(ctx context.Context, workerID string, req *dto.ClockRequest) (*dto.ShiftRecordResponse, error) {
	rec, err := s.repo.Shift.GetOpenByWorker(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveShift
		}
		s.logger.Error("查询打开记录失败", zap.Error(err))
		return nil, err
	}

	closedAt := s.now()
	rec.ClockOutTime = &closedAt
	rec.ClockOutLatitude = req.Latitude
	rec.ClockOutLongitude = req.Longitude
	rec.ClockOutLocation = req.Location
	rec.ClockOutNote = req.Note

	if err := s.repo.Shift.Close(ctx, rec); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 并发重复下班打卡：记录已被另一请求关闭
			return nil, ErrNoActiveShift
		}
		s.logger.Error("关闭打卡记录失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("员工下班打卡",
		zap.String("worker_id", workerID),
		zap.String("shift_record_id", rec.ShiftRecordID),
		zap.Duration("duration", rec.Duration(closedAt)),
	)

	resp := toShiftResponse(rec)
	return &resp, nil
}

// ────────────────────── GetActive ──────────────────────

func (s *shiftService) GetActive(ctx context.Context, workerID string) (*dto.ShiftRecordResponse, error) {
	rec, err := s.repo.Shift.GetOpenByWorker(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("查询打开记录失败", zap.Error(err))
		return nil, err
	}

	resp := toShiftResponse(rec)
	return &resp, nil
}

// ────────────────────── ListMine ──────────────────────

func (s *shiftService) ListMine(ctx context.Context, workerID string, req *dto.ShiftListRequest) ([]dto.ShiftRecordResponse, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.Shift.ListByWorker(ctx, workerID, start, end)
	if err != nil {
		s.logger.Error("查询打卡历史失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShiftRecordResponse, 0, len(records))
	for i := range records {
		result = append(result, toShiftResponse(&records[i]))
	}
	return result, nil
}

// ────────────────────── ActiveRoster ──────────────────────

func (s *shiftService) ActiveRoster(ctx context.Context) ([]dto.RosterEntryResponse, error) {
	records, err := s.repo.Shift.ListAllOpen(ctx)
	if err != nil {
		s.logger.Error("查询在岗名册失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.RosterEntryResponse, 0, len(records))
	for i := range records {
		entry := dto.RosterEntryResponse{Record: toShiftResponse(&records[i])}
		if records[i].Worker != nil {
			entry.Worker = toUserResponse(records[i].Worker)
		}
		result = append(result, entry)
	}
	return result, nil
}

// ────────────────────── Analytics ──────────────────────

func (s *shiftService) Analytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	now := s.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	currentlyClocked, err := s.repo.Shift.CountOpen(ctx)
	if err != nil {
		s.logger.Error("统计在岗人数失败", zap.Error(err))
		return nil, err
	}

	dailyCheckins, err := s.repo.Shift.CountOpenedBetween(ctx, todayStart, now)
	if err != nil {
		s.logger.Error("统计今日打卡数失败", zap.Error(err))
		return nil, err
	}

	yesterdayCheckins, err := s.repo.Shift.CountOpenedBetween(ctx, yesterdayStart, todayStart.Add(-time.Nanosecond))
	if err != nil {
		s.logger.Error("统计昨日打卡数失败", zap.Error(err))
		return nil, err
	}

	todayRecords, err := s.repo.Shift.ListOpenedBetween(ctx, todayStart, now)
	if err != nil {
		s.logger.Error("查询今日记录失败", zap.Error(err))
		return nil, err
	}

	return &dto.AnalyticsResponse{
		CurrentlyClocked:  int(currentlyClocked),
		AvgHours:          averageHours(todayRecords, now),
		DailyCheckins:     int(dailyCheckins),
		YesterdayCheckins: int(yesterdayCheckins),
	}, nil
}

// averageHours 计算记录集的平均工时（小时，保留 1 位小数）
// 未关闭的记录按当前时间截算
func averageHours(records []model.ShiftRecord, now time.Time) float64 {
	if len(records) == 0 {
		return 0
	}

	var total float64
	for i := range records {
		total += records[i].Duration(now).Hours()
	}
	avg := total / float64(len(records))
	return math.Round(avg*10) / 10
}

// parseDateRange 解析闭区间日期范围
// 两个边界要么都给、要么都不给；end 取当天最后一刻
func parseDateRange(startDate, endDate string) (*time.Time, *time.Time, error) {
	if startDate == "" && endDate == "" {
		return nil, nil, nil
	}
	if startDate == "" || endDate == "" {
		return nil, nil, ErrInvalidRange
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, nil, ErrInvalidRange
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, nil, ErrInvalidRange
	}
	if end.Before(start) {
		return nil, nil, ErrInvalidRange
	}

	endOfDay := end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return &start, &endOfDay, nil
}

// toShiftResponse 模型转响应
func toShiftResponse(rec *model.ShiftRecord) dto.ShiftRecordResponse {
	resp := dto.ShiftRecordResponse{
		ID:                rec.ShiftRecordID,
		WorkerID:          rec.WorkerID,
		ClockInTime:       rec.ClockInTime.Format(time.RFC3339),
		ClockInLatitude:   rec.ClockInLatitude,
		ClockInLongitude:  rec.ClockInLongitude,
		ClockOutLatitude:  rec.ClockOutLatitude,
		ClockOutLongitude: rec.ClockOutLongitude,
		ClockInLocation:   rec.ClockInLocation,
		ClockOutLocation:  rec.ClockOutLocation,
		ClockInNote:       rec.ClockInNote,
		ClockOutNote:      rec.ClockOutNote,
		IsOpen:            rec.IsOpen,
	}
	if rec.ClockOutTime != nil {
		resp.ClockOutTime = rec.ClockOutTime.Format(time.RFC3339)
	}
	return resp
}
