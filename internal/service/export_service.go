package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Muskan244/CareClock/internal/model"
	"github.com/Muskan244/CareClock/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoRecords    = errors.New("该月份没有打卡记录")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 月度考勤表导出为 Excel (.xlsx)，供管理端下载
// 以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportTimesheet 导出指定月份全员考勤表
	// 返回值：buf（Excel 内容）, filename（建议文件名）, error
	ExportTimesheet(ctx context.Context, year int, month time.Month) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportTimesheet ──────────────────────

func (s *exportService) ExportTimesheet(ctx context.Context, year int, month time.Month) (*bytes.Buffer, string, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	records, err := s.repo.Shift.ListOpenedBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("查询月度打卡记录失败", zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoRecords
	}

	buf, err := buildTimesheetFile(records)
	if err != nil {
		s.logger.Error("生成考勤表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("timesheet_%04d-%02d.xlsx", year, int(month))
	return buf, filename, nil
}

// buildTimesheetFile 将记录渲染为单 Sheet 考勤表
// 列：姓名 / 邮箱 / 上班时间 / 下班时间 / 工时(小时) / 上班地点 / 下班地点 / 备注
func buildTimesheetFile(records []model.ShiftRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "考勤表"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"姓名", "邮箱", "上班时间", "下班时间", "工时(小时)", "上班地点", "下班地点", "备注"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	const timeLayout = "2006-01-02 15:04"
	for row, rec := range records {
		name := rec.WorkerID
		email := ""
		if rec.Worker != nil {
			name = rec.Worker.FullName()
			email = rec.Worker.Email
		}

		clockOut := "" // 未关闭的记录下班列留空
		hours := ""
		if rec.ClockOutTime != nil {
			clockOut = rec.ClockOutTime.Format(timeLayout)
			hours = fmt.Sprintf("%.1f", math.Round(rec.Duration(*rec.ClockOutTime).Hours()*10)/10)
		}

		values := []interface{}{
			name,
			email,
			rec.ClockInTime.Format(timeLayout),
			clockOut,
			hours,
			rec.ClockInLocation,
			rec.ClockOutLocation,
			rec.ClockInNote,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
