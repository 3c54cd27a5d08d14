package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Muskan244/CareClock/internal/model"
	"github.com/Muskan244/CareClock/internal/repository"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, *mockShiftRepo) {
	shiftRepo := newMockShiftRepo()
	repo := &repository.Repository{
		User:     newMockUserRepo(),
		Facility: newMockFacilityRepo(),
		Shift:    shiftRepo,
	}
	svc := NewExportService(repo, zap.NewNop())
	return svc, shiftRepo
}

func addClosedRecord(repo *mockShiftRepo, workerID string, clockIn time.Time, hours int) {
	clockOut := clockIn.Add(time.Duration(hours) * time.Hour)
	rec := &model.ShiftRecord{
		WorkerID:        workerID,
		ClockInTime:     clockIn,
		ClockOutTime:    &clockOut,
		ClockInLocation: "正门",
		IsOpen:          false,
		Worker: &model.User{
			UserID:    workerID,
			Email:     workerID + "@example.com",
			FirstName: "小明",
			LastName:  "王",
		},
	}
	repo.idCounter++
	rec.ShiftRecordID = "shift-" + workerID
	repo.records[rec.ShiftRecordID] = rec
}

// ── ExportTimesheet 测试 ──

func TestExportService_ExportTimesheet_NoRecords(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportTimesheet(context.Background(), 2026, time.August)
	if !errors.Is(err, ErrExportNoRecords) {
		t.Errorf("期望 ErrExportNoRecords，实际: %v", err)
	}
}

func TestExportService_ExportTimesheet_Success(t *testing.T) {
	svc, shiftRepo := setupTestExportService()
	addClosedRecord(shiftRepo, "worker-1", time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC), 8)
	addClosedRecord(shiftRepo, "worker-2", time.Date(2026, 8, 11, 10, 0, 0, 0, time.UTC), 6)
	// 不在目标月份的记录不应出现在导出中
	addClosedRecord(shiftRepo, "worker-3", time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC), 8)

	buf, filename, err := svc.ExportTimesheet(context.Background(), 2026, time.August)
	if err != nil {
		t.Fatalf("ExportTimesheet 应成功: %v", err)
	}
	if filename != "timesheet_2026-08.xlsx" {
		t.Errorf("期望文件名=timesheet_2026-08.xlsx，实际=%s", filename)
	}

	// 重新打开生成的文件验证内容
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("生成的文件应可被 excelize 解析: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("考勤表")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	// 表头 + 2 条数据行
	if len(rows) != 3 {
		t.Fatalf("期望 3 行（含表头），实际=%d", len(rows))
	}
	if rows[0][0] != "姓名" || rows[0][4] != "工时(小时)" {
		t.Errorf("表头不符: %v", rows[0])
	}
	for _, row := range rows[1:] {
		if row[0] != "小明 王" {
			t.Errorf("姓名列不符: %s", row[0])
		}
	}
}

func TestExportService_ExportTimesheet_OpenRecordBlankClockOut(t *testing.T) {
	svc, shiftRepo := setupTestExportService()
	rec := &model.ShiftRecord{
		ShiftRecordID: "shift-open",
		WorkerID:      "worker-1",
		ClockInTime:   time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		IsOpen:        true,
	}
	shiftRepo.records[rec.ShiftRecordID] = rec

	buf, _, err := svc.ExportTimesheet(context.Background(), 2026, time.August)
	if err != nil {
		t.Fatalf("ExportTimesheet 应成功: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("生成的文件应可被 excelize 解析: %v", err)
	}
	defer f.Close()

	// 未关闭记录：下班时间与工时列留空
	clockOut, _ := f.GetCellValue("考勤表", "D2")
	hours, _ := f.GetCellValue("考勤表", "E2")
	if clockOut != "" || hours != "" {
		t.Errorf("未关闭记录下班列应留空，实际: clockOut=%q hours=%q", clockOut, hours)
	}
}
