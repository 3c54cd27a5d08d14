package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Muskan244/CareClock/internal/dto"
	"github.com/Muskan244/CareClock/internal/model"
	"github.com/Muskan244/CareClock/internal/repository"
)

// ── 测试辅助 ──

func setupTestFacilityService() (FacilityService, *mockFacilityRepo) {
	facilityRepo := newMockFacilityRepo()
	repo := &repository.Repository{
		User:     newMockUserRepo(),
		Facility: facilityRepo,
		Shift:    newMockShiftRepo(),
	}
	svc := NewFacilityService(repo, zap.NewNop())
	return svc, facilityRepo
}

// ── Get 测试 ──

func TestFacilityService_Get_NotConfigured(t *testing.T) {
	svc, _ := setupTestFacilityService()

	_, err := svc.Get(context.Background())
	if !errors.Is(err, ErrFacilityNotConfigured) {
		t.Errorf("期望 ErrFacilityNotConfigured，实际: %v", err)
	}
}

func TestFacilityService_Get_Success(t *testing.T) {
	svc, facilityRepo := setupTestFacilityService()
	facilityRepo.cfg = &model.FacilityConfig{
		Singleton:         true,
		Name:              "仁爱护理院",
		Address:           "123 Main St",
		Latitude:          testFacilityLat,
		Longitude:         testFacilityLng,
		PerimeterRadiusKm: 2.0,
	}

	result, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if result.Name != "仁爱护理院" {
		t.Errorf("期望Name=仁爱护理院，实际=%s", result.Name)
	}
	if result.PerimeterRadius != 2.0 {
		t.Errorf("期望PerimeterRadius=2.0，实际=%v", result.PerimeterRadius)
	}
}

// ── Replace 测试 ──

func TestFacilityService_Replace_FirstTime(t *testing.T) {
	svc, _ := setupTestFacilityService()

	req := &dto.ReplaceFacilityConfigRequest{
		Name:            "仁爱护理院",
		Address:         "123 Main St",
		Latitude:        f64(testFacilityLat),
		Longitude:       f64(testFacilityLng),
		PerimeterRadius: f64(2.0),
	}

	result, err := svc.Replace(context.Background(), req, "manager-1")
	if err != nil {
		t.Fatalf("Replace 应成功: %v", err)
	}
	if result.Name != "仁爱护理院" || result.PerimeterRadius != 2.0 {
		t.Errorf("替换结果不符: %+v", result)
	}

	// 替换后 Get 应立即可见
	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("替换后 Get 应成功: %v", err)
	}
	if got.Latitude != testFacilityLat {
		t.Errorf("期望Latitude=%v，实际=%v", testFacilityLat, got.Latitude)
	}
}

func TestFacilityService_Replace_Overwrite(t *testing.T) {
	svc, facilityRepo := setupTestFacilityService()
	oldUpdater := "manager-0"
	facilityRepo.cfg = &model.FacilityConfig{
		Singleton:         true,
		Name:              "旧院区",
		Address:           "Old Rd",
		Latitude:          1.0,
		Longitude:         2.0,
		PerimeterRadiusKm: 5.0,
		UpdatedBy:         &oldUpdater,
	}

	req := &dto.ReplaceFacilityConfigRequest{
		Name:            "新院区",
		Address:         "456 New Ave",
		Latitude:        f64(testFacilityLat),
		Longitude:       f64(testFacilityLng),
		PerimeterRadius: f64(1.5),
	}

	result, err := svc.Replace(context.Background(), req, "manager-1")
	if err != nil {
		t.Fatalf("Replace 应成功: %v", err)
	}

	// 整行替换：所有字段来自新请求，不做增量合并
	if result.Name != "新院区" || result.Address != "456 New Ave" {
		t.Errorf("替换结果不符: %+v", result)
	}
	if result.PerimeterRadius != 1.5 {
		t.Errorf("期望PerimeterRadius=1.5，实际=%v", result.PerimeterRadius)
	}
	if facilityRepo.cfg.UpdatedBy == nil || *facilityRepo.cfg.UpdatedBy != "manager-1" {
		t.Error("updated_by 应记录本次操作人")
	}
	if !facilityRepo.cfg.Singleton {
		t.Error("替换后单行主键应保持 TRUE")
	}
}
