package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/Muskan244/CareClock/internal/model"
	"github.com/Muskan244/CareClock/internal/repository"
	"github.com/Muskan244/CareClock/pkg/geo"
)

// ── 测试辅助 ──

func setupTestGeofenceService() (GeofenceService, *mockFacilityRepo) {
	facilityRepo := newMockFacilityRepo()
	facilityRepo.cfg = &model.FacilityConfig{
		Singleton:         true,
		Name:              "仁爱护理院",
		Latitude:          testFacilityLat,
		Longitude:         testFacilityLng,
		PerimeterRadiusKm: 2.0,
	}

	repo := &repository.Repository{
		User:     newMockUserRepo(),
		Facility: facilityRepo,
		Shift:    newMockShiftRepo(),
	}
	svc := NewGeofenceService(repo, zap.NewNop())
	return svc, facilityRepo
}

// ── Validate 测试 ──

func TestGeofenceService_Validate_Within(t *testing.T) {
	svc, _ := setupTestGeofenceService()

	result, err := svc.Validate(context.Background(), geo.Coordinate{
		Latitude:  insideLat,
		Longitude: testFacilityLng,
	})
	if err != nil {
		t.Fatalf("Validate 应成功: %v", err)
	}
	if !result.IsWithinPerimeter {
		t.Error("1.9km 处应判定为围栏内")
	}
	if result.Distance != 1.9 {
		t.Errorf("期望展示距离=1.9，实际=%v", result.Distance)
	}
	if result.PerimeterRadius != 2.0 {
		t.Errorf("期望围栏半径=2.0，实际=%v", result.PerimeterRadius)
	}
}

func TestGeofenceService_Validate_Outside(t *testing.T) {
	svc, _ := setupTestGeofenceService()

	result, err := svc.Validate(context.Background(), geo.Coordinate{
		Latitude:  outsideLat,
		Longitude: testFacilityLng,
	})
	if err != nil {
		t.Fatalf("Validate 应成功: %v", err)
	}
	if result.IsWithinPerimeter {
		t.Error("9.7km 处应判定为围栏外")
	}
	if result.Distance != 9.7 {
		t.Errorf("期望展示距离=9.7，实际=%v", result.Distance)
	}
}

func TestGeofenceService_Validate_AtCenter(t *testing.T) {
	svc, _ := setupTestGeofenceService()

	result, err := svc.Validate(context.Background(), geo.Coordinate{
		Latitude:  testFacilityLat,
		Longitude: testFacilityLng,
	})
	if err != nil {
		t.Fatalf("Validate 应成功: %v", err)
	}
	if !result.IsWithinPerimeter || result.Distance != 0 {
		t.Errorf("围栏中心应判定为围栏内且距离=0，实际: %+v", result)
	}
}

func TestGeofenceService_Validate_NotConfigured(t *testing.T) {
	svc, facilityRepo := setupTestGeofenceService()
	facilityRepo.cfg = nil

	_, err := svc.Validate(context.Background(), geo.Coordinate{
		Latitude:  insideLat,
		Longitude: testFacilityLng,
	})
	if !errors.Is(err, ErrFacilityNotConfigured) {
		t.Errorf("期望 ErrFacilityNotConfigured，实际: %v", err)
	}
}

func TestGeofenceService_Validate_InvalidCoordinate(t *testing.T) {
	svc, _ := setupTestGeofenceService()

	cases := []struct {
		name string
		pos  geo.Coordinate
	}{
		{"纬度越界", geo.Coordinate{Latitude: 91, Longitude: 0}},
		{"经度越界", geo.Coordinate{Latitude: 0, Longitude: 181}},
		{"NaN", geo.Coordinate{Latitude: math.NaN(), Longitude: 0}},
		{"Inf", geo.Coordinate{Latitude: 0, Longitude: math.Inf(1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Validate(context.Background(), tc.pos)
			if !errors.Is(err, ErrInvalidCoordinate) {
				t.Errorf("期望 ErrInvalidCoordinate，实际: %v", err)
			}
		})
	}
}
