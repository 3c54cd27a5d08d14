package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Muskan244/CareClock/internal/dto"
	"github.com/Muskan244/CareClock/internal/repository"
	"github.com/Muskan244/CareClock/pkg/geo"
)

// ── 地理围栏模块业务错误 ──

var (
	ErrFacilityNotConfigured = errors.New("机构围栏尚未配置")
	ErrInvalidCoordinate     = errors.New("坐标无效")
)

// GeofenceService 地理围栏业务接口
// 纯计算端点：读取当前机构配置并对上报坐标做围栏判定，无副作用
type GeofenceService interface {
	Validate(ctx context.Context, position geo.Coordinate) (*dto.GeofenceVerdictResponse, error)
}

type geofenceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGeofenceService 创建 GeofenceService 实例
func NewGeofenceService(repo *repository.Repository, logger *zap.Logger) GeofenceService {
	return &geofenceService{repo: repo, logger: logger}
}

// ────────────────────── Validate ──────────────────────

func (s *geofenceService) Validate(ctx context.Context, position geo.Coordinate) (*dto.GeofenceVerdictResponse, error) {
	if !position.Valid() {
		return nil, ErrInvalidCoordinate
	}

	facility, err := s.repo.Facility.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacilityNotConfigured
		}
		s.logger.Error("查询机构配置失败", zap.Error(err))
		return nil, err
	}

	center := geo.Coordinate{Latitude: facility.Latitude, Longitude: facility.Longitude}
	verdict := geo.Evaluate(position, center, facility.PerimeterRadiusKm)

	return &dto.GeofenceVerdictResponse{
		IsWithinPerimeter: verdict.WithinPerimeter,
		Distance:          verdict.DistanceKm,
		PerimeterRadius:   verdict.PerimeterRadiusKm,
	}, nil
}
