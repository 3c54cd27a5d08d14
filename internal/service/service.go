package service

import (
	"go.uber.org/zap"

	"github.com/Muskan244/CareClock/config"
	"github.com/Muskan244/CareClock/internal/repository"
	"github.com/Muskan244/CareClock/pkg/jwt"
	"github.com/Muskan244/CareClock/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth     AuthService
	User     UserService
	Geofence GeofenceService
	Shift    ShiftService
	Facility FacilityService
	Export   ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	geofence := NewGeofenceService(repo, logger)

	return &Service{
		Auth:     NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:     NewUserService(repo, logger),
		Geofence: geofence,
		Shift:    NewShiftService(cfg, repo, geofence, logger),
		Facility: NewFacilityService(repo, logger),
		Export:   NewExportService(repo, logger),
	}
}
