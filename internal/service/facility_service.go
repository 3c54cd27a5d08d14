package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Muskan244/CareClock/internal/dto"
	"github.com/Muskan244/CareClock/internal/model"
	"github.com/Muskan244/CareClock/internal/repository"
)

// FacilityService 机构围栏配置业务接口
type FacilityService interface {
	Get(ctx context.Context) (*dto.FacilityConfigResponse, error)
	// Replace 全量替换当前配置（管理员操作），替换对并发读取原子可见
	Replace(ctx context.Context, req *dto.ReplaceFacilityConfigRequest, callerID string) (*dto.FacilityConfigResponse, error)
}

type facilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFacilityService 创建 FacilityService 实例
func NewFacilityService(repo *repository.Repository, logger *zap.Logger) FacilityService {
	return &facilityService{repo: repo, logger: logger}
}

// ────────────────────── Get ──────────────────────

func (s *facilityService) Get(ctx context.Context) (*dto.FacilityConfigResponse, error) {
	cfg, err := s.repo.Facility.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacilityNotConfigured
		}
		s.logger.Error("查询机构配置失败", zap.Error(err))
		return nil, err
	}

	return toFacilityResponse(cfg), nil
}

// ────────────────────── Replace ──────────────────────

func (s *facilityService) Replace(ctx context.Context, req *dto.ReplaceFacilityConfigRequest, callerID string) (*dto.FacilityConfigResponse, error) {
	cfg := &model.FacilityConfig{
		Name:              req.Name,
		Address:           req.Address,
		Latitude:          *req.Latitude,
		Longitude:         *req.Longitude,
		PerimeterRadiusKm: *req.PerimeterRadius,
		UpdatedBy:         &callerID,
	}

	if err := s.repo.Facility.Replace(ctx, cfg); err != nil {
		s.logger.Error("替换机构配置失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("机构围栏配置已替换",
		zap.String("name", cfg.Name),
		zap.Float64("radius_km", cfg.PerimeterRadiusKm),
		zap.String("updated_by", callerID),
	)

	return toFacilityResponse(cfg), nil
}

// toFacilityResponse 模型转响应
func toFacilityResponse(cfg *model.FacilityConfig) *dto.FacilityConfigResponse {
	return &dto.FacilityConfigResponse{
		Name:            cfg.Name,
		Address:         cfg.Address,
		Latitude:        cfg.Latitude,
		Longitude:       cfg.Longitude,
		PerimeterRadius: cfg.PerimeterRadiusKm,
		UpdatedAt:       cfg.UpdatedAt.Format(time.RFC3339),
	}
}
