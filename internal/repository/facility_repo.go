package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Muskan244/CareClock/internal/model"
)

// FacilityRepository 机构围栏配置数据访问接口
type FacilityRepository interface {
	Get(ctx context.Context) (*model.FacilityConfig, error)
	Replace(ctx context.Context, cfg *model.FacilityConfig) error
}

type facilityRepo struct {
	db *gorm.DB
}

// NewFacilityRepo 创建 FacilityRepository 实例
func NewFacilityRepo(db *gorm.DB) FacilityRepository {
	return &facilityRepo{db: db}
}

func (r *facilityRepo) Get(ctx context.Context) (*model.FacilityConfig, error) {
	var cfg model.FacilityConfig
	err := r.db.WithContext(ctx).First(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Replace 整行原子替换当前配置
// 用单条 ON CONFLICT upsert 而非 delete+insert：并发 Get 只会看到旧行或新行，
// 不存在"无配置"的窗口，也不会读到新旧字段混杂的状态
func (r *facilityRepo) Replace(ctx context.Context, cfg *model.FacilityConfig) error {
	cfg.Singleton = true
	cfg.UpdatedAt = time.Now()

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "singleton"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "address", "latitude", "longitude",
				"perimeter_radius_km", "updated_at", "updated_by",
			}),
		}).
		Create(cfg).Error
}
