package handler

import "github.com/Muskan244/CareClock/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Geofence *GeofenceHandler
	Shift    *ShiftHandler
	Facility *FacilityHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		User:     NewUserHandler(svc.User),
		Geofence: NewGeofenceHandler(svc.Geofence),
		Shift:    NewShiftHandler(svc.Shift),
		Facility: NewFacilityHandler(svc.Facility),
		Export:   NewExportHandler(svc.Export),
	}
}
