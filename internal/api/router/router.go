package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Muskan244/CareClock/config"
	"github.com/Muskan244/CareClock/internal/api/handler"
	"github.com/Muskan244/CareClock/internal/api/middleware"
	"github.com/Muskan244/CareClock/internal/model"
	"github.com/Muskan244/CareClock/pkg/jwt"
	"github.com/Muskan244/CareClock/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，登录与注册限流）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Register)
			auth.POST("/login", middleware.RateLimit(rdb, 20, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 用户模块
			authorized.PUT("/users/me/role", h.User.UpdateMyRole)

			// 地理围栏模块
			authorized.POST("/geofence/validate", h.Geofence.Validate)

			// 打卡模块
			shifts := authorized.Group("/shifts")
			{
				shifts.POST("/clock-in", h.Shift.ClockIn)
				shifts.POST("/clock-out", h.Shift.ClockOut)
				shifts.GET("/active", h.Shift.GetActive)
				shifts.GET("", h.Shift.ListMine)
			}

			// 机构配置：读取对所有登录用户开放
			authorized.GET("/facility", h.Facility.GetConfig)

			// 管理端模块
			manager := authorized.Group("/manager")
			manager.Use(middleware.RoleAuth(model.RoleManager))
			{
				manager.GET("/roster", h.Shift.ActiveRoster)
				manager.GET("/analytics", h.Shift.Analytics)
				manager.GET("/timesheet/export", h.Export.ExportTimesheet)
			}

			// 机构配置写入仅限 manager
			authorized.PUT("/facility", middleware.RoleAuth(model.RoleManager), h.Facility.ReplaceConfig)
		}
	}

	return r
}
