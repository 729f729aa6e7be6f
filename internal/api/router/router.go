package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dwahderian-ui/uniform/config"
	"github.com/dwahderian-ui/uniform/internal/api/handler"
	"github.com/dwahderian-ui/uniform/internal/api/middleware"
	"github.com/dwahderian-ui/uniform/internal/model"
	"github.com/dwahderian-ui/uniform/pkg/jwt"
	"github.com/dwahderian-ui/uniform/pkg/redis"
)

// maxSubmissionBytes caps request bodies; submissions carry one document.
const maxSubmissionBytes = 10 << 20 // 10MB

// Setup assembles the Gin engine.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxSubmissionBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// unauthenticated
		auth := v1.Group("/auth")
		{
			auth.POST("/login",
				middleware.RateLimit(rdb, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow),
				h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// authenticated
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			// submission is open to any authenticated identity
			authorized.POST("/requests", h.Request.Submit)

			// secretary workflow
			admin := authorized.Group("/admin", middleware.RoleAuth(model.RoleSecretary))
			{
				admin.GET("/dashboard", h.Request.Dashboard)
				admin.GET("/requests/:id", h.Request.GetRequest)
				admin.PUT("/requests/:id/status", h.Request.UpdateStatus)
				admin.GET("/export/requests", h.Export.ExportRequests)
				admin.GET("/export/calendar", h.Export.ExportCalendar)
			}
		}
	}

	return r
}
