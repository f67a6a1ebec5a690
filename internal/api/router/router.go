package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"acadpulse/backend/config"
	"acadpulse/backend/internal/api/handler"
	"acadpulse/backend/internal/api/middleware"
	"acadpulse/backend/pkg/jwt"
	"acadpulse/backend/pkg/redis"
)

// maxBodyBytes 请求体上限。校历/课表快照以 JSON 整体上传，给 4MB
const maxBodyBytes = 4 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；登录/注册限速防撞库）
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 20, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
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

			// 学期模块
			terms := authorized.Group("/terms")
			{
				terms.GET("", h.Term.List)
				terms.GET("/current", h.Term.GetCurrent)
				terms.GET("/status", h.Term.GetDatasetStatus)
				terms.GET("/:id", h.Term.Get)
				terms.POST("", h.Term.Create)
				terms.PUT("/:id", h.Term.Update)
				terms.POST("/:id/activate", h.Term.Activate)
				terms.DELETE("/:id", h.Term.Delete)
			}

			// 校历模块
			calendar := authorized.Group("/calendar")
			{
				calendar.POST("/import", h.Calendar.Import)
				calendar.GET("", h.Calendar.List)
				calendar.GET("/day-order", h.Calendar.DayOrderFor)
			}

			// 课表模块
			timetable := authorized.Group("/timetable")
			{
				timetable.POST("/import", h.Timetable.Import)
				timetable.GET("", h.Timetable.Get)
			}

			// 出勤模块
			attendance := authorized.Group("/attendance")
			{
				attendance.POST("/import", h.Attendance.Import)
				attendance.GET("", h.Attendance.List)
			}

			// 成绩模块
			marks := authorized.Group("/marks")
			{
				marks.POST("/import", h.Mark.Import)
				marks.GET("", h.Mark.List)
			}

			// 预测模块
			authorized.POST("/prediction", h.Prediction.Predict)

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/attendance", h.Export.ExportAttendance)
				export.POST("/leave-plan", h.Export.ExportLeavePlan)
			}
		}
	}

	return r
}
