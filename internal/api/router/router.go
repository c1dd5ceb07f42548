package router

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"memberbook/config"
	"memberbook/internal/api/handler"
	"memberbook/internal/api/middleware"
	"memberbook/internal/repository"
	"memberbook/pkg/redis"
	"memberbook/pkg/session"
	"memberbook/web"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, codec *session.Codec, repo *repository.Repository, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 模板 ──
	tmpl := template.Must(template.ParseFS(web.Templates, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20))
	r.Use(middleware.ResolveSession(codec, repo))

	// ── 路由 ──
	r.GET("/", h.User.Index)

	r.GET("/register", h.Auth.ShowRegister)
	r.POST("/register", h.Auth.Register)
	r.GET("/login", h.Auth.ShowLogin)
	r.POST("/login",
		middleware.RateLimit(rdb, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow),
		h.Auth.Login)
	r.GET("/logout", h.Auth.Logout)

	// 需要登录的路由（匿名重定向到 /login）
	authorized := r.Group("", middleware.RequireUser())
	{
		authorized.GET("/members", h.User.Members)
		authorized.GET("/members/export", h.User.ExportMembers)
	}

	// 编辑页自带归属校验：非本人（含匿名）一律渲染 403 页，不做重定向
	r.GET("/edit/:id", h.User.ShowEdit)
	r.POST("/edit/:id", h.User.Edit)

	return r
}
