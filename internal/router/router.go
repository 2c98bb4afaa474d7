package router

import (
	"net/http"

	"github.com/inkpost/internal/config"
	publichandlers "github.com/inkpost/internal/http/handlers/public"
	"github.com/inkpost/internal/logger"
	"github.com/inkpost/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	h := publichandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	if cfg.Metrics.Enabled {
		r.Use(MetricsMiddleware())
	}

	// API 路由组
	api := r.Group(cfg.Server.BasePath)
	api.Use(CORSMiddleware(cfg.CORS))
	{
		api.GET("/ping", h.Ping)

		posts := api.Group("/posts")
		{
			posts.POST("/", h.CreatePost)
			posts.GET("/", h.ListPosts)
			posts.GET("/search", h.SearchPosts)
			posts.GET("/:id", h.GetPost)
			posts.PUT("/:id", h.UpdatePost)
			posts.DELETE("/:id", h.DeletePost)
		}

		categories := api.Group("/categories")
		{
			categories.GET("/", h.ListCategories)
			categories.GET("/:id", h.GetCategory)
			categories.GET("/:id/posts", h.ListCategoryPosts)
		}

		tags := api.Group("/tags")
		{
			tags.GET("/", h.ListTags)
			tags.GET("/:id", h.GetTag)
			tags.GET("/:id/posts", h.ListTagPosts)
		}

		// 预检请求由 CORSMiddleware 直接响应
		api.OPTIONS("/*path", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
	}

	// 健康检查
	r.GET("/health", func(ctx *gin.Context) {
		if err := c.Ping(ctx.Request.Context()); err != nil {
			log.Sugar().Warnw("health_check_db_unavailable", "error", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Metrics.Enabled {
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(promhttp.Handler()))
	}

	return r
}
