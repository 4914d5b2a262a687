package gateway

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	slogGin "github.com/samber/slog-gin"

	"github.com/tradelearn/lessonstream/internal/gateway/auth"
	"github.com/tradelearn/lessonstream/internal/gateway/handlers/lesson"
	"github.com/tradelearn/lessonstream/internal/gateway/handlers/video"
	"github.com/tradelearn/lessonstream/internal/gateway/middlewares"
	"github.com/tradelearn/lessonstream/internal/version"
)

func SetupRoutes(svc *Services, config *Config) http.Handler {
	r := gin.New()

	lessonH := lesson.New(svc.Lessons)
	videoH := video.New(svc.Lessons)

	httpLogger := slog.Default().WithGroup("http")
	r.Use(slogGin.NewWithConfig(httpLogger, slogGin.Config{
		DefaultLevel:      slog.LevelInfo,
		ClientErrorLevel:  slog.LevelWarn,
		ServerErrorLevel:  slog.LevelError,
		WithRequestID:     true,
		WithRequestHeader: true,
		WithTraceID:       true,
		WithSpanID:        true,
	}))
	r.Use(gin.Recovery())
	if config.HTTP.CertFile != "" && config.HTTP.KeyFile != "" {
		r.Use(middlewares.HSTS())
	}
	// Video bytes are already compressed media; gzip would burn CPU and
	// break range-length accounting.
	r.Use(gzip.Gzip(gzip.BestSpeed, gzip.WithExcludedPathsRegexs([]string{`^/api/lessons/.+/video$`})))
	r.Use(cors.Default())

	r.GET("/", IndexHandler)
	r.GET("/healthz", HealthHandler)

	apiGroup := r.Group("/api")
	apiGroup.Use(middlewares.JWTAuth(svc.Auth))
	apiGroup.Use(middlewares.RequireRole(svc.Auth, auth.RoleStudent))
	{
		apiGroup.GET("/lessons", lessonH.List)
		apiGroup.GET("/lessons/:id", lessonH.Get)
		apiGroup.GET("/lessons/:id/video", middlewares.RateLimiter(DefaultVideoRate), videoH.Stream)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "not found",
		})
	})

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "method not allowed",
		})
	})

	return r.Handler()
}

func IndexHandler(ctx *gin.Context) {
	ctx.String(http.StatusOK, version.DetailedWithApp())
}

func HealthHandler(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
