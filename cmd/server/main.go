package main

import (
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/config"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/mailer"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/middleware"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/registry"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/uploader"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/store/filestore"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/database"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/logger"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/metrics"

	// Domain modules self-register on import.
	_ "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/cart"
	_ "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/catalog"
	_ "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/order"
	_ "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/payment"
	_ "github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.GlobalConfig

	logger.Init(cfg.Server.Mode != "release")
	defer logger.Sync()

	ctx := &registry.ModuleContext{}
	if cfg.Database.Enabled() {
		ctx.DB = database.InitDatabase()
		logger.Log.Info("database backend active")
	} else {
		store, err := filestore.New(cfg.Store.Dir)
		if err != nil {
			logger.Log.Fatal("failed to open flat-file store", zap.String("dir", cfg.Store.Dir), zap.Error(err))
		}
		ctx.Store = store
		logger.Log.Warn("no database configured, using flat-file store", zap.String("dir", cfg.Store.Dir))
	}
	ctx.Redis = database.InitRedis()

	// Mail and uploads are optional; the storefront runs without them.
	if err := mailer.InitMailer(); err != nil {
		logger.Log.Warn("mailer disabled", zap.Error(err))
	}
	if err := uploader.InitUploader(); err != nil {
		logger.Log.Warn("uploader disabled", zap.Error(err))
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(cors.Default())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	ctx.Router = r
	if err := registry.InitModules(ctx); err != nil {
		logger.Log.Fatal("module initialization failed", zap.Error(err))
	}

	logger.Log.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Log.Fatal("server exited", zap.Error(err))
	}
}
