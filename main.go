package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"inspectrack/docs"
	"inspectrack/internal/api"
	"inspectrack/internal/config"
	"inspectrack/internal/handlers"
	"inspectrack/internal/logger"
	"inspectrack/internal/observability"
	"inspectrack/internal/reconcile"
	"inspectrack/internal/store"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
)

// @title Inspection Tracker API
// @description Sites, devices, checklist submissions and monthly status.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := observability.InitOTel(ctx, logg, cfg)
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// schema migration runs here, once per boot
	db, err := store.Open(cfg.DatabaseURL, logg)
	if err != nil {
		logg.Fatal("failed to open db", "error", err)
	}
	defer db.Close()

	env := &handlers.Env{
		Catalog:    db,
		Ledger:     db,
		Reconciler: reconcile.NewService(db, db, logg),
		BaseURL:    cfg.BaseURL,
		Log:        logg,
	}

	// set swagger info
	docs.SwaggerInfo.Title = "Inspection Tracker API"
	docs.SwaggerInfo.Version = "v1.0.0"

	if cfg.LogMode == "prod" || cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := api.NewEngine(env, api.Options{
		AdminPassword: cfg.AdminPassword,
		CORSOrigins:   cfg.CORSOrigins,
		ServiceName:   cfg.OtelServiceName,
	})

	// swagger UI route (embedded docs package) - ensure UI loads embedded /swagger/doc.json
	// Register the wildcard route first to avoid gin routing conflicts.
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	// ensure visiting /swagger goes to the UI index (temporary redirect)
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/swagger/index.html")
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}()

	logg.Info("server listening", "addr", srv.Addr, "base_url", cfg.BaseURL)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatal("server exit", "error", err)
	}
}
