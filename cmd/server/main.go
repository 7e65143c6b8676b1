package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "jungle/internal/api/http"
	"jungle/internal/api/ws"
	"jungle/internal/config"
	"jungle/internal/logger"
	"jungle/internal/room"
	"jungle/internal/store"

	// swagger packages
	_ "jungle/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title Jungle API
// @version 1.0
// @description REST and websocket API for two-seat Jungle rooms (Go + Gin)
// @contact.name Backend Team
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	roomStore, closeStore := openStore(cfg, log)
	defer closeStore()

	rm := room.NewManager(roomStore, cfg, nil, log)
	hub := ws.NewHub(rm, log)
	rm.SetHub(hub)

	r := httpapi.NewRouter(rm, hub, cfg, log)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	handler := httpapi.NewCORS(cfg, log).Handler(r)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infow("listening", "addr", cfg.HTTPAddr, "store", cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("shutdown", "error", err)
	}
}

func openStore(cfg config.Config, log *zap.SugaredLogger) (room.Store, func()) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		rs, err := store.NewRedisStore(cfg.Redis, log)
		if err != nil {
			log.Fatalw("redis unavailable", "addr", cfg.Redis.Addr, "error", err)
		}
		return rs, func() { _ = rs.Close() }
	case config.BackendMemory:
	default:
		log.Warnw("unknown store backend, using memory", "backend", cfg.StoreBackend)
	}
	return store.NewMemoryStore(), func() {}
}
