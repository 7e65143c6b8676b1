package http

import (
	"time"

	"jungle/internal/api/ws"
	"jungle/internal/config"
	"jungle/internal/room"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/rooms", CreateRoomHandler(rm))
	r.GET("/rooms/:code", GetRoomHandler(rm))
	r.POST("/rooms/:code/restart", RestartHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/rooms/:code/legal-moves", LegalMovesHandler(rm))
	r.POST("/rooms/:code/move", MoveHandler(rm))

	// --- CONFIG ENDPOINTS ---
	ch := NewConfigHandler(cfg)
	r.GET("/config/rules", ch.GetRulesHandler)
	r.GET("/config/terrain", ch.GetTerrainHandler)

	return r
}

func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debugw("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
