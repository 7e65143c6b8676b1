package http

import (
	"net/http"

	"jungle/internal/config"
	"jungle/internal/game"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	cfg config.Config
}

func NewConfigHandler(cfg config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// GetRulesHandler returns the board geometry and rank table
// @Summary Get board rules
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/rules [get]
func (h *ConfigHandler) GetRulesHandler(c *gin.Context) {
	ranks := make([]gin.H, 0, game.MaxRank-game.MinRank+1)
	for r := game.MinRank; r <= game.MaxRank; r++ {
		kind, _ := game.KindForRank(r)
		ranks = append(ranks, gin.H{"rank": r, "kind": kind.String()})
	}

	c.JSON(http.StatusOK, gin.H{
		"height":         game.Height,
		"width":          game.Width,
		"players":        game.NumPlayers,
		"ranks":          ranks,
		"roomCodeLength": h.cfg.RoomCodeLength,
	})
}

// GetTerrainHandler returns the terrain of every square
// @Summary Get board terrain
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/terrain [get]
func (h *ConfigHandler) GetTerrainHandler(c *gin.Context) {
	board := game.NewTerrainBoard()
	rows := make([][]gin.H, game.Height)
	for row := 0; row < game.Height; row++ {
		rows[row] = make([]gin.H, game.Width)
		for col := 0; col < game.Width; col++ {
			sq, _ := board.Get(game.Coordinate{Row: row, Col: col})
			rows[row][col] = gin.H{"terrain": sq.Kind.String(), "owner": sq.Owner}
		}
	}
	c.JSON(http.StatusOK, gin.H{"terrain": rows})
}
