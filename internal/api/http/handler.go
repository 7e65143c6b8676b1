package http

import (
	"errors"
	"net/http"
	"strconv"

	"jungle/internal/game"
	"jungle/internal/room"
	"jungle/internal/shared"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrUnknownPlayer):
		return http.StatusForbidden
	case errors.Is(err, room.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, game.ErrIllegalMove), errors.Is(err, game.ErrOutOfBounds):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// @Summary Create new room
// @Description Create a room with two seats and a dealt starting position
// @Tags Room
// @Accept json
// @Produce json
// @Param request body CreateRoomRequest false "Player names"
// @Success 201 {object} map[string]interface{}
// @Router /rooms [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
				return
			}
		}
		rx, err := rm.CreateRoom(req.Player0, req.Player1)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"roomCode": rx.Code, "room": rx.View()})
	}
}

// @Summary Get room state
// @Tags Room
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code} [get]
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := rm.View(c.Param("code"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": view})
	}
}

// @Summary Get legal moves of a piece
// @Description Returns the destinations of the piece at (row, col); empty when it is not that piece's turn
// @Tags Game
// @Produce json
// @Param code path string true "Room Code"
// @Param row query int true "Row"
// @Param col query int true "Column"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/legal-moves [get]
func LegalMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, errRow := strconv.Atoi(c.Query("row"))
		col, errCol := strconv.Atoi(c.Query("col"))
		if errRow != nil || errCol != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "row and col must be integers"})
			return
		}
		moves, err := rm.LegalMoves(c.Param("code"), row, col)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"from":  shared.Position{Row: row, Col: col},
			"moves": moves,
		})
	}
}

// @Summary Move a piece
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room Code"
// @Param request body MoveRequest true "Move"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		from := shared.Position{Row: *req.FromRow, Col: *req.FromCol}
		to := shared.Position{Row: *req.ToRow, Col: *req.ToCol}
		view, err := rm.ApplyMove(c.Param("code"), req.SeatID, from, to)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": view})
	}
}

// @Summary Restart a room
// @Description Deals a fresh game to the same seats
// @Tags Room
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/restart [post]
func RestartHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := rm.Restart(c.Param("code"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": view})
	}
}
