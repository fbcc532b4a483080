package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fieldhouse/service-booking/internal/application"
	"github.com/fieldhouse/service-booking/internal/platform/response"
)

// PlayerHandler handles HTTP requests for player registration and lookup.
type PlayerHandler struct {
	service *application.PlayerService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(service *application.PlayerService) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// RegisterRoutes registers player routes on the given router group.
func (h *PlayerHandler) RegisterRoutes(r *gin.RouterGroup) {
	players := r.Group("/api/v1/players")
	{
		players.POST("", h.RegisterPlayer)
		players.GET("", h.GetAllPlayers)
		players.GET("/types", h.GetActivePlayerTypes)
		players.GET("/types/:code", h.GetPlayerType)
		players.GET("/:id", h.GetPlayer)
		players.GET("/:id/max-advance-days", h.GetPlayerMaxAdvanceDays)
		players.GET("/:id/can-book", h.CanPlayerBookAt)
	}
}

// RegisterPlayer handles POST /api/v1/players.
func (h *PlayerHandler) RegisterPlayer(c *gin.Context) {
	var req application.RegisterPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RegisterPlayer(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetPlayer handles GET /api/v1/players/:id.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	result, err := h.service.GetPlayer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetAllPlayers handles GET /api/v1/players.
func (h *PlayerHandler) GetAllPlayers(c *gin.Context) {
	result, err := h.service.GetAllPlayers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetActivePlayerTypes handles GET /api/v1/players/types.
func (h *PlayerHandler) GetActivePlayerTypes(c *gin.Context) {
	result, err := h.service.GetActivePlayerTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetPlayerType handles GET /api/v1/players/types/:code.
func (h *PlayerHandler) GetPlayerType(c *gin.Context) {
	result, err := h.service.GetPlayerType(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetPlayerMaxAdvanceDays handles GET /api/v1/players/:id/max-advance-days.
func (h *PlayerHandler) GetPlayerMaxAdvanceDays(c *gin.Context) {
	days, err := h.service.GetPlayerMaxAdvanceDays(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"player_id": c.Param("id"), "max_advance_days": days})
}

// CanPlayerBookAt handles GET /api/v1/players/:id/can-book?booking_time=.
func (h *PlayerHandler) CanPlayerBookAt(c *gin.Context) {
	bookingTime, err := time.Parse(time.RFC3339, c.Query("booking_time"))
	if err != nil {
		response.BadRequest(c, "booking_time must be RFC 3339")
		return
	}

	ok, err := h.service.CanPlayerBookAt(c.Request.Context(), c.Param("id"), bookingTime)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"player_id": c.Param("id"), "can_book": ok})
}
