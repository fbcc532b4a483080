package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldhouse/service-booking/internal/application"
	"github.com/fieldhouse/service-booking/internal/platform/response"
)

// RankingHandler handles HTTP requests for match results and the ranking ladder.
type RankingHandler struct {
	service *application.RankingService
}

// NewRankingHandler creates a new RankingHandler.
func NewRankingHandler(service *application.RankingService) *RankingHandler {
	return &RankingHandler{service: service}
}

// RegisterRoutes registers ranking routes on the given router group.
func (h *RankingHandler) RegisterRoutes(r *gin.RouterGroup) {
	matches := r.Group("/api/v1/matches")
	{
		matches.POST("", h.SubmitMatchResult)
	}
	rankings := r.Group("/api/v1/rankings")
	{
		rankings.GET("", h.GetRankings)
		rankings.GET("/:playerId", h.GetPlayerRanking)
	}
	r.GET("/api/v1/players/:id/matches", h.GetPlayerMatches)
}

// SubmitMatchResult handles POST /api/v1/matches.
func (h *RankingHandler) SubmitMatchResult(c *gin.Context) {
	var req application.SubmitMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SubmitMatchResult(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetRankings handles GET /api/v1/rankings.
func (h *RankingHandler) GetRankings(c *gin.Context) {
	result, err := h.service.GetRankings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetPlayerRanking handles GET /api/v1/rankings/:playerId.
func (h *RankingHandler) GetPlayerRanking(c *gin.Context) {
	result, err := h.service.GetPlayerRanking(c.Request.Context(), c.Param("playerId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetPlayerMatches handles GET /api/v1/players/:id/matches.
func (h *RankingHandler) GetPlayerMatches(c *gin.Context) {
	result, err := h.service.GetPlayerMatches(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
