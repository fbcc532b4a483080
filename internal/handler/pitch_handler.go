package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldhouse/service-booking/internal/application"
	"github.com/fieldhouse/service-booking/internal/platform/response"
)

// PitchHandler handles HTTP requests for pitch administration.
type PitchHandler struct {
	service *application.PitchService
}

// NewPitchHandler creates a new PitchHandler.
func NewPitchHandler(service *application.PitchService) *PitchHandler {
	return &PitchHandler{service: service}
}

// RegisterRoutes registers pitch routes on the given router group.
func (h *PitchHandler) RegisterRoutes(r *gin.RouterGroup) {
	pitches := r.Group("/api/v1/pitches")
	{
		pitches.POST("", h.CreatePitch)
		pitches.GET("", h.GetAllPitches)
		pitches.GET("/active", h.GetActivePitches)
		pitches.GET("/:id", h.GetPitch)
		pitches.DELETE("/:id", h.DeactivatePitch)
	}
}

// CreatePitch handles POST /api/v1/pitches.
func (h *PitchHandler) CreatePitch(c *gin.Context) {
	var req application.CreatePitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreatePitch(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetAllPitches handles GET /api/v1/pitches.
func (h *PitchHandler) GetAllPitches(c *gin.Context) {
	result, err := h.service.GetAllPitches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetActivePitches handles GET /api/v1/pitches/active.
func (h *PitchHandler) GetActivePitches(c *gin.Context) {
	result, err := h.service.GetActivePitches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetPitch handles GET /api/v1/pitches/:id.
func (h *PitchHandler) GetPitch(c *gin.Context) {
	result, err := h.service.GetPitch(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeactivatePitch handles DELETE /api/v1/pitches/:id.
func (h *PitchHandler) DeactivatePitch(c *gin.Context) {
	if err := h.service.DeactivatePitch(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
