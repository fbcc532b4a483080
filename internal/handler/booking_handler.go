package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fieldhouse/service-booking/internal/application"
	"github.com/fieldhouse/service-booking/internal/platform/response"
)

// BookingHandler handles HTTP requests for the booking workflow.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/api/v1/bookings")
	{
		bookings.POST("", h.BookPitch)
		bookings.GET("", h.GetBookingsForPlayerOnDate)
	}
}

// BookPitch handles POST /api/v1/bookings.
func (h *BookingHandler) BookPitch(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.BookPitch(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetBookingsForPlayerOnDate handles GET /api/v1/bookings?player_id=&date=.
// The date accepts RFC 3339 or a plain calendar date.
func (h *BookingHandler) GetBookingsForPlayerOnDate(c *gin.Context) {
	playerID := c.Query("player_id")
	if playerID == "" {
		response.BadRequest(c, "player_id is required")
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		response.BadRequest(c, "date must be RFC 3339 or YYYY-MM-DD")
		return
	}

	result, err := h.service.GetBookingsForPlayerOnDate(c.Request.Context(), playerID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
