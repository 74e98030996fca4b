package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kindoblue/jakarta10-tutoring/internal/dto"
	"github.com/kindoblue/jakarta10-tutoring/internal/service"
	"github.com/kindoblue/jakarta10-tutoring/pkg/response"
)

// SeatHandler serves the seat module.
type SeatHandler struct {
	seatSvc service.SeatService
}

// NewSeatHandler creates a SeatHandler.
func NewSeatHandler(seatSvc service.SeatService) *SeatHandler {
	return &SeatHandler{seatSvc: seatSvc}
}

// GetSeat handles GET /api/v1/seats/:id.
func (h *SeatHandler) GetSeat(c *gin.Context) {
	seat, err := h.seatSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleSeatError(c, err)
		return
	}

	response.OK(c, seat)
}

// CreateSeat handles POST /api/v1/seats.
func (h *SeatHandler) CreateSeat(c *gin.Context) {
	var req dto.CreateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	seat, err := h.seatSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleSeatError(c, err)
		return
	}

	response.Created(c, seat)
}

// UpdateSeat handles PUT /api/v1/seats/:id.
func (h *SeatHandler) UpdateSeat(c *gin.Context) {
	var req dto.UpdateSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	seat, err := h.seatSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleSeatError(c, err)
		return
	}

	response.OK(c, seat)
}

// DeleteSeat handles DELETE /api/v1/seats/:id.
func (h *SeatHandler) DeleteSeat(c *gin.Context) {
	if err := h.seatSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleSeatError(c, err)
		return
	}

	response.NoContent(c)
}

// handleSeatError maps seat business errors to HTTP responses.
func (h *SeatHandler) handleSeatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSeatNotFound):
		response.NotFound(c, 13001, err.Error())
	case errors.Is(err, service.ErrSeatNumberTaken):
		response.Conflict(c, 13002, err.Error())
	case errors.Is(err, service.ErrSeatOccupied):
		response.Conflict(c, 13003, err.Error())
	case errors.Is(err, service.ErrSeatRoomNotFound):
		response.NotFound(c, 13004, err.Error())
	case errors.Is(err, service.ErrSeatInvalidRoom):
		response.BadRequest(c, 13005, err.Error())
	case errors.Is(err, service.ErrSeatNumberRequired):
		response.BadRequest(c, 10001, err.Error())
	default:
		response.InternalError(c)
	}
}
