package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kindoblue/jakarta10-tutoring/internal/dto"
	"github.com/kindoblue/jakarta10-tutoring/internal/service"
	"github.com/kindoblue/jakarta10-tutoring/pkg/response"
)

// RoomHandler serves the room module, including the geometry patches.
type RoomHandler struct {
	roomSvc service.RoomService
}

// NewRoomHandler creates a RoomHandler.
func NewRoomHandler(roomSvc service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

// GetRoom handles GET /api/v1/rooms/:id.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.roomSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.OK(c, room)
}

// ListRoomSeats handles GET /api/v1/rooms/:id/seats.
func (h *RoomHandler) ListRoomSeats(c *gin.Context) {
	seats, err := h.roomSvc.ListSeats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.OK(c, gin.H{"list": seats})
}

// CreateRoom handles POST /api/v1/rooms.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	room, err := h.roomSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.Created(c, room)
}

// UpdateRoom handles PUT /api/v1/rooms/:id.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	room, err := h.roomSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.OK(c, room)
}

// DeleteRoom handles DELETE /api/v1/rooms/:id.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	if err := h.roomSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.NoContent(c)
}

// PatchRoomGeometry handles PATCH /api/v1/rooms/:id/geometry. The body
// is a sparse map; unknown keys are ignored by the service.
func (h *RoomHandler) PatchRoomGeometry(c *gin.Context) {
	var geometry map[string]float64
	if err := c.ShouldBindJSON(&geometry); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	room, err := h.roomSvc.PatchGeometry(c.Request.Context(), c.Param("id"), geometry)
	if err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.OK(c, room)
}

// PatchSeatGeometry handles PATCH /api/v1/rooms/:id/seats/:seatId/geometry.
func (h *RoomHandler) PatchSeatGeometry(c *gin.Context) {
	var geometry map[string]float64
	if err := c.ShouldBindJSON(&geometry); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	seat, err := h.roomSvc.PatchSeatGeometry(c.Request.Context(), c.Param("id"), c.Param("seatId"), geometry)
	if err != nil {
		h.handleRoomError(c, err)
		return
	}

	response.OK(c, seat)
}

// handleRoomError maps room business errors to HTTP responses.
func (h *RoomHandler) handleRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		response.NotFound(c, 12001, err.Error())
	case errors.Is(err, service.ErrRoomNumberTaken):
		response.Conflict(c, 12002, err.Error())
	case errors.Is(err, service.ErrRoomHasSeats):
		response.Conflict(c, 12003, err.Error())
	case errors.Is(err, service.ErrRoomFloorNotFound):
		response.NotFound(c, 12004, err.Error())
	case errors.Is(err, service.ErrRoomInvalidFloor):
		response.BadRequest(c, 12005, err.Error())
	case errors.Is(err, service.ErrEmptyGeometryPatch):
		response.BadRequest(c, 12006, err.Error())
	case errors.Is(err, service.ErrSeatNotInRoom):
		response.NotFound(c, 12007, err.Error())
	case errors.Is(err, service.ErrRoomNameRequired),
		errors.Is(err, service.ErrRoomNumberRequired):
		response.BadRequest(c, 10001, err.Error())
	default:
		response.InternalError(c)
	}
}
