package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindoblue/jakarta10-tutoring/internal/dto"
	"github.com/kindoblue/jakarta10-tutoring/internal/service"
	"github.com/kindoblue/jakarta10-tutoring/pkg/response"
)

// FloorHandler serves the floor module, including the floor plan.
type FloorHandler struct {
	floorSvc service.FloorService
}

// NewFloorHandler creates a FloorHandler.
func NewFloorHandler(floorSvc service.FloorService) *FloorHandler {
	return &FloorHandler{floorSvc: floorSvc}
}

// ListFloors handles GET /api/v1/floors.
func (h *FloorHandler) ListFloors(c *gin.Context) {
	floors, err := h.floorSvc.List(c.Request.Context())
	if err != nil {
		h.handleFloorError(c, err)
		return
	}

	response.OK(c, gin.H{"list": floors})
}

// GetFloor handles GET /api/v1/floors/:id.
func (h *FloorHandler) GetFloor(c *gin.Context) {
	floor, err := h.floorSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleFloorError(c, err)
		return
	}

	response.OK(c, floor)
}

// CreateFloor handles POST /api/v1/floors.
func (h *FloorHandler) CreateFloor(c *gin.Context) {
	var req dto.CreateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	floor, err := h.floorSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleFloorError(c, err)
		return
	}

	response.Created(c, floor)
}

// UpdateFloor handles PUT /api/v1/floors/:id.
func (h *FloorHandler) UpdateFloor(c *gin.Context) {
	var req dto.UpdateFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	floor, err := h.floorSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleFloorError(c, err)
		return
	}

	response.OK(c, floor)
}

// DeleteFloor handles DELETE /api/v1/floors/:id.
func (h *FloorHandler) DeleteFloor(c *gin.Context) {
	if err := h.floorSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleFloorError(c, err)
		return
	}

	response.NoContent(c)
}

// GetFloorPlan handles GET /api/v1/floors/:id/plan. The SVG body is
// returned as-is, not wrapped in the JSON envelope.
func (h *FloorHandler) GetFloorPlan(c *gin.Context) {
	plan, err := h.floorSvc.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleFloorError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/svg+xml", []byte(plan.Planimetry))
}

// SetFloorPlan handles PUT /api/v1/floors/:id/plan with a raw SVG body.
func (h *FloorHandler) SetFloorPlan(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	plan, err := h.floorSvc.SetPlan(c.Request.Context(), c.Param("id"), string(body))
	if err != nil {
		h.handleFloorError(c, err)
		return
	}

	response.OK(c, plan)
}

// handleFloorError maps floor business errors to HTTP responses.
func (h *FloorHandler) handleFloorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFloorNotFound):
		response.NotFound(c, 11001, err.Error())
	case errors.Is(err, service.ErrFloorNumberTaken):
		response.Conflict(c, 11002, err.Error())
	case errors.Is(err, service.ErrFloorHasRooms):
		response.Conflict(c, 11003, err.Error())
	case errors.Is(err, service.ErrFloorPlanNotFound):
		response.NotFound(c, 11004, err.Error())
	case errors.Is(err, service.ErrFloorPlanEmpty):
		response.BadRequest(c, 11005, err.Error())
	case errors.Is(err, service.ErrFloorNameRequired):
		response.BadRequest(c, 11006, err.Error())
	default:
		response.InternalError(c)
	}
}
