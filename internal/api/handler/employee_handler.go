package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/kindoblue/jakarta10-tutoring/internal/dto"
	"github.com/kindoblue/jakarta10-tutoring/internal/service"
	"github.com/kindoblue/jakarta10-tutoring/pkg/response"
)

// EmployeeHandler serves the employee module, including seat
// assignments and the paginated search.
type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

// NewEmployeeHandler creates an EmployeeHandler.
func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

// SearchEmployees handles GET /api/v1/employees. With no query
// parameters it pages through the whole roster.
func (h *EmployeeHandler) SearchEmployees(c *gin.Context) {
	var req dto.EmployeeSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	page, err := h.employeeSvc.Search(c.Request.Context(), &req)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, page)
}

// GetEmployee handles GET /api/v1/employees/:id.
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, err := h.employeeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, employee)
}

// GetEmployeeSeats handles GET /api/v1/employees/:id/seats.
func (h *EmployeeHandler) GetEmployeeSeats(c *gin.Context) {
	seats, err := h.employeeSvc.GetSeats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, gin.H{"list": seats})
}

// CreateEmployee handles POST /api/v1/employees.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	employee, err := h.employeeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.Created(c, employee)
}

// DeleteEmployee handles DELETE /api/v1/employees/:id. Assignments
// held by the employee are released as part of the delete.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.employeeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.NoContent(c)
}

// AssignSeat handles PUT /api/v1/employees/:id/seats/:seatId.
// Assigning an already-held seat is a no-op.
func (h *EmployeeHandler) AssignSeat(c *gin.Context) {
	result, err := h.employeeSvc.Assign(c.Request.Context(), c.Param("id"), c.Param("seatId"))
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, result)
}

// UnassignSeat handles DELETE /api/v1/employees/:id/seats/:seatId.
func (h *EmployeeHandler) UnassignSeat(c *gin.Context) {
	result, err := h.employeeSvc.Unassign(c.Request.Context(), c.Param("id"), c.Param("seatId"))
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, result)
}

// handleEmployeeError maps employee business errors to HTTP responses.
// Seat lookups made while resolving an assignment surface the seat
// module's not-found error, so it is mapped here as well.
func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 14001, err.Error())
	case errors.Is(err, service.ErrEmployeeNameRequired):
		response.BadRequest(c, 14002, err.Error())
	case errors.Is(err, service.ErrEmployeeOccupationRequired):
		response.BadRequest(c, 14003, err.Error())
	case errors.Is(err, service.ErrSeatNotAssigned):
		response.BadRequest(c, 14004, err.Error())
	case errors.Is(err, service.ErrInvalidPage):
		response.BadRequest(c, 14005, err.Error())
	case errors.Is(err, service.ErrInvalidPageSize):
		response.BadRequest(c, 14006, err.Error())
	case errors.Is(err, service.ErrSeatNotFound):
		response.NotFound(c, 13001, err.Error())
	default:
		response.InternalError(c)
	}
}
