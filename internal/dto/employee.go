package dto

// CreateEmployeeRequest creates an employee.
type CreateEmployeeRequest struct {
	FullName   string `json:"full_name"  binding:"required,max=100"`
	Occupation string `json:"occupation" binding:"required,max=100"`
}

// EmployeeResponse is the wire representation of an employee. Seats
// are referenced by id only.
type EmployeeResponse struct {
	ID         string   `json:"id"`
	FullName   string   `json:"full_name"`
	Occupation string   `json:"occupation"`
	SeatIDs    []string `json:"seat_ids"`
	CreatedAt  string   `json:"created_at"`
}

// EmployeeSearchRequest is the paginated substring search input.
type EmployeeSearchRequest struct {
	Search string `form:"search"`
	Page   *int   `form:"page"`
	Size   *int   `form:"size"`
}

// EmployeeSearchResponse is the page window plus totals computed over
// the full matching set.
type EmployeeSearchResponse struct {
	Content       []EmployeeResponse `json:"content"`
	TotalElements int64              `json:"total_elements"`
	TotalPages    int                `json:"total_pages"`
	CurrentPage   int                `json:"current_page"`
	Size          int                `json:"size"`
}

// AssignmentResponse reports the state of one employee-seat pair after
// an assign or unassign call.
type AssignmentResponse struct {
	EmployeeID string `json:"employee_id"`
	SeatID     string `json:"seat_id"`
	Assigned   bool   `json:"assigned"`
}
