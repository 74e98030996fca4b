package dto

// CreateSeatRequest creates a seat in a room. Geometry fields left
// unset fall back to the seat defaults (0, 0, 100, 100, 0).
type CreateSeatRequest struct {
	RoomID     string   `json:"room_id"     binding:"required,uuid"`
	SeatNumber string   `json:"seat_number" binding:"required,max=50"`
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	Width      *float64 `json:"width"       binding:"omitempty,gt=0"`
	Height     *float64 `json:"height"      binding:"omitempty,gt=0"`
	Rotation   *float64 `json:"rotation"`
}

// UpdateSeatRequest replaces the mutable fields of a seat, including
// its parent room.
type UpdateSeatRequest struct {
	RoomID     string   `json:"room_id"     binding:"required,uuid"`
	SeatNumber string   `json:"seat_number" binding:"required,max=50"`
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	Width      *float64 `json:"width"       binding:"omitempty,gt=0"`
	Height     *float64 `json:"height"      binding:"omitempty,gt=0"`
	Rotation   *float64 `json:"rotation"`
}

// SeatResponse is the wire representation of a seat. Occupied is
// derived from the assignee set, never stored.
type SeatResponse struct {
	ID          string   `json:"id"`
	RoomID      string   `json:"room_id"`
	SeatNumber  string   `json:"seat_number"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Rotation    float64  `json:"rotation"`
	EmployeeIDs []string `json:"employee_ids"`
	Occupied    bool     `json:"occupied"`
	CreatedAt   string   `json:"created_at"`
}
