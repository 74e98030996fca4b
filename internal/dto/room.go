package dto

// CreateRoomRequest creates a room on a floor. Geometry fields left
// unset fall back to the room defaults (0, 0, 300, 200).
type CreateRoomRequest struct {
	FloorID    string   `json:"floor_id"    binding:"required,uuid"`
	RoomNumber string   `json:"room_number" binding:"required,max=50"`
	Name       string   `json:"name"        binding:"required,max=100"`
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	Width      *float64 `json:"width"       binding:"omitempty,gt=0"`
	Height     *float64 `json:"height"      binding:"omitempty,gt=0"`
}

// UpdateRoomRequest replaces the mutable fields of a room, including
// its parent floor. Geometry fields left unset keep their stored value.
type UpdateRoomRequest struct {
	FloorID    string   `json:"floor_id"    binding:"required,uuid"`
	RoomNumber string   `json:"room_number" binding:"required,max=50"`
	Name       string   `json:"name"        binding:"required,max=100"`
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	Width      *float64 `json:"width"       binding:"omitempty,gt=0"`
	Height     *float64 `json:"height"      binding:"omitempty,gt=0"`
}

// RoomResponse is the wire representation of a room.
type RoomResponse struct {
	ID         string   `json:"id"`
	FloorID    string   `json:"floor_id"`
	RoomNumber string   `json:"room_number"`
	Name       string   `json:"name"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	SeatIDs    []string `json:"seat_ids"`
	CreatedAt  string   `json:"created_at"`
}
