package dto

// CreateFloorRequest creates a floor.
type CreateFloorRequest struct {
	FloorNumber *int   `json:"floor_number" binding:"required"`
	Name        string `json:"name"         binding:"required,max=100"`
}

// UpdateFloorRequest replaces the mutable fields of a floor.
type UpdateFloorRequest struct {
	FloorNumber *int   `json:"floor_number" binding:"required"`
	Name        string `json:"name"         binding:"required,max=100"`
}

// FloorResponse is the wire representation of a floor. Rooms are
// referenced by id only.
type FloorResponse struct {
	ID           string   `json:"id"`
	FloorNumber  int      `json:"floor_number"`
	Name         string   `json:"name"`
	RoomIDs      []string `json:"room_ids"`
	HasFloorPlan bool     `json:"has_floor_plan"`
	CreatedAt    string   `json:"created_at"`
}

// FloorPlanResponse carries the SVG planimetry of a floor.
type FloorPlanResponse struct {
	FloorID     string `json:"floor_id"`
	Planimetry  string `json:"planimetry"`
	LastUpdated string `json:"last_updated"`
}
