package dto

// StatsResponse holds the overall entity totals.
type StatsResponse struct {
	TotalEmployees int64 `json:"total_employees"`
	TotalFloors    int64 `json:"total_floors"`
	TotalRooms     int64 `json:"total_rooms"`
	TotalSeats     int64 `json:"total_seats"`
}
