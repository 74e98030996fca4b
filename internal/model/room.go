package model

import "time"

// Room is an office room on a floor. The room number is unique within
// its floor, not globally.
type Room struct {
	RoomID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"          json:"room_id"`
	FloorID    string    `gorm:"type:uuid;not null;uniqueIndex:uq_rooms_floor_room_number" json:"floor_id"`
	RoomNumber string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_rooms_floor_room_number" json:"room_number"`
	Name       string    `gorm:"type:varchar(100);not null"                              json:"name"`
	X          float64   `gorm:"not null;default:0"                                      json:"x"`
	Y          float64   `gorm:"not null;default:0"                                      json:"y"`
	Width      float64   `gorm:"not null;default:300"                                    json:"width"`
	Height     float64   `gorm:"not null;default:200"                                    json:"height"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                      json:"created_at"`
}

// TableName maps the entity to its table.
func (Room) TableName() string { return "rooms" }

// Room geometry defaults applied when a create request leaves them unset.
const (
	DefaultRoomWidth  = 300.0
	DefaultRoomHeight = 200.0
)
