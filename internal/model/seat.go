package model

import "time"

// Seat is a seat inside a room. The seat number is unique within its
// room. Occupancy is never stored: a seat is occupied iff at least one
// employee is assigned to it.
type Seat struct {
	SeatID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"           json:"seat_id"`
	RoomID     string    `gorm:"type:uuid;not null;uniqueIndex:uq_seats_room_seat_number" json:"room_id"`
	SeatNumber string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_seats_room_seat_number" json:"seat_number"`
	X          float64   `gorm:"not null;default:0"                 json:"x"`
	Y          float64   `gorm:"not null;default:0"                 json:"y"`
	Width      float64   `gorm:"not null;default:100"               json:"width"`
	Height     float64   `gorm:"not null;default:100"               json:"height"`
	Rotation   float64   `gorm:"not null;default:0"                 json:"rotation"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Employees []Employee `gorm:"many2many:seat_assignments;foreignKey:SeatID;joinForeignKey:SeatID;References:EmployeeID;joinReferences:EmployeeID" json:"-"`
}

// TableName maps the entity to its table.
func (Seat) TableName() string { return "seats" }

// Seat geometry defaults applied when a create request leaves them unset.
const (
	DefaultSeatWidth  = 100.0
	DefaultSeatHeight = 100.0
)
