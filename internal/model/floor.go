package model

import "time"

// Floor is a building floor. Rooms are not held as a live collection;
// they are derived queries keyed by floor_id.
type Floor struct {
	FloorID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"floor_id"`
	FloorNumber int       `gorm:"not null;uniqueIndex:uq_floors_floor_number"    json:"floor_number"`
	Name        string    `gorm:"type:varchar(100);not null"                     json:"name"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName maps the entity to its table.
func (Floor) TableName() string { return "floors" }
