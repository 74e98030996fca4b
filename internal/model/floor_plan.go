package model

import "time"

// FloorPlan holds the SVG planimetry of a floor. It shares the floor's
// identity and lives in its own table so that loading a floor never
// drags the blob along.
type FloorPlan struct {
	FloorID     string    `gorm:"type:uuid;primaryKey"               json:"floor_id"`
	Planimetry  string    `gorm:"type:text;not null"                 json:"planimetry"`
	LastUpdated time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"last_updated"`
}

// TableName maps the entity to its table.
func (FloorPlan) TableName() string { return "floor_plans" }
