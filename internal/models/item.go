package models

import "time"

// Item is a catalog entry. Purchase slips copy the name as free text,
// there is no foreign key back to it.
type Item struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:128;uniqueIndex;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
