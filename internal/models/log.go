package models

import "time"

// Log is a write-only action audit row. Nothing in the UI reads it back;
// it is kept for external inspection of the database file.
type Log struct {
	ID        uint      `gorm:"primaryKey"`
	Timestamp time.Time `gorm:"index;not null"`
	Module    string    `gorm:"size:64;not null"`
	Action    string    `gorm:"size:255;not null"`
	BranchID  int       `gorm:"not null"` // always 0, single-branch deployment
}
