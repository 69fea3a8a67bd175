package models

import "time"

// Blob is one persisted key/value entry. The whole application state
// lives in two blobs (the transaction collection and the cycle-start-day
// setting), each rewritten in full on every change.
type Blob struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     []byte    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for Blob.
func (Blob) TableName() string {
	return "blobs"
}
