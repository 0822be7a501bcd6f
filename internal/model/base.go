package model

import "time"

// Base holds the columns every table shares.
type Base struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Created    time.Time `gorm:"not null" json:"created"`
	LastUpdate time.Time `gorm:"not null" json:"last_update"`
}

// Touch stamps LastUpdate, and Created when the row is new.
func (b *Base) Touch(now time.Time) {
	if b.Created.IsZero() {
		b.Created = now
	}
	b.LastUpdate = now
}

// Key returns the primary key.
func (b *Base) Key() uint {
	return b.ID
}
