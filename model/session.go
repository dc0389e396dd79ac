package model

import "time"

// Session is one server-side login session. The client only ever holds a
// signed token naming the row, so deleting the row ends the session no
// matter what cookies are still in the wild.
type Session struct {
	ID        string    `json:"id" gorm:"size:36;primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}
