package model

// User is one registered account. PasswordHash holds a werkzeug-style
// pbkdf2:sha256 digest, never the plaintext password.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Name         string `json:"name" gorm:"size:1000"`
	PasswordHash string `json:"-" gorm:"size:250;not null"`
}
