// Package models contains data structures for the application's domain models.
package models

// User represents a registered Friender profile. Users are keyed by
// username rather than a surrogate id; messages and friendships reference
// that key directly.
type User struct {
	Username       string  `gorm:"primaryKey;column:username" json:"username"`
	Email          string  `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string  `gorm:"column:hashed_password;not null" json:"-"`
	Location       int     `gorm:"not null" json:"location"`
	Bio            string  `gorm:"not null" json:"bio"`
	FriendRadius   int     `gorm:"column:friend_radius;not null" json:"friend_radius"`
	Photo          *string `json:"photo"`
	IsAdmin        bool    `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
