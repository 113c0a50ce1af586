// Package models contains data structures for the application's domain models.
package models

import "time"

// MaxMessageLen is the maximum message text length in characters,
// matching the VARCHAR(140) column.
const MaxMessageLen = 140

// Message is a direct message from one user to another. Messages are
// immutable once created; deleting either endpoint user cascades to the
// message rows.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:varchar(140);not null" json:"text"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
	FromUser  string    `gorm:"column:from_user;not null;index" json:"from_user"`
	ToUser    string    `gorm:"column:to_user;not null;index" json:"to_user"`

	// Relationships
	Sender    *User `gorm:"foreignKey:FromUser;references:Username;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	Recipient *User `gorm:"foreignKey:ToUser;references:Username;constraint:OnDelete:CASCADE" json:"recipient,omitempty"`
}

// TableName specifies the table name for GORM
func (Message) TableName() string {
	return "messages"
}
