// Package models contains data structures for the application's domain models.
package models

import "time"

// FriendshipStatus represents the status of a friend request.
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates a friend request awaiting a decision.
	FriendshipStatusPending FriendshipStatus = "pending"
	// FriendshipStatusAccepted indicates an accepted friend request.
	FriendshipStatusAccepted FriendshipStatus = "accepted"
	// FriendshipStatusRejected indicates a rejected friend request.
	FriendshipStatusRejected FriendshipStatus = "rejected"
)

// Valid reports whether s is one of the three legal status values.
func (s FriendshipStatus) Valid() bool {
	switch s {
	case FriendshipStatusPending, FriendshipStatusAccepted, FriendshipStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s is a final state with no further transitions.
func (s FriendshipStatus) Terminal() bool {
	return s == FriendshipStatusAccepted || s == FriendshipStatusRejected
}

// Friendship is a directed friend-request row between a sender and a
// recipient. The symmetric "friends" view is derived by querying accepted
// rows in both directions; the row itself stays the single source of truth.
type Friendship struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	Sender    string           `gorm:"column:sender;not null;index" json:"sender"`
	Recipient string           `gorm:"column:recipient;not null;index" json:"recipient"`
	Status    FriendshipStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	// Relationships
	SenderUser    *User `gorm:"foreignKey:Sender;references:Username;constraint:OnDelete:CASCADE" json:"sender_user,omitempty"`
	RecipientUser *User `gorm:"foreignKey:Recipient;references:Username;constraint:OnDelete:CASCADE" json:"recipient_user,omitempty"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}
