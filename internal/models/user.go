package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// Friendship is a directed edge in the friend graph; adding a friend
// creates both directions.
type Friendship struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"not null;uniqueIndex:idx_user_friend"`
	FriendID  string    `json:"friend_id" gorm:"not null;uniqueIndex:idx_user_friend"`
	CreatedAt time.Time `json:"created_at"`
}

type TradeStatus string

const (
	TradeStatusPending   TradeStatus = "pending"
	TradeStatusCompleted TradeStatus = "completed"
	TradeStatusCancelled TradeStatus = "cancelled"
)

// Trade is a proposal between two users. The achievement engine only
// cares about completed trades; the proposal workflow itself is a thin
// CRUD surface.
type Trade struct {
	ID          uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	ProposerID  string      `json:"proposer_id" gorm:"not null;index"`
	ReceiverID  string      `json:"receiver_id" gorm:"not null;index"`
	Status      TradeStatus `json:"status" gorm:"default:'pending';index"`
	CompletedAt *time.Time  `json:"completed_at"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type CreateTradeRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
}

// LoginEvent records one login per user per calendar day, feeding the
// streak and activity counters.
type LoginEvent struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"not null;uniqueIndex:idx_user_day"`
	Day       string    `json:"day" gorm:"not null;uniqueIndex:idx_user_day"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}
