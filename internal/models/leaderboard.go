package models

import (
	"fmt"
	"time"
)

type Leaderboard struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    uint64 `gorm:"not null;index"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	Score     int64  `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Leaderboard) TableName() string {
	return "leaderboard"
}

func (l Leaderboard) String() string {
	return fmt.Sprintf("%s: %d", l.User.Username, l.Score)
}
