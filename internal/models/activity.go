package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the ISO calendar date format used on the wire.
const DateLayout = "2006-01-02"

type Activity struct {
	ID           uint64         `gorm:"primaryKey;autoIncrement"`
	UserID       uint64         `gorm:"not null;index"`
	User         User           `gorm:"constraint:OnDelete:CASCADE"`
	ActivityType string         `gorm:"size:100;not null"`
	Duration     float64        `gorm:"not null"` // minutes
	Date         datatypes.Date `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Activity) TableName() string {
	return "activities"
}

// DateString renders the activity date as YYYY-MM-DD.
func (a Activity) DateString() string {
	return time.Time(a.Date).Format(DateLayout)
}

func (a Activity) String() string {
	return fmt.Sprintf("%s - %s on %s", a.User.Username, a.ActivityType, a.DateString())
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// NewDate builds a calendar date in UTC.
func NewDate(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}
