package models

import "time"

type Workout struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text"`
	Exercises   Exercises `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Workout) TableName() string {
	return "workouts"
}

func (w Workout) String() string {
	return w.Name
}
