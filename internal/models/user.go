package models

import "time"

type User struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"size:100;not null"`
	Email     string `gorm:"size:254;not null;uniqueIndex:idx_users_email"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Teams     []Team `gorm:"many2many:team_members;joinForeignKey:user_id;joinReferences:team_id"`
}

func (User) TableName() string {
	return "users"
}

func (u User) String() string {
	return u.Username
}
