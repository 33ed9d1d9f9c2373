package models

import (
	"slices"
	"time"
)

type Team struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Members   []User `gorm:"many2many:team_members;joinForeignKey:team_id;joinReferences:user_id"`
}

func (Team) TableName() string {
	return "teams"
}

func (t Team) String() string {
	return t.Name
}

// MemberIDs returns the ids of the preloaded members in ascending order.
func (t Team) MemberIDs() []uint64 {
	ids := make([]uint64, 0, len(t.Members))
	for _, m := range t.Members {
		ids = append(ids, m.ID)
	}
	slices.Sort(ids)
	return ids
}
