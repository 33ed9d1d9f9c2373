package services

import (
	"github.com/localnerve/octofit-tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeaderboardPatch carries the fields to change on a leaderboard entry
type LeaderboardPatch struct {
	UserID *uint64
	Score  *int64
}

// CreateLeaderboardEntry inserts a score for an existing user
func CreateLeaderboardEntry(db *gorm.DB, entry *models.Leaderboard) error {
	return write(db, KindLeaderboard, "create", 0, func(tx *gorm.DB) error {
		if err := requireUser(tx, entry.UserID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(entry).Error
	})
}

// GetLeaderboardEntry retrieves a leaderboard entry by id
func GetLeaderboardEntry(db *gorm.DB, id uint64) (*models.Leaderboard, error) {
	return get[models.Leaderboard](db, KindLeaderboard, id)
}

// ListLeaderboard retrieves all leaderboard entries ordered by id
func ListLeaderboard(db *gorm.DB) ([]models.Leaderboard, error) {
	return list[models.Leaderboard](db, KindLeaderboard)
}

// UpdateLeaderboardEntry applies a patch to a leaderboard entry
func UpdateLeaderboardEntry(db *gorm.DB, id uint64, patch LeaderboardPatch) (*models.Leaderboard, error) {
	var entry models.Leaderboard

	err := write(db, KindLeaderboard, "update", id, func(tx *gorm.DB) error {
		if err := tx.First(&entry, id).Error; err != nil {
			return err
		}
		if patch.UserID != nil {
			if err := requireUser(tx, *patch.UserID); err != nil {
				return err
			}
			entry.UserID = *patch.UserID
		}
		if patch.Score != nil {
			entry.Score = *patch.Score
		}
		return tx.Model(&entry).Omit(clause.Associations).
			Select("user_id", "score").
			Updates(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteLeaderboardEntry removes a leaderboard entry
func DeleteLeaderboardEntry(db *gorm.DB, id uint64) error {
	return write(db, KindLeaderboard, "delete", id, func(tx *gorm.DB) error {
		result := tx.Delete(&models.Leaderboard{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteAllLeaderboard removes every leaderboard entry
func DeleteAllLeaderboard(db *gorm.DB) (int64, error) {
	var affected int64
	err := write(db, KindLeaderboard, "delete_all", 0, func(tx *gorm.DB) error {
		var err error
		affected, err = deleteAll[models.Leaderboard](tx)
		return err
	})
	return affected, err
}

func countLeaderboard(db *gorm.DB) (int64, error) {
	return count[models.Leaderboard](db)
}
