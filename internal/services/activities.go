package services

import (
	"github.com/localnerve/octofit-tracker/internal/models"
	"github.com/localnerve/octofit-tracker/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivityPatch carries the fields to change on an activity
type ActivityPatch struct {
	UserID       *uint64
	ActivityType *string
	Duration     *float64
	Date         *datatypes.Date
}

func checkDuration(minutes float64) error {
	if minutes < 0 {
		return types.Validation("duration must be >= 0, got %v", minutes)
	}
	return nil
}

// CreateActivity inserts an activity for an existing user
func CreateActivity(db *gorm.DB, activity *models.Activity) error {
	if err := checkDuration(activity.Duration); err != nil {
		recordWrite(KindActivities, "create", err)
		return err
	}
	return write(db, KindActivities, "create", 0, func(tx *gorm.DB) error {
		if err := requireUser(tx, activity.UserID); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(activity).Error
	})
}

// GetActivity retrieves an activity by id
func GetActivity(db *gorm.DB, id uint64) (*models.Activity, error) {
	return get[models.Activity](db, KindActivities, id)
}

// ListActivities retrieves all activities ordered by id
func ListActivities(db *gorm.DB) ([]models.Activity, error) {
	return list[models.Activity](db, KindActivities)
}

// UpdateActivity applies a patch to an activity
func UpdateActivity(db *gorm.DB, id uint64, patch ActivityPatch) (*models.Activity, error) {
	var activity models.Activity

	err := write(db, KindActivities, "update", id, func(tx *gorm.DB) error {
		if err := tx.First(&activity, id).Error; err != nil {
			return err
		}
		if patch.UserID != nil {
			if err := requireUser(tx, *patch.UserID); err != nil {
				return err
			}
			activity.UserID = *patch.UserID
		}
		if patch.ActivityType != nil {
			activity.ActivityType = *patch.ActivityType
		}
		if patch.Duration != nil {
			if err := checkDuration(*patch.Duration); err != nil {
				return err
			}
			activity.Duration = *patch.Duration
		}
		if patch.Date != nil {
			activity.Date = *patch.Date
		}
		return tx.Model(&activity).Omit(clause.Associations).
			Select("user_id", "activity_type", "duration", "date").
			Updates(&activity).Error
	})
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// DeleteActivity removes an activity
func DeleteActivity(db *gorm.DB, id uint64) error {
	return write(db, KindActivities, "delete", id, func(tx *gorm.DB) error {
		result := tx.Delete(&models.Activity{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteAllActivities removes every activity
func DeleteAllActivities(db *gorm.DB) (int64, error) {
	var affected int64
	err := write(db, KindActivities, "delete_all", 0, func(tx *gorm.DB) error {
		var err error
		affected, err = deleteAll[models.Activity](tx)
		return err
	})
	return affected, err
}

func countActivities(db *gorm.DB) (int64, error) {
	return count[models.Activity](db)
}
