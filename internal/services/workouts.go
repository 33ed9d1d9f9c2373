package services

import (
	"github.com/localnerve/octofit-tracker/internal/models"
	"gorm.io/gorm"
)

// WorkoutPatch carries the fields to change on a workout. A non-nil Exercises replaces the whole list.
type WorkoutPatch struct {
	Name        *string
	Description *string
	Exercises   *models.Exercises
}

// CreateWorkout inserts a workout; a nil exercise list is stored as empty
func CreateWorkout(db *gorm.DB, workout *models.Workout) error {
	if workout.Exercises == nil {
		workout.Exercises = models.Exercises{}
	}
	return write(db, KindWorkouts, "create", 0, func(tx *gorm.DB) error {
		return tx.Create(workout).Error
	})
}

// GetWorkout retrieves a workout by id
func GetWorkout(db *gorm.DB, id uint64) (*models.Workout, error) {
	return get[models.Workout](db, KindWorkouts, id)
}

// ListWorkouts retrieves all workouts ordered by id
func ListWorkouts(db *gorm.DB) ([]models.Workout, error) {
	return list[models.Workout](db, KindWorkouts)
}

// UpdateWorkout applies a patch to a workout
func UpdateWorkout(db *gorm.DB, id uint64, patch WorkoutPatch) (*models.Workout, error) {
	var workout models.Workout

	err := write(db, KindWorkouts, "update", id, func(tx *gorm.DB) error {
		if err := tx.First(&workout, id).Error; err != nil {
			return err
		}
		if patch.Name != nil {
			workout.Name = *patch.Name
		}
		if patch.Description != nil {
			workout.Description = *patch.Description
		}
		if patch.Exercises != nil {
			workout.Exercises = *patch.Exercises
			if workout.Exercises == nil {
				workout.Exercises = models.Exercises{}
			}
		}
		return tx.Model(&workout).Select("name", "description", "exercises").Updates(&workout).Error
	})
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// DeleteWorkout removes a workout
func DeleteWorkout(db *gorm.DB, id uint64) error {
	return write(db, KindWorkouts, "delete", id, func(tx *gorm.DB) error {
		result := tx.Delete(&models.Workout{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteAllWorkouts removes every workout
func DeleteAllWorkouts(db *gorm.DB) (int64, error) {
	var affected int64
	err := write(db, KindWorkouts, "delete_all", 0, func(tx *gorm.DB) error {
		var err error
		affected, err = deleteAll[models.Workout](tx)
		return err
	})
	return affected, err
}

func countWorkouts(db *gorm.DB) (int64, error) {
	return count[models.Workout](db)
}
