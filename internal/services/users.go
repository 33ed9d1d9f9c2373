package services

import (
	"strings"

	"github.com/localnerve/octofit-tracker/internal/models"
	"github.com/localnerve/octofit-tracker/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserPatch carries the fields to change on a user; nil fields are left alone
type UserPatch struct {
	Username *string
	Email    *string
	Password *string
}

// emailTaken reports whether another user already holds the email, ignoring case
func emailTaken(tx *gorm.DB, email string, exceptID uint64) (bool, error) {
	var n int64
	query := quiet(tx).Model(&models.User{}).Where("LOWER(email) = LOWER(?)", email)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateUser inserts a user, failing with DuplicateError if the email is already used
func CreateUser(db *gorm.DB, user *models.User) error {
	user.Email = strings.TrimSpace(user.Email)

	return write(db, KindUsers, "create", 0, func(tx *gorm.DB) error {
		taken, err := emailTaken(tx, user.Email, 0)
		if err != nil {
			return err
		}
		if taken {
			return types.Duplicate("a user with email %q already exists", user.Email)
		}
		return tx.Omit(clause.Associations).Create(user).Error
	})
}

// GetUser retrieves a user by id
func GetUser(db *gorm.DB, id uint64) (*models.User, error) {
	return get[models.User](db, KindUsers, id)
}

// ListUsers retrieves all users ordered by id
func ListUsers(db *gorm.DB) ([]models.User, error) {
	return list[models.User](db, KindUsers)
}

// UpdateUser applies a patch to a user, keeping emails unique
func UpdateUser(db *gorm.DB, id uint64, patch UserPatch) (*models.User, error) {
	var user models.User

	err := write(db, KindUsers, "update", id, func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}

		if patch.Username != nil {
			user.Username = *patch.Username
		}
		if patch.Password != nil {
			user.Password = *patch.Password
		}
		if patch.Email != nil {
			email := strings.TrimSpace(*patch.Email)
			taken, err := emailTaken(tx, email, id)
			if err != nil {
				return err
			}
			if taken {
				return types.Duplicate("a user with email %q already exists", email)
			}
			user.Email = email
		}

		return tx.Model(&user).Select("username", "email", "password").Updates(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user together with its activities, leaderboard entries and team memberships
func DeleteUser(db *gorm.DB, id uint64) error {
	return write(db, KindUsers, "delete", id, func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Leaderboard{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&user).Association("Teams").Clear(); err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

// DeleteAllUsers removes every user and everything that references one
func DeleteAllUsers(db *gorm.DB) (int64, error) {
	var affected int64
	err := write(db, KindUsers, "delete_all", 0, func(tx *gorm.DB) error {
		if _, err := deleteAll[models.Leaderboard](tx); err != nil {
			return err
		}
		if _, err := deleteAll[models.Activity](tx); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM team_members").Error; err != nil {
			return err
		}
		var err error
		affected, err = deleteAll[models.User](tx)
		return err
	})
	return affected, err
}

func countUsers(db *gorm.DB) (int64, error) {
	return count[models.User](db)
}
