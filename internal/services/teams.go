package services

import (
	"slices"
	"strings"

	"github.com/localnerve/octofit-tracker/internal/models"
	"github.com/localnerve/octofit-tracker/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamPatch carries the fields to change on a team
type TeamPatch struct {
	Name *string
}

// membersByID orders preloaded members so responses are stable
func membersByID(db *gorm.DB) *gorm.DB {
	return db.Order("users.id")
}

// CreateTeam inserts a team. When memberIDs is non-nil the membership is set in the same transaction.
func CreateTeam(db *gorm.DB, team *models.Team, memberIDs []uint64) error {
	return write(db, KindTeams, "create", 0, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(team).Error; err != nil {
			return err
		}
		if memberIDs == nil {
			team.Members = []models.User{}
			return nil
		}
		return replaceMembers(tx, team, memberIDs)
	})
}

// GetTeam retrieves a team with its members
func GetTeam(db *gorm.DB, id uint64) (*models.Team, error) {
	var team models.Team
	err := tagged(quiet(db), KindTeams, "get").
		Preload("Members", membersByID).
		First(&team, id).Error
	if err != nil {
		return nil, translate(err, KindTeams, id)
	}
	return &team, nil
}

// ListTeams retrieves all teams with their members ordered by id
func ListTeams(db *gorm.DB) ([]models.Team, error) {
	teams := []models.Team{}
	err := tagged(quiet(db), KindTeams, "list").
		Preload("Members", membersByID).
		Order("id").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// UpdateTeam renames a team
func UpdateTeam(db *gorm.DB, id uint64, patch TeamPatch) (*models.Team, error) {
	err := write(db, KindTeams, "update", id, func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, id).Error; err != nil {
			return err
		}
		if patch.Name == nil {
			return nil
		}
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return types.Validation("team name must not be empty")
		}
		return tx.Model(&team).Update("name", name).Error
	})
	if err != nil {
		return nil, err
	}
	return GetTeam(db, id)
}

// SetMembers replaces the membership of a team. Every id must name an existing user,
// otherwise nothing changes and a ForeignKeyError is returned.
func SetMembers(db *gorm.DB, teamID uint64, userIDs []uint64) (*models.Team, error) {
	err := write(db, KindTeams, "set_members", teamID, func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, teamID).Error; err != nil {
			return err
		}
		return replaceMembers(tx, &team, userIDs)
	})
	if err != nil {
		return nil, err
	}
	return GetTeam(db, teamID)
}

func replaceMembers(tx *gorm.DB, team *models.Team, userIDs []uint64) error {
	ids := slices.Clone(userIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	users := []models.User{}
	if len(ids) > 0 {
		if err := tx.Where("id IN ?", ids).Order("id").Find(&users).Error; err != nil {
			return err
		}
	}
	if len(users) != len(ids) {
		found := make(map[uint64]struct{}, len(users))
		for _, u := range users {
			found[u.ID] = struct{}{}
		}
		missing := make([]string, 0, len(ids)-len(users))
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				missing = append(missing, formatID(id))
			}
		}
		return types.ForeignKey("team members reference missing users: %s", strings.Join(missing, ", "))
	}

	association := tx.Model(team).Association("Members")
	var err error
	if len(users) == 0 {
		err = association.Clear()
	} else {
		err = association.Replace(&users)
	}
	if err != nil {
		return err
	}
	team.Members = users
	return nil
}

// DeleteTeam removes a team and its membership rows
func DeleteTeam(db *gorm.DB, id uint64) error {
	return write(db, KindTeams, "delete", id, func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.First(&team, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&team).Association("Members").Clear(); err != nil {
			return err
		}
		return tx.Delete(&team).Error
	})
}

// DeleteAllTeams removes every team and membership row
func DeleteAllTeams(db *gorm.DB) (int64, error) {
	var affected int64
	err := write(db, KindTeams, "delete_all", 0, func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM team_members").Error; err != nil {
			return err
		}
		var err error
		affected, err = deleteAll[models.Team](tx)
		return err
	})
	return affected, err
}

func countTeams(db *gorm.DB) (int64, error) {
	return count[models.Team](db)
}
