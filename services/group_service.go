package services

import (
	"errors"
	"fmt"

	"photo-contest-system/models"
	"photo-contest-system/utils"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupService manages group contests: creation, joining by code, and the
// membership views the transport layer needs. Point totals are not touched
// here beyond seeding the zero-point ledger entry at join time.
type GroupService struct {
	DB *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{DB: db}
}

// EnsureUser upserts the local snapshot of an authenticated caller. The
// gateway supplies id and username; the sync worker refreshes the rest.
func (s *GroupService) EnsureUser(userID, username string) error {
	if userID == "" {
		return fmt.Errorf("user id: %w", ErrValidation)
	}
	user := models.ContestUser{ID: userID, Username: username}
	return s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error
}

// CreateGroup creates a group with a fresh join code and makes the creator
// its first member (and first ledger entry).
func (s *GroupService) CreateGroup(userID, name string) (*models.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("group name: %w", ErrValidation)
	}

	group := models.Group{
		ID:       uuid.NewString(),
		Name:     name,
		Slug:     slug.Make(name),
		JoinCode: utils.GenerateJoinCode(),
		OwnerID:  userID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		return ensureLedgerEntry(tx, group.ID, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return &group, nil
}

// JoinGroup adds the user to the group matching the code. Rejoining is
// rejected; the ledger entry created here is the membership record.
func (s *GroupService) JoinGroup(userID, joinCode string) (*models.Group, error) {
	if joinCode == "" {
		return nil, fmt.Errorf("group code: %w", ErrValidation)
	}

	var group models.Group
	if err := s.DB.First(&group, "join_code = ?", joinCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidJoinCode
		}
		return nil, err
	}

	member, err := s.IsMember(group.ID, userID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, ErrAlreadyMember
	}

	if err := ensureLedgerEntry(s.DB, group.ID, userID); err != nil {
		return nil, fmt.Errorf("join group: %w", err)
	}
	return &group, nil
}

// IsMember reports whether the user holds a ledger entry in the group scope.
func (s *GroupService) IsMember(groupID, userID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.LedgerEntry{}).
		Where("scope_key = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetGroup loads one group with its member count.
func (s *GroupService) GetGroup(groupID string) (*models.Group, error) {
	var group models.Group
	if err := s.DB.First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("group %s: %w", groupID, ErrNotFound)
		}
		return nil, err
	}
	s.DB.Model(&models.LedgerEntry{}).
		Where("scope_key = ?", group.ID).
		Count(&group.MemberCount)
	return &group, nil
}

// UserGroups lists every group the user belongs to.
func (s *GroupService) UserGroups(userID string) ([]models.Group, error) {
	var groups []models.Group
	err := s.DB.
		Joins("JOIN ledger_entries ON ledger_entries.scope_key = groups.id AND ledger_entries.user_id = ?", userID).
		Order("groups.created_at ASC").
		Find(&groups).Error
	return groups, err
}

// GroupMembers returns the group's user snapshots, joined through the ledger.
func (s *GroupService) GroupMembers(groupID string) ([]models.ContestUser, error) {
	var users []models.ContestUser
	err := s.DB.
		Joins("JOIN ledger_entries ON ledger_entries.user_id = contest_users.id AND ledger_entries.scope_key = ?", groupID).
		Order("ledger_entries.created_at ASC").
		Find(&users).Error
	return users, err
}
