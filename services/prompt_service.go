package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"photo-contest-system/data"
	"photo-contest-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PromptService issues the prompt of the day per scope. Creation is lazy and
// first-writer-wins: the unique (scope_key, day) index decides races, and a
// lost insert is converted into a fetch of the committed prompt.
type PromptService struct {
	DB    *gorm.DB
	Clock Clock

	globalPool []string
	groupPool  []string
}

func NewPromptService(db *gorm.DB, clock Clock) *PromptService {
	return &PromptService{
		DB:         db,
		Clock:      clock,
		globalPool: data.GlobalPrompts,
		groupPool:  data.GroupPrompts,
	}
}

// GetOrCreateGlobalPrompt returns the global prompt for day, drawing a random
// one from the pool if the day has none yet.
func (s *PromptService) GetOrCreateGlobalPrompt(day time.Time) (*models.DailyPrompt, error) {
	return s.getOrCreate(models.GlobalScopeKey, day, s.globalPool)
}

// GetOrCreateGroupPrompt is the group-scoped counterpart. Fails with
// ErrNotFound when the group itself does not exist.
func (s *PromptService) GetOrCreateGroupPrompt(groupID string, day time.Time) (*models.DailyPrompt, error) {
	var group models.Group
	if err := s.DB.First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("group %s: %w", groupID, ErrNotFound)
		}
		return nil, err
	}
	return s.getOrCreate(groupID, day, s.groupPool)
}

// TodayPrompt resolves today's prompt for a scope key, creating it if needed.
func (s *PromptService) TodayPrompt(scopeKey string) (*models.DailyPrompt, error) {
	day := Today(s.Clock)
	if scopeKey == models.GlobalScopeKey {
		return s.GetOrCreateGlobalPrompt(day)
	}
	return s.GetOrCreateGroupPrompt(scopeKey, day)
}

func (s *PromptService) getOrCreate(scopeKey string, day time.Time, pool []string) (*models.DailyPrompt, error) {
	prompt := models.DailyPrompt{
		ID:       uuid.NewString(),
		ScopeKey: scopeKey,
		Day:      day,
		Prompt:   pool[rand.Intn(len(pool))],
	}

	// DO NOTHING on conflict: a concurrent creator already committed the day's
	// prompt, and the fetch below observes theirs.
	res := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&prompt)
	if res.Error != nil {
		return nil, fmt.Errorf("create prompt for %s/%s: %w", scopeKey, day.Format(time.DateOnly), res.Error)
	}
	if res.RowsAffected > 0 {
		return &prompt, nil
	}

	var existing models.DailyPrompt
	if err := s.DB.Where("scope_key = ? AND day = ?", scopeKey, day).First(&existing).Error; err != nil {
		return nil, fmt.Errorf("fetch prompt for %s/%s: %w", scopeKey, day.Format(time.DateOnly), err)
	}
	return &existing, nil
}
