package services

import (
	"errors"
	"fmt"
	"time"

	"photo-contest-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionService is the admission gate for contest entries: one entry per
// author per scope per day, with a per-scope local-time cutoff. The pre-check
// is only a fast path for a friendly error; the unique index on
// (user_id, scope_key, day) is the source of truth under races.
type SubmissionService struct {
	DB    *gorm.DB
	Clock Clock
	Cfg   ContestConfig
}

func NewSubmissionService(db *gorm.DB, clock Clock, cfg ContestConfig) *SubmissionService {
	return &SubmissionService{DB: db, Clock: clock, Cfg: cfg}
}

// CreateSubmission admits and persists one entry. groupID nil means the
// global contest. promptText is snapshotted onto the row; imageURL is the
// already-durable media store reference.
func (s *SubmissionService) CreateSubmission(userID string, groupID *string, promptText, imageURL string) (*models.Submission, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("image: %w", ErrValidation)
	}
	if promptText == "" {
		return nil, fmt.Errorf("prompt: %w", ErrValidation)
	}

	now := s.Clock.Now()
	day := DayStart(s.Clock, now)

	scopeKey := models.GlobalScopeKey
	cutoff := s.Cfg.GlobalCutoffHour
	if groupID != nil {
		var group models.Group
		if err := s.DB.First(&group, "id = ?", *groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("group %s: %w", *groupID, ErrNotFound)
			}
			return nil, err
		}
		scopeKey = group.ID
		cutoff = s.Cfg.GroupCutoffHour
	}

	var existing int64
	if err := s.DB.Model(&models.Submission{}).
		Where("user_id = ? AND scope_key = ? AND day = ?", userID, scopeKey, day).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrDuplicateSubmission
	}

	if cutoff >= 0 && now.In(s.Clock.Location()).Hour() >= cutoff {
		return nil, ErrSubmissionsClosed
	}

	submission := models.Submission{
		ID:       uuid.NewString(),
		UserID:   userID,
		GroupID:  groupID,
		IsGlobal: groupID == nil,
		ScopeKey: scopeKey,
		Day:      day,
		Prompt:   promptText,
		ImageURL: imageURL,
		Votes:    0,
	}
	if err := s.DB.Create(&submission).Error; err != nil {
		// Lost a race against the author's own concurrent submit.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSubmission
		}
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return &submission, nil
}

// DaySubmissions lists a scope's entries for one day, newest first.
func (s *SubmissionService) DaySubmissions(scopeKey string, day time.Time) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.DB.Where("scope_key = ? AND day = ?", scopeKey, day).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	s.attachUsernames(subs)
	return subs, nil
}

// TodaySubmissions is DaySubmissions for the current contest day.
func (s *SubmissionService) TodaySubmissions(scopeKey string) ([]models.Submission, error) {
	return s.DaySubmissions(scopeKey, Today(s.Clock))
}

// TodayWinner returns the current leader of a scope's open day: most votes,
// earliest entry breaking ties. ErrNotFound when the day has no entries yet.
func (s *SubmissionService) TodayWinner(scopeKey string) (*models.Submission, error) {
	var sub models.Submission
	err := s.DB.Where("scope_key = ? AND day = ?", scopeKey, Today(s.Clock)).
		Order("votes DESC, created_at ASC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no winner yet: %w", ErrNotFound)
		}
		return nil, err
	}
	wrapped := []models.Submission{sub}
	s.attachUsernames(wrapped)
	return &wrapped[0], nil
}

func (s *SubmissionService) attachUsernames(subs []models.Submission) {
	if len(subs) == 0 {
		return
	}
	ids := make([]string, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.UserID)
	}
	var users []models.ContestUser
	if err := s.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return
	}
	byID := make(map[string]string, len(users))
	for _, u := range users {
		byID[u.ID] = u.Username
	}
	for i := range subs {
		subs[i].Username = byID[subs[i].UserID]
	}
}
