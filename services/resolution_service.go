package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"photo-contest-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Points committed by the winner pass.
const GlobalWinnerPoints = 20

// Podium points for group contests, by rank.
var GroupPodiumPoints = []int64{10, 5, 2}

// ResolutionStatus says what a winner pass did for one scope/day.
type ResolutionStatus string

const (
	StatusResolved        ResolutionStatus = "resolved"
	StatusAlreadyResolved ResolutionStatus = "already_resolved"
	StatusNoSubmissions   ResolutionStatus = "no_submissions"
)

// WinnerAward is one committed point award.
type WinnerAward struct {
	Rank         int    `json:"rank"`
	UserID       string `json:"user_id"`
	SubmissionID string `json:"submission_id"`
	Votes        int64  `json:"votes"`
	Points       int64  `json:"points"`
}

// ResolutionOutcome reports a winner pass over one scope/day.
type ResolutionOutcome struct {
	ScopeKey string           `json:"scope_key"`
	Day      time.Time        `json:"day"`
	Status   ResolutionStatus `json:"status"`
	Winners  []WinnerAward    `json:"winners,omitempty"`
}

// ResolutionService ranks a closed contest day and commits point awards
// exactly once per (scope, day). Ranking is votes descending, earliest
// submission breaking ties. The global day is guarded by a claimed
// ContestResolution row, group days by the group's last_resolved_at stamp;
// both claims happen inside the awarding transaction, so a scheduled or
// manual rerun observes "already resolved" instead of awarding twice.
type ResolutionService struct {
	DB    *gorm.DB
	Clock Clock
}

func NewResolutionService(db *gorm.DB, clock Clock) *ResolutionService {
	return &ResolutionService{DB: db, Clock: clock}
}

// ResolveGlobalDay commits the global contest for one day: the single top
// submission's author gets +20 on the global ledger.
func (s *ResolutionService) ResolveGlobalDay(day time.Time) (*ResolutionOutcome, error) {
	outcome := &ResolutionOutcome{ScopeKey: models.GlobalScopeKey, Day: day}

	subs, err := s.rankedSubmissions(models.GlobalScopeKey, day)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		// No marker either: an empty day stays re-checkable.
		outcome.Status = StatusNoSubmissions
		return outcome, nil
	}

	winner := subs[0]
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		claim := models.ContestResolution{
			ID:                 uuid.NewString(),
			ScopeKey:           models.GlobalScopeKey,
			Day:                day,
			WinnerUserID:       winner.UserID,
			WinnerSubmissionID: winner.ID,
			WinnerVotes:        winner.Votes,
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&claim)
		if res.Error != nil {
			return fmt.Errorf("claim global resolution: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return errDayAlreadyClaimed
		}
		return addPoints(tx, models.GlobalScopeKey, winner.UserID, GlobalWinnerPoints)
	})
	if errors.Is(err, errDayAlreadyClaimed) {
		outcome.Status = StatusAlreadyResolved
		return outcome, nil
	}
	if err != nil {
		return nil, err
	}

	outcome.Status = StatusResolved
	outcome.Winners = []WinnerAward{{
		Rank:         1,
		UserID:       winner.UserID,
		SubmissionID: winner.ID,
		Votes:        winner.Votes,
		Points:       GlobalWinnerPoints,
	}}
	log.Printf("🏆 Global winner for %s: user %s (%d votes)", day.Format(time.DateOnly), winner.UserID, winner.Votes)
	return outcome, nil
}

// ResolveGroupDay commits one group's contest for one day: up to the top
// three authors get podium points on the group ledger, and the group is
// stamped so the day cannot be scored again.
func (s *ResolutionService) ResolveGroupDay(groupID string, day time.Time) (*ResolutionOutcome, error) {
	outcome := &ResolutionOutcome{ScopeKey: groupID, Day: day}

	var group models.Group
	if err := s.DB.First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("group %s: %w", groupID, ErrNotFound)
		}
		return nil, err
	}
	if group.LastResolvedAt != nil && !group.LastResolvedAt.Before(day) {
		outcome.Status = StatusAlreadyResolved
		return outcome, nil
	}

	subs, err := s.rankedSubmissions(groupID, day)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		outcome.Status = StatusNoSubmissions
		return outcome, nil
	}

	var winners []WinnerAward
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// Conditional stamp claims the day; a concurrent resolver loses here.
		res := tx.Model(&models.Group{}).
			Where("id = ? AND (last_resolved_at IS NULL OR last_resolved_at < ?)", groupID, day).
			Update("last_resolved_at", s.Clock.Now())
		if res.Error != nil {
			return fmt.Errorf("stamp group resolution: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return errDayAlreadyClaimed
		}

		for i, sub := range subs {
			if i >= len(GroupPodiumPoints) {
				break
			}
			points := GroupPodiumPoints[i]
			if err := addPoints(tx, groupID, sub.UserID, points); err != nil {
				return fmt.Errorf("award rank %d: %w", i+1, err)
			}
			winners = append(winners, WinnerAward{
				Rank:         i + 1,
				UserID:       sub.UserID,
				SubmissionID: sub.ID,
				Votes:        sub.Votes,
				Points:       points,
			})
		}
		return nil
	})
	if errors.Is(err, errDayAlreadyClaimed) {
		outcome.Status = StatusAlreadyResolved
		outcome.Winners = nil
		return outcome, nil
	}
	if err != nil {
		return nil, err
	}

	outcome.Status = StatusResolved
	outcome.Winners = winners
	log.Printf("👥 Group %s resolved for %s: %d winner(s)", groupID, day.Format(time.DateOnly), len(winners))
	return outcome, nil
}

// ResolveAllGroupDays runs the group winner pass over every group for one
// day. One group's failure does not block the rest.
func (s *ResolutionService) ResolveAllGroupDays(day time.Time) ([]ResolutionOutcome, error) {
	var groups []models.Group
	if err := s.DB.Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	outcomes := make([]ResolutionOutcome, 0, len(groups))
	for _, group := range groups {
		outcome, err := s.ResolveGroupDay(group.ID, day)
		if err != nil {
			log.Printf("❌ Failed to resolve group %s for %s: %v", group.ID, day.Format(time.DateOnly), err)
			continue
		}
		outcomes = append(outcomes, *outcome)
	}
	return outcomes, nil
}

func (s *ResolutionService) rankedSubmissions(scopeKey string, day time.Time) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.DB.Where("scope_key = ? AND day = ?", scopeKey, day).
		Order("votes DESC, created_at ASC").
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("rank submissions for %s/%s: %w", scopeKey, day.Format(time.DateOnly), err)
	}
	return subs, nil
}

// errDayAlreadyClaimed aborts an awarding transaction when another resolver
// claimed the day first; surfaced to callers as StatusAlreadyResolved.
var errDayAlreadyClaimed = errors.New("day already claimed")
