package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"photo-contest-system/models"

	"github.com/google/uuid"
)

// addPoints applies an additive increment to one user's total in one scope,
// creating the entry at the delta if it does not exist yet. Runs on whatever
// handle it is given so the winner pass can keep it inside a transaction.
func addPoints(tx *gorm.DB, scopeKey, userID string, delta int64) error {
	entry := models.LedgerEntry{
		ID:       uuid.NewString(),
		ScopeKey: scopeKey,
		UserID:   userID,
		Points:   delta,
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope_key"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"points": gorm.Expr("ledger_entries.points + ?", delta),
		}),
	}).Create(&entry).Error
}

// ensureLedgerEntry creates a zero-point entry if the user has none in the
// scope. Used at group join so every member has a leaderboard row.
func ensureLedgerEntry(tx *gorm.DB, scopeKey, userID string) error {
	entry := models.LedgerEntry{
		ID:       uuid.NewString(),
		ScopeKey: scopeKey,
		UserID:   userID,
		Points:   0,
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error
}

// LeaderboardService reads scoped point totals for display.
type LeaderboardService struct {
	DB *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{DB: db}
}

// Leaderboard returns a scope's ledger sorted by points descending, with
// usernames attached from the local user snapshots.
func (s *LeaderboardService) Leaderboard(scopeKey string) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	err := s.DB.Where("scope_key = ?", scopeKey).
		Order("points DESC, created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	attachUsernames(s.DB, entries)
	return entries, nil
}

func attachUsernames(db *gorm.DB, entries []models.LedgerEntry) {
	if len(entries) == 0 {
		return
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.UserID)
	}
	var users []models.ContestUser
	if err := db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return // display-only data, leave blank on error
	}
	byID := make(map[string]string, len(users))
	for _, u := range users {
		byID[u.ID] = u.Username
	}
	for i := range entries {
		entries[i].Username = byID[entries[i].UserID]
	}
}
