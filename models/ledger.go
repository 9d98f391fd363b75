package models

import (
	"time"
)

// LedgerEntry is one user's running point total inside one scope. The global
// contest and every group contest share this table, keyed by scope: scope_key
// is either GlobalScopeKey or a group id. Group entries double as membership
// records (created at join time with zero points); global entries appear on a
// user's first win. Points only ever move by additive increments from the
// winner pass; totals are accumulations, never recomputed from history.
type LedgerEntry struct {
	ID       string `json:"id" gorm:"primaryKey"`
	ScopeKey string `json:"scope_key" gorm:"uniqueIndex:idx_ledger_scope_user;not null"`
	UserID   string `json:"user_id" gorm:"uniqueIndex:idx_ledger_scope_user;index;not null"`
	Points   int64  `json:"points" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"` // join time for group scopes
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Populated for display, not stored
	Username string `json:"username,omitempty" gorm:"-"`
}

// ContestResolution marks a (scope, day) whose winners have been committed.
// The winner pass claims the row first (insert with on-conflict-do-nothing)
// and only awards points when the claim succeeds, so a scheduler retry or a
// manual trigger can never double-award a day.
type ContestResolution struct {
	ID       string    `json:"id" gorm:"primaryKey"`
	ScopeKey string    `json:"scope_key" gorm:"uniqueIndex:idx_resolution_scope_day;not null"`
	Day      time.Time `json:"day" gorm:"uniqueIndex:idx_resolution_scope_day;not null"`

	WinnerUserID       string `json:"winner_user_id"`
	WinnerSubmissionID string `json:"winner_submission_id"`
	WinnerVotes        int64  `json:"winner_votes"`

	ResolvedAt time.Time `json:"resolved_at" gorm:"autoCreateTime"`
}
