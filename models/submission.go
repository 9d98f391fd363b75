package models

import (
	"time"
)

// Submission is one user's photo entry for a scope/day. ScopeKey and Day are
// derived at creation time (from the group id / global flag and the contest
// clock) so the unique index can enforce one entry per author per scope per
// day without date arithmetic in queries.
type Submission struct {
	ID       string  `json:"id" gorm:"primaryKey"`
	UserID   string  `json:"user_id" gorm:"uniqueIndex:idx_submission_author_scope_day;not null"`
	GroupID  *string `json:"group_id,omitempty" gorm:"index"`
	IsGlobal bool    `json:"is_global"`

	ScopeKey string    `json:"scope_key" gorm:"uniqueIndex:idx_submission_author_scope_day;index:idx_submission_scope_day;not null"`
	Day      time.Time `json:"day" gorm:"uniqueIndex:idx_submission_author_scope_day;index:idx_submission_scope_day;not null"`

	Prompt   string `json:"prompt" gorm:"not null"`   // prompt text snapshot at submit time
	ImageURL string `json:"image_url" gorm:"not null"` // opaque reference into the media store

	// Votes mirrors the row count of this submission's ballots. It is only
	// ever moved by votes = votes + 1 inside the same transaction that
	// inserts the ballot, so the two cannot drift.
	Votes int64 `json:"votes" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	// Populated for display, not stored
	Username string `json:"username,omitempty" gorm:"-"`
}

// Ballot is a single user's vote on a submission. The unique index on
// (submission_id, voter_id) is the voter set: a repeat vote fails the insert
// instead of racing a read-then-save check.
type Ballot struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	SubmissionID string    `json:"submission_id" gorm:"uniqueIndex:idx_ballot_submission_voter;not null"`
	VoterID      string    `json:"voter_id" gorm:"uniqueIndex:idx_ballot_submission_voter;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}
