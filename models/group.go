package models

import (
	"time"
)

// Group is one private contest scope. Membership and per-member points live
// in the scoped ledger (LedgerEntry rows keyed by the group id); submissions
// reference the group through their group_id column.
type Group struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Slug     string `json:"slug" gorm:"index"`
	JoinCode string `json:"join_code" gorm:"uniqueIndex;not null"` // human-entered invite code
	OwnerID  string `json:"owner_id" gorm:"index;not null"`

	// LastResolvedAt is the instant the winner pass last committed results for
	// this group. The resolver compares it against the contest day's start and
	// claims it with a conditional update, so a day is only ever scored once.
	LastResolvedAt *time.Time `json:"last_resolved_at,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Calculated fields (not stored in DB)
	MemberCount int64 `json:"member_count,omitempty" gorm:"-"`
}
