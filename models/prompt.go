package models

import (
	"time"
)

// GlobalScopeKey is the scope key of the single site-wide contest. Group
// contests use the group id as their scope key.
const GlobalScopeKey = "global"

// DailyPrompt is the photo prompt for one scope and one calendar day.
// The unique index on (scope_key, day) is what makes creation first-writer-wins:
// a concurrent creator loses the insert and reads back the committed row.
// Rows are created lazily on first access and never mutated afterwards.
type DailyPrompt struct {
	ID       string    `json:"id" gorm:"primaryKey"`
	ScopeKey string    `json:"scope_key" gorm:"uniqueIndex:idx_prompt_scope_day;not null"`
	Day      time.Time `json:"day" gorm:"uniqueIndex:idx_prompt_scope_day;not null"` // local midnight in the contest zone
	Prompt   string    `json:"prompt" gorm:"not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
