package models

import (
	"time"

	"gorm.io/gorm"
)

// ContestUser is a local snapshot of identity data needed for contests.
// Credentials and authentication live in the profile service; this table
// only mirrors the stable external id plus display fields, populated from
// gateway headers on first touch and refreshed by the profile sync worker.
type ContestUser struct {
	ID                string    `gorm:"primaryKey" json:"id"` // the profile service's stable user id
	Username          string    `gorm:"index;not null" json:"username"`
	Email             string    `json:"email,omitempty"`
	ProfilePictureURL *string   `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
