// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

// Session rows are the server-trusted record of who a client is. Role is
// copied from the user row when the session is established and is never
// read from request input.
type Session struct {
	ID         uint   `gorm:"primaryKey"`
	Token      string `gorm:"size:255;not null;uniqueIndex"`
	Role       Role   `gorm:"size:32;not null"`
	LastUsedAt *time.Time
	ExpiresAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
	UserID     uint
	User       User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func init() {
	AllModels = append(AllModels, &Session{})
}
