// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

var AllModels []any

type Role string

const (
	RoleVictim       Role = "victim"
	RoleInvestigator Role = "investigator"
)

// IsValid reports whether r is one of the two roles accounts can be
// created with. Roles are fixed at signup, there is no promotion flow.
func (r Role) IsValid() bool {
	return r == RoleVictim || r == RoleInvestigator
}

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:255;not null"`
	Email        string  `gorm:"size:255;not null;uniqueIndex"`
	Password     string  `gorm:"not null"`
	Mobile       *string `gorm:"size:32;default:null"`
	AadhaarLast4 *string `gorm:"size:4;default:null"`
	Photo        *string `gorm:"size:255;default:null"`
	Role         Role    `gorm:"size:32;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func init() {
	AllModels = append(AllModels, &User{})
}
