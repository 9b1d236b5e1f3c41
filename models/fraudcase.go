// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CaseStatus string

const (
	// CaseStatusPending is the only status reachable through the API.
	// The remaining statuses are reserved for investigator tooling.
	CaseStatusPending            CaseStatus = "Pending"
	CaseStatusUnderInvestigation CaseStatus = "Under Investigation"
	CaseStatusResolved           CaseStatus = "Resolved"
)

type Case struct {
	ID          uint       `gorm:"primaryKey"`
	CID         uuid.UUID  `gorm:"type:uuid;not null"`
	FraudType   string     `gorm:"size:255;not null"`
	Description string     `gorm:"type:text;not null"`
	Evidence    *string    `gorm:"size:255;default:null"`
	Status      CaseStatus `gorm:"size:64;not null;default:'Pending'"`
	// AllowContact is a strict 0/1 flag. A pointer so rows written before
	// the column existed scan as nil instead of a fake zero.
	AllowContact *int `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
	UserID       uint           `gorm:"not null;index"`
	User         User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (fraudCase *Case) BeforeCreate(tx *gorm.DB) (err error) {
	fraudCase.CID = uuid.New()
	return
}

func init() {
	AllModels = append(AllModels, &Case{})
}
