// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"fmt"

	"casedesk-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			// The consent flag was added to the cases table after cases
			// already existed in production. Recorded here so the column
			// add and backfill run exactly once instead of the old
			// attempt-and-swallow ALTER on every start.
			ID: "001_add_allow_contact",
			Migrate: func(tx *gorm.DB) error {
				if !tx.Migrator().HasColumn(&models.Case{}, "allow_contact") {
					if err := tx.Migrator().AddColumn(&models.Case{}, "allow_contact"); err != nil {
						return fmt.Errorf("failed to add allow_contact column: %w", err)
					}
				}
				if err := tx.Model(&models.Case{}).
					Where("allow_contact IS NULL").
					Update("allow_contact", 0).Error; err != nil {
					return fmt.Errorf("failed to backfill allow_contact: %w", err)
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error { return nil },
		},
	}
}
