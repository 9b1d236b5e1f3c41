// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"casedesk-server/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:migrations_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return conn
}

// TestAllowContactMigration replays the schema as it existed before the
// consent flag: a cases table without the column and one legacy row.
func TestAllowContactMigration(t *testing.T) {
	conn := openTestDB(t)

	if err := conn.Exec(`CREATE TABLE cases (
		id integer PRIMARY KEY AUTOINCREMENT,
		cid text,
		fraud_type text,
		description text,
		evidence text,
		status text DEFAULT 'Pending',
		created_at datetime,
		updated_at datetime,
		deleted_at datetime,
		user_id integer
	)`).Error; err != nil {
		t.Fatalf("Failed to create legacy cases table: %v", err)
	}
	if err := conn.Exec(
		"INSERT INTO cases (fraud_type, description, user_id) VALUES ('UPI fraud', 'legacy row', 1)",
	).Error; err != nil {
		t.Fatalf("Failed to insert legacy row: %v", err)
	}

	m := gormigrate.New(conn, gormigrate.DefaultOptions, List())
	if err := m.Migrate(); err != nil {
		t.Fatalf("Migration failed: %v", err)
	}

	if !conn.Migrator().HasColumn(&models.Case{}, "allow_contact") {
		t.Fatal("allow_contact column should exist after migration")
	}

	var allowContact sql.NullInt64
	if err := conn.Raw("SELECT allow_contact FROM cases WHERE id = 1").Scan(&allowContact).Error; err != nil {
		t.Fatalf("Failed to read legacy row: %v", err)
	}
	if !allowContact.Valid || allowContact.Int64 != 0 {
		t.Errorf("Legacy row consent = %v, want 0", allowContact)
	}

	// Running the ledger again is a no-op, not an error.
	if err := gormigrate.New(conn, gormigrate.DefaultOptions, List()).Migrate(); err != nil {
		t.Fatalf("Second migration run should be idempotent: %v", err)
	}
}
