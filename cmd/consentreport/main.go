// SPDX-License-Identifier: GPL-3.0-only

// Command consentreport prints every case id alongside its consent flag.
// It connects to the same store as the server, read-only, and tolerates
// rows written before the allow_contact column existed.
package main

import (
	"fmt"
	"os"

	"casedesk-server/commons"
	"casedesk-server/db"
)

type consentRow struct {
	ID           uint
	AllowContact *int
}

func main() {
	commons.LoadEnvFile()
	db.InitDB()

	var rows []consentRow
	if err := db.Conn.Raw("SELECT id, allow_contact FROM cases ORDER BY id DESC").Scan(&rows).Error; err != nil {
		commons.Logger.Error("Failed to read cases:", err)
		os.Exit(1)
	}

	fmt.Println("Case ID | allow_contact")
	fmt.Println("------------------------")
	for _, row := range rows {
		allowContact := 0
		if row.AllowContact != nil && *row.AllowContact != 0 {
			allowContact = 1
		}
		fmt.Println(row.ID, " | ", allowContact)
	}
}
