// SPDX-License-Identifier: GPL-3.0-only

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"casedesk-server/db"
	"casedesk-server/models"
)

func TestServeUploadRoundTrip(t *testing.T) {
	e := setupTest(t)

	signupForm(t, e, "Asha", "asha@x.com", "p1", "victim")

	var user models.User
	if err := db.Conn.Where("email = ?", "asha@x.com").First(&user).Error; err != nil {
		t.Fatalf("User row missing: %v", err)
	}
	if user.Photo == nil {
		t.Fatal("Photo handle should be set")
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/uploads/"+*user.Photo, nil)
	rec := doRequest(e, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 serving stored photo, got %d", rec.Code)
	}
	if rec.Body.String() != "jpeg bytes" {
		t.Errorf("Served content = %q, want original upload bytes", rec.Body.String())
	}
}

func TestServeUploadRejectsBadNames(t *testing.T) {
	e := setupTest(t)

	for path, want := range map[string]int{
		"/v1/uploads/..%2F..%2Fetc%2Fpasswd": http.StatusBadRequest,
		"/v1/uploads/.hidden":                http.StatusBadRequest,
		"/v1/uploads/missing.png":            http.StatusNotFound,
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := doRequest(e, req)
		if rec.Code != want {
			t.Errorf("GET %s = %d, want %d", path, rec.Code, want)
		}
	}
}
