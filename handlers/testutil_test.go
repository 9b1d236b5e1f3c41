// SPDX-License-Identifier: GPL-3.0-only

package handlers_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"casedesk-server/db"
	"casedesk-server/models"
	"casedesk-server/routes"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

// setupTest wires an isolated in-memory store, a temp upload directory and
// a router for one test.
func setupTest(t *testing.T) *echo.Echo {
	t.Helper()
	t.Setenv("UPLOAD_DIR", t.TempDir())

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := conn.AutoMigrate(models.AllModels...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	db.Conn = conn

	e := echo.New()
	routes.RegisterRoutes(e)
	return e
}

// multipartBody builds a multipart form with the given fields and one file
// part named fileField.
func multipartBody(t *testing.T, fields map[string]string, fileField, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, val := range fields {
		if err := writer.WriteField(key, val); err != nil {
			t.Fatalf("Failed to write form field %s: %v", key, err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("Failed to create form file: %v", err)
		}
		io.WriteString(part, fileContent)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func doRequest(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func signupForm(t *testing.T, e *echo.Echo, name, email, password, role string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"mobile":   "9876543210",
		"aadhaar":  "123412341234",
		"role":     role,
	}, "photo", "photo.jpg", "jpeg bytes")
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	return doRequest(e, req)
}

func loginJSON(t *testing.T, e *echo.Echo, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	payload := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return doRequest(e, req)
}

// sessionCookie extracts the session cookie from a login response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "casedesk_session" && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("Login response did not set a session cookie")
	return nil
}

func submitCase(t *testing.T, e *echo.Echo, cookie *http.Cookie, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, fields, "evidence", "receipt.png", "png bytes")
	req := httptest.NewRequest(http.MethodPost, "/v1/cases", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return doRequest(e, req)
}
