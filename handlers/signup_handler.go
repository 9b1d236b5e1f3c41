// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"casedesk-server/commons"
	"casedesk-server/crypto"
	"casedesk-server/db"
	"casedesk-server/models"
	"casedesk-server/passwordcheck"
	"casedesk-server/storage"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// SignupHandler godoc
// @Summary      Register a new account
// @Description  Creates a victim or investigator account from a multipart form with a profile photo.
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name      formData  string  true   "Display name"
// @Param        email     formData  string  true   "Email address, unique across accounts"
// @Param        password  formData  string  true   "Password"
// @Param        mobile    formData  string  false  "Mobile number"
// @Param        aadhaar   formData  string  false  "Aadhaar number, only the last 4 digits are stored"
// @Param        role      formData  string  true   "Account role, victim or investigator"
// @Param        photo     formData  file    true   "Profile photo"
// @Success      201 {object} SignupResponse    "Signup successful"
// @Failure      400 {object} echo.HTTPError    "Bad request, missing required fields"
// @Failure      409 {object} echo.HTTPError    "Duplicate email"
// @Failure      500 {object} echo.HTTPError    "Internal server error"
// @Router       /v1/auth/signup [post]
func SignupHandler(c echo.Context) error {
	logger := c.Logger()

	name := c.FormValue("name")
	email := c.FormValue("email")
	password := c.FormValue("password")
	mobile := c.FormValue("mobile")
	aadhaar := c.FormValue("aadhaar")
	role := models.Role(c.FormValue("role"))

	for field, value := range map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     string(role),
	} {
		if value == "" {
			logger.Errorf("%s is required.", field)
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: fmt.Sprintf("%s field is required", field),
			}
		}
	}

	if !role.IsValid() {
		logger.Errorf("Invalid role %q.", role)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "role must be victim or investigator",
		}
	}

	photoFile, err := c.FormFile("photo")
	if err != nil {
		logger.Error("Photo file is required:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "photo file is required",
		}
	}

	if commons.GetEnv("PASSWORD_POLICY_ENABLED", "false") == "true" {
		if err := passwordcheck.ValidatePassword(c.Request().Context(), password); err != nil {
			logger.Error("Password validation failed: ", err)
			return &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: fmt.Sprintf("Invalid password: %v", err.Error()),
			}
		}
	}

	newCrypto := crypto.NewCrypto()
	hash, err := newCrypto.HashPassword(password)
	if err != nil {
		logger.Errorf("Failed to hash password: %v", err)
		return echo.ErrInternalServerError
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if mobile != "" {
		user.Mobile = &mobile
	}
	if last4 := aadhaarLast4(aadhaar); last4 != "" {
		user.AadhaarLast4 = &last4
	}

	tx := db.Conn.Begin()
	if tx.Error != nil {
		logger.Errorf("Transaction begin failed: %v", tx.Error)
		return echo.ErrInternalServerError
	}

	// The unique index on email is the authoritative duplicate signal.
	// No pre-check: a concurrent signup with the same email would race it.
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.Error("This email is already registered.")
			return &echo.HTTPError{
				Code:    http.StatusConflict,
				Message: "This email is already registered, please try another one.",
			}
		}
		logger.Errorf("Failed to create user: %v", err)
		return echo.ErrInternalServerError
	}

	// Photo is written only after the row insert succeeded, so a duplicate
	// email never leaves an orphaned file behind.
	photoHandle, err := storage.SaveMultipart(photoFile, fmt.Sprintf("u%d", user.ID))
	if err != nil {
		tx.Rollback()
		logger.Errorf("Failed to store profile photo: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Model(&user).Update("photo", photoHandle).Error; err != nil {
		tx.Rollback()
		storage.Remove(photoHandle)
		logger.Errorf("Failed to attach photo to user: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Commit().Error; err != nil {
		storage.Remove(photoHandle)
		logger.Errorf("Transaction commit failed: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("User signed up successfully")
	return c.JSON(http.StatusCreated, SignupResponse{
		UserID:  user.ID,
		Message: "Signup successful, please login",
	})
}

// aadhaarLast4 keeps only the last four digits of the submitted Aadhaar
// number. The full ID is never persisted.
func aadhaarLast4(aadhaar string) string {
	digits := make([]rune, 0, len(aadhaar))
	for _, r := range aadhaar {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return string(digits)
	}
	return string(digits[len(digits)-4:])
}
