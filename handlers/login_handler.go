// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"errors"
	"net/http"

	"casedesk-server/crypto"
	"casedesk-server/db"
	"casedesk-server/middlewares"
	"casedesk-server/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// LoginHandler godoc
// @Summary      Login an account
// @Description  Verifies credentials and establishes a session. The role attached to the session comes from the stored account row, never from the request.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body  LoginRequest  true  "Login request payload"
// @Success      200 {object} LoginResponse     "Login successful"
// @Failure      400 {object} echo.HTTPError    "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError    "Invalid credentials"
// @Failure      500 {object} echo.HTTPError    "Internal server error"
// @Router       /v1/auth/login [post]
func LoginHandler(c echo.Context) error {
	logger := c.Logger()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid login request payload:", err)
		return echo.ErrBadRequest
	}

	if req.Email == "" {
		logger.Error("Email is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "email field is required",
		}
	}

	if req.Password == "" {
		logger.Error("Password is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "password field is required",
		}
	}

	newCrypto := crypto.NewCrypto()
	user := models.User{}
	err := db.Conn.Where("email = ?", req.Email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("User not found.")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Credentials are incorrect, please check your email and password",
			}
		}

		logger.Errorf("Failed to find user: %v", err)
		return echo.ErrInternalServerError
	}

	if err := newCrypto.VerifyPassword(req.Password, user.Password); err != nil {
		logger.Error("Password verification failed.")
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Credentials are incorrect, please check your email and password",
		}
	}

	tokenString, err := middlewares.EstablishSession(c, user)
	if err != nil {
		logger.Errorf("Failed to establish session: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, LoginResponse{
		SessionToken: tokenString,
		Role:         string(user.Role),
		Message:      "Login successful",
	})
}

// LogoutHandler godoc
// @Summary      Logout the current session
// @Description  Deletes the session row and expires the session cookie.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} GenericResponse   "Logout successful"
// @Failure      401 {object} echo.HTTPError    "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError    "Internal server error"
// @Router       /v1/auth/logout [post]
func LogoutHandler(c echo.Context) error {
	logger := c.Logger()

	if err := middlewares.TerminateSession(c); err != nil {
		logger.Errorf("Failed to terminate session: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Info("Session terminated")
	return c.JSON(http.StatusOK, GenericResponse{Message: "Logout successful"})
}
