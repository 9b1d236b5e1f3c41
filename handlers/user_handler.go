// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"casedesk-server/middlewares"

	"github.com/labstack/echo/v4"
)

// GetProfileHandler godoc
// @Summary      Get the authenticated account
// @Description  Returns the name, email, mobile, photo handle and role of the account behind the current session.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ProfileResponse   "Profile retrieved successfully"
// @Failure      401 {object} echo.HTTPError    "Unauthorized, invalid or expired session token"
// @Failure      500 {object} echo.HTTPError    "Internal server error"
// @Router       /v1/users/ [get]
func GetProfileHandler(c echo.Context) error {
	logger := c.Logger()

	user, err := middlewares.GetAuthenticatedUser(c)
	if err != nil {
		logger.Error("Failed to get authenticated user:", err)
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or expired authentication token, please login again",
		}
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		Name:    user.Name,
		Email:   user.Email,
		Mobile:  user.Mobile,
		Photo:   user.Photo,
		Role:    string(user.Role),
		Message: "Profile retrieved successfully",
	})
}
