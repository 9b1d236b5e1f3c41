// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"casedesk-server/commons"
	"casedesk-server/notifications"

	"github.com/labstack/echo/v4"
)

// ContactHandler godoc
// @Summary      Send a contact message
// @Description  Forwards a contact-form message to the support inbox and acknowledges the sender.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contactRequest  body  ContactRequest  true  "Contact request payload"
// @Success      200 {object} GenericResponse   "Message received"
// @Failure      400 {object} echo.HTTPError    "Bad request, missing required fields"
// @Router       /v1/contact [post]
func ContactHandler(c echo.Context) error {
	logger := c.Logger()

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid contact request payload:", err)
		return echo.ErrBadRequest
	}

	if req.Email == "" {
		logger.Error("Email is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "email field is required",
		}
	}
	if req.Message == "" {
		logger.Error("Message is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "message field is required",
		}
	}

	supportInbox := commons.GetEnv("SUPPORT_INBOX", "support@casedesk.local")
	provider := notifications.NotificationProviders(commons.GetEnv("EMAIL_PROVIDER", string(notifications.Mock)))

	// Delivery failures are logged by the dispatcher; the sender still gets
	// an acknowledgement either way.
	notifications.DispatchNotification(notifications.Email, provider, notifications.NotificationData{
		To:       supportInbox,
		Subject:  "New contact message",
		Template: "contact_received",
		Variables: map[string]any{
			"name":    req.Name,
			"email":   req.Email,
			"message": req.Message,
		},
	})

	return c.JSON(http.StatusOK, GenericResponse{
		Message: "Thank you! We will get back to you soon.",
	})
}
