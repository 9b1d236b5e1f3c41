// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"

	"casedesk-server/db"
	"casedesk-server/middlewares"
	"casedesk-server/models"
	"casedesk-server/storage"

	"github.com/labstack/echo/v4"
)

// SubmitCaseHandler godoc
// @Summary      Submit a fraud case
// @Description  Files a new case for the authenticated victim from a multipart form with an evidence file. The case owner is always the session's account and the status is always Pending.
// @Tags         cases
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        fraud_type    formData  string  true   "Fraud category"
// @Param        description   formData  string  true   "Free-text description of the incident"
// @Param        allow_contact formData  string  false  "Consent to direct investigator contact, any non-empty truthy value"
// @Param        evidence      formData  file    true   "Evidence file"
// @Success      201 {object} SubmitCaseResponse "Case submitted"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized, no valid session"
// @Failure      403 {object} echo.HTTPError     "Access denied, victim role required"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/cases [post]
func SubmitCaseHandler(c echo.Context) error {
	logger := c.Logger()

	session, ok := middlewares.CurrentSession(c)
	if !ok {
		logger.Error("No session in context.")
		return &echo.HTTPError{
			Code:    http.StatusUnauthorized,
			Message: "Authentication is required, please login",
		}
	}

	fraudType := c.FormValue("fraud_type")
	description := c.FormValue("description")

	if fraudType == "" {
		logger.Error("Fraud type is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "fraud_type field is required",
		}
	}
	if description == "" {
		logger.Error("Description is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "description field is required",
		}
	}

	evidenceFile, err := c.FormFile("evidence")
	if err != nil {
		logger.Error("Evidence file is required:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "evidence file is required",
		}
	}

	allowContact := 0
	switch c.FormValue("allow_contact") {
	case "", "0", "false", "off":
	default:
		allowContact = 1
	}

	fraudCase := models.Case{
		FraudType:    fraudType,
		Description:  description,
		Status:       models.CaseStatusPending,
		AllowContact: &allowContact,
		// Owner comes from the session, a user_id in the form would let a
		// client file cases on someone else's behalf.
		UserID: session.UserID,
	}

	tx := db.Conn.Begin()
	if tx.Error != nil {
		logger.Errorf("Transaction begin failed: %v", tx.Error)
		return echo.ErrInternalServerError
	}

	if err := tx.Create(&fraudCase).Error; err != nil {
		tx.Rollback()
		logger.Errorf("Failed to create case: %v", err)
		return echo.ErrInternalServerError
	}

	evidenceHandle, err := storage.SaveMultipart(evidenceFile, fmt.Sprintf("c%d", fraudCase.ID))
	if err != nil {
		tx.Rollback()
		logger.Errorf("Failed to store evidence file: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Model(&fraudCase).Update("evidence", evidenceHandle).Error; err != nil {
		tx.Rollback()
		storage.Remove(evidenceHandle)
		logger.Errorf("Failed to attach evidence to case: %v", err)
		return echo.ErrInternalServerError
	}

	if err := tx.Commit().Error; err != nil {
		storage.Remove(evidenceHandle)
		logger.Errorf("Transaction commit failed: %v", err)
		return echo.ErrInternalServerError
	}

	logger.Infof("Case %d submitted by user %d", fraudCase.ID, session.UserID)
	return c.JSON(http.StatusCreated, SubmitCaseResponse{
		CaseID:  fraudCase.ID,
		CaseRef: fraudCase.CID.String(),
		Status:  string(models.CaseStatusPending),
		Message: "Case submitted successfully",
	})
}

// caseRow is the scan target for the case/user join. AllowContact is a
// pointer so legacy rows written before the column existed come back as
// nil rather than a silent zero.
type caseRow struct {
	CaseID       uint
	Name         string
	Email        string
	Mobile       *string
	FraudType    string
	Description  string
	Status       string
	Evidence     *string
	AllowContact *int
}

// ListCasesHandler godoc
// @Summary      List all cases
// @Description  Returns every case joined with its filing account, newest case first. Investigator role required.
// @Tags         cases
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} CaseListResponse  "Cases retrieved"
// @Failure      401 {object} echo.HTTPError    "Unauthorized, no valid session"
// @Failure      403 {object} echo.HTTPError    "Access denied, investigator role required"
// @Failure      500 {object} echo.HTTPError    "Internal server error"
// @Router       /v1/cases [get]
func ListCasesHandler(c echo.Context) error {
	logger := c.Logger()

	var rows []caseRow
	if err := db.Conn.Model(&models.Case{}).
		Select("cases.id AS case_id, users.name, users.email, users.mobile, cases.fraud_type, cases.description, cases.status, cases.evidence, cases.allow_contact").
		Joins("JOIN users ON users.id = cases.user_id").
		Order("cases.id DESC").
		Scan(&rows).Error; err != nil {
		logger.Errorf("Failed to fetch cases: %v", err)
		return echo.ErrInternalServerError
	}

	details := make([]CaseDetails, 0, len(rows))
	for _, row := range rows {
		// Consent is strictly 0 or 1 in every returned row, whatever shape
		// the stored value has.
		allowContact := 0
		if row.AllowContact != nil && *row.AllowContact != 0 {
			allowContact = 1
		}
		details = append(details, CaseDetails{
			CaseID:       row.CaseID,
			Name:         row.Name,
			Email:        row.Email,
			Mobile:       row.Mobile,
			FraudType:    row.FraudType,
			Description:  row.Description,
			Status:       row.Status,
			Evidence:     row.Evidence,
			AllowContact: allowContact,
		})
	}

	return c.JSON(http.StatusOK, CaseListResponse{
		Data:    details,
		Message: "Cases retrieved successfully",
	})
}
