// SPDX-License-Identifier: GPL-3.0-only

package handlers

// swagger:model SignupResponse
type SignupResponse struct {
	// ID of the newly registered account
	UserID uint `json:"user_id" example:"1"`
	// Message indicating successful registration
	Message string `json:"message" example:"Signup successful, please login"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	// User's email address
	Email string `json:"email" form:"email" example:"user@example.com"`
	// User's password
	Password string `json:"password" form:"password" example:"MySecretPassword@123"`
}

// swagger:model LoginResponse
type LoginResponse struct {
	// Session token, also set as an HttpOnly cookie.
	// Non-browser clients should send it in the Authorization header as a
	// Bearer token.
	SessionToken string `json:"session_token" example:"sample_session_token"`
	// Role of the logged-in account
	Role string `json:"role" example:"victim"`
	// Message indicating successful login
	Message string `json:"message" example:"Login successful"`
}

// swagger:model ProfileResponse
type ProfileResponse struct {
	// Display name of the account
	Name string `json:"name" example:"Asha"`
	// Email address of the account
	Email string `json:"email" example:"asha@x.com"`
	// Mobile number of the account
	Mobile *string `json:"mobile,omitempty" example:"9876543210"`
	// Handle of the stored profile photo, servable under /v1/uploads/
	Photo *string `json:"photo,omitempty" example:"u1_a1b2c3d4_photo.jpg"`
	// Role of the account
	Role string `json:"role" example:"victim"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"Profile retrieved successfully"`
}

// swagger:model SubmitCaseResponse
type SubmitCaseResponse struct {
	// ID of the created case
	CaseID uint `json:"case_id" example:"1"`
	// Public reference of the created case
	CaseRef string `json:"case_ref" example:"3b241101-e2bb-4255-8caf-4136c566a962"`
	// Status of the created case, always Pending on creation
	Status string `json:"status" example:"Pending"`
	// Message indicating successful submission
	Message string `json:"message" example:"Case submitted successfully"`
}

// swagger:model CaseDetails
type CaseDetails struct {
	// ID of the case
	CaseID uint `json:"case_id" example:"1"`
	// Display name of the filing account
	Name string `json:"name" example:"Asha"`
	// Email of the filing account
	Email string `json:"email" example:"asha@x.com"`
	// Mobile number of the filing account
	Mobile *string `json:"mobile,omitempty" example:"9876543210"`
	// Reported fraud category
	FraudType string `json:"fraud_type" example:"UPI fraud"`
	// Free-text description of the incident
	Description string `json:"description" example:"Received a fake payment link"`
	// Current case status
	Status string `json:"status" example:"Pending"`
	// Handle of the stored evidence file
	Evidence *string `json:"evidence,omitempty" example:"c1_a1b2c3d4_receipt.png"`
	// Whether the victim consents to direct contact, always 0 or 1
	AllowContact int `json:"allow_contact" example:"0"`
}

// swagger:model CaseListResponse
type CaseListResponse struct {
	// Cases joined with their filing accounts, newest first
	Data []CaseDetails `json:"data"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"Cases retrieved successfully"`
}

// swagger:model ContactRequest
type ContactRequest struct {
	// Sender's name
	Name string `json:"name" form:"name" example:"Asha"`
	// Sender's email address
	Email string `json:"email" form:"email" example:"asha@x.com"`
	// Message body
	Message string `json:"message" form:"message" example:"How do I check my case status?"`
}

// swagger:model GenericResponse
type GenericResponse struct {
	// Message indicating the result of the operation
	Message string `json:"message" example:"Operation successful"`
}
