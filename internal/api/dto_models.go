package api

import "webintake-backend-go/internal/models"

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string   `json:"error"`            // high-level error message
	Details string   `json:"details,omitempty"`
	Fields  []string `json:"fields,omitempty"` // offending field names for validation errors
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginResponse carries the session token and the resolved identity.
type LoginResponse struct {
	Token    string          `json:"token"`
	Identity models.Identity `json:"identity"`
}

// SignUpResponse confirms account creation.
type SignUpResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
}

// CreateProjectResponse returns the created record plus the computed totals
// the submission form displays.
type CreateProjectResponse struct {
	Success         bool            `json:"success"`
	ProjectID       string          `json:"projectId"`
	Message         string          `json:"message"`
	TotalCost       int             `json:"totalCost"`
	AdvanceAmount   int             `json:"advanceAmount"`
	FinalAmount     int             `json:"finalAmount"`
	EditCount       int             `json:"editCount"`
	DeliveryCharges int             `json:"deliveryCharges"`
	Project         *models.Project `json:"project"`
}
