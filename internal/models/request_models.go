package models

// SignUpRequest represents the request body for creating a new account.
type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateProjectRequest represents the request body for submitting a new
// website-build request. Field-level validation beyond presence (tier and
// option membership) happens in the project service so validation errors can
// name every offending field at once.
type CreateProjectRequest struct {
	WebsiteType    string `json:"websiteType"`
	Complexity     string `json:"complexity"`
	WebsiteName    string `json:"websiteName"`
	Description    string `json:"description"`
	DeliveryOption string `json:"deliveryOption"`
}

// UpdateProjectRequest is the admin patch for an existing project. Pointers
// distinguish "not provided" from zero values; keys outside this allow-list
// are ignored by the service.
type UpdateProjectRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
	AdvancePaid   *bool   `json:"advancePaid,omitempty"`
	FullPaid      *bool   `json:"fullPaid,omitempty"`
	BillGenerated *bool   `json:"billGenerated,omitempty"`
	WebsiteURL    *string `json:"websiteUrl,omitempty"`
	DeliveryDate  *string `json:"deliveryDate,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// GenerateBillRequest represents the request body for marking a bill as
// generated for a project.
type GenerateBillRequest struct {
	WebsiteURL string `json:"websiteUrl"`
}

// PaymentRequest represents the request body for recording a payment
// milestone. Type is "advance" or "full".
type PaymentRequest struct {
	Type string `json:"type" binding:"required"`
}
