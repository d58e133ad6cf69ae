package models

import "time"

// Project lifecycle states. Status tracks the overall build, PaymentStatus
// mirrors the highest payment milestone reached.
const (
	StatusPending = "pending"

	PaymentPending     = "pending"
	PaymentAdvancePaid = "advance_paid"
	PaymentCompleted   = "completed"
)

// Complexity tiers accepted on submission.
const (
	ComplexitySimple  = "simple"
	ComplexityMedium  = "medium"
	ComplexityComplex = "complex"
)

// Delivery options accepted on submission. Anything else means the standard
// five-day turnaround.
const (
	DeliveryOneDay  = "1day"
	DeliveryTwoDays = "2days"
)

// Project represents a submitted website-build request together with its
// computed quote and the admin-managed review state.
type Project struct {
	ID        string `json:"id"`
	UserID    int    `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserPhone string `json:"userPhone"`
	Username  string `json:"username"`

	WebsiteType    string `json:"websiteType"`
	Complexity     string `json:"complexity"`
	WebsiteName    string `json:"websiteName"`
	Description    string `json:"description"`
	DeliveryOption string `json:"deliveryOption"`

	BaseCost        int `json:"baseCost"`
	DeliveryCharges int `json:"deliveryCharges"`
	EditCharges     int `json:"editCharges"`
	TotalCost       int `json:"totalCost"`
	AdvanceAmount   int `json:"advanceAmount"`
	FinalAmount     int `json:"finalAmount"`
	EditCount       int `json:"editCount"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	AdvancePaid   bool   `json:"advancePaid"`
	FullPaid      bool   `json:"fullPaid"`
	BillGenerated bool   `json:"billGenerated"`
	WebsiteURL    string `json:"websiteUrl"`

	CreatedAt    time.Time  `json:"createdAt"`
	DeliveryDate string     `json:"deliveryDate"` // YYYY-MM-DD
	BillDate     *time.Time `json:"billDate,omitempty"`
}
