package core

import (
	"math"

	"webintake-backend-go/internal/models"
)

// Pricing policy. All amounts are whole rupees.
const (
	priceSimple  = 11000
	priceMedium  = 25000
	priceComplex = 60000

	oneDaySurcharge  = 5500
	twoDaySurcharge  = 5000
	standardDays     = 5
	perEditSurcharge = 5000
	freeEditQuota    = 2
)

// websiteTypeOverrides force the medium-tier base price regardless of the
// declared complexity. This is an explicit business rule, not a fallback.
var websiteTypeOverrides = map[string]bool{
	"www":       true,
	"ecommerce": true,
}

// Quote is the full cost breakdown for a submission.
type Quote struct {
	BaseCost        int `json:"baseCost"`
	DeliveryCharges int `json:"deliveryCharges"`
	EditCharges     int `json:"editCharges"`
	TotalCost       int `json:"totalCost"`
	AdvanceAmount   int `json:"advanceAmount"`
	FinalAmount     int `json:"finalAmount"`
	DeliveryDays    int `json:"deliveryDays"`
}

// BasePrice maps a complexity tier to its fixed price. Website types with an
// override force the medium price. An unknown tier prices at 0; the project
// service rejects unknown tiers before quoting, so a zero quote is never
// silently returned to a caller.
func BasePrice(complexity, websiteType string) int {
	if websiteTypeOverrides[websiteType] {
		return priceMedium
	}
	switch complexity {
	case models.ComplexitySimple:
		return priceSimple
	case models.ComplexityMedium:
		return priceMedium
	case models.ComplexityComplex:
		return priceComplex
	default:
		return 0
	}
}

// DeliverySurcharge returns the surcharge and the promised turnaround in days
// for a delivery option. Anything other than the express options means the
// standard five-day turnaround at no charge.
func DeliverySurcharge(option string) (charge int, days int) {
	switch option {
	case models.DeliveryOneDay:
		return oneDaySurcharge, 1
	case models.DeliveryTwoDays:
		return twoDaySurcharge, 2
	default:
		return 0, standardDays
	}
}

// EditSurcharge prices a submission by its own position in the sequence of
// same-prefix submissions (1 for the first). The first two are free; the
// third costs one flat fee, the fourth two, and so on.
func EditSurcharge(editCount int) int {
	extra := editCount - freeEditQuota
	if extra < 0 {
		extra = 0
	}
	return extra * perEditSurcharge
}

// ComputeQuote derives the full cost breakdown. advanceRate is the configured
// upfront share of the total; the advance is rounded half up to the nearest
// whole rupee and the final amount is the exact remainder, so
// AdvanceAmount+FinalAmount always equals TotalCost.
func ComputeQuote(complexity, websiteType, deliveryOption string, editCount int, advanceRate float64) Quote {
	base := BasePrice(complexity, websiteType)
	deliveryCharge, days := DeliverySurcharge(deliveryOption)
	editCharge := EditSurcharge(editCount)
	total := base + deliveryCharge + editCharge
	advance := int(math.Floor(float64(total)*advanceRate + 0.5))

	return Quote{
		BaseCost:        base,
		DeliveryCharges: deliveryCharge,
		EditCharges:     editCharge,
		TotalCost:       total,
		AdvanceAmount:   advance,
		FinalAmount:     total - advance,
		DeliveryDays:    days,
	}
}
