package calculate_price

import (
	"time"

	"github.com/urbanseva/booking-service/pkg/types"
)

// Request request model for a price quote
type Request struct {
	UserID       int64
	CategorySlug string
	City         *string // nil = no travel fee lookup
	Date         time.Time
	StartTime    types.TimeString
	SubServices  []SelectedSubService
}

// SelectedSubService one selected sub-service with its quantity
type SelectedSubService struct {
	Name     string
	Quantity int
}

// Response response model with the itemized quote. Amounts are unrounded;
// presentation rounding happens at the HTTP layer.
type Response struct {
	CategorySlug string
	CategoryName string

	BasePrice        float64
	SubServicesTotal float64
	Modifiers        []Modifier
	Subtotal         float64
	Tax              float64
	TravelFee        float64
	Total            float64
}

// Modifier a named surcharge applied to the quote
type Modifier struct {
	Name   string
	Amount float64
	Kind   string
}
