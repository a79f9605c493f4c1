package calculate_price

import (
	"math"
	"time"

	"github.com/urbanseva/booking-service/internal/domain"
	calculatePrice "github.com/urbanseva/booking-service/internal/usecase/calculate_price"
	"github.com/urbanseva/booking-service/pkg/ptr"
	"github.com/urbanseva/booking-service/pkg/types"
)

// CalculatePriceRequest HTTP request model
type CalculatePriceRequest struct {
	Category    string               `json:"category"`
	City        *string              `json:"city,omitempty"`
	Date        string               `json:"date"`      // "2025-10-15"
	StartTime   string               `json:"startTime"` // "09:00"
	SubServices []SelectedSubService `json:"subServices,omitempty"`
}

// SelectedSubService one selected sub-service with its quantity
type SelectedSubService struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// PriceBreakdownResponse HTTP response model. Amounts are rounded to two
// decimals here at the presentation boundary; the engine itself never rounds.
type PriceBreakdownResponse struct {
	Category     string `json:"category"`
	CategoryName string `json:"categoryName"`

	BasePrice        float64         `json:"basePrice"`
	SubServicesTotal float64         `json:"subServicesTotal"`
	Modifiers        []PriceModifier `json:"modifiers"`
	Subtotal         float64         `json:"subtotal"`
	Tax              float64         `json:"tax"`
	TravelFee        float64         `json:"travelFee"`
	Total            float64         `json:"total"`
}

// PriceModifier a named surcharge line
type PriceModifier struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Kind   string  `json:"kind"`
}

// ToUseCaseRequest converts the HTTP request to the use case request
func (r *CalculatePriceRequest) ToUseCaseRequest(userID int64) (*calculatePrice.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	subServices := make([]calculatePrice.SelectedSubService, 0, len(r.SubServices))
	for _, sub := range r.SubServices {
		subServices = append(subServices, calculatePrice.SelectedSubService{
			Name:     sub.Name,
			Quantity: sub.Quantity,
		})
	}

	req := &calculatePrice.Request{
		UserID:       userID,
		CategorySlug: r.Category,
		Date:         date,
		StartTime:    types.TimeString(r.StartTime),
		SubServices:  subServices,
	}

	if r.City != nil && *r.City != "" {
		req.City = ptr.Ptr(*r.City)
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response to the HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *PriceBreakdownResponse {
	modifiers := make([]PriceModifier, len(resp.Modifiers))
	for i, m := range resp.Modifiers {
		modifiers[i] = PriceModifier{
			Name:   m.Name,
			Amount: round2(m.Amount),
			Kind:   m.Kind,
		}
	}

	return &PriceBreakdownResponse{
		Category:         resp.CategorySlug,
		CategoryName:     resp.CategoryName,
		BasePrice:        round2(resp.BasePrice),
		SubServicesTotal: round2(resp.SubServicesTotal),
		Modifiers:        modifiers,
		Subtotal:         round2(resp.Subtotal),
		Tax:              round2(resp.Tax),
		TravelFee:        round2(resp.TravelFee),
		Total:            round2(resp.Total),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
