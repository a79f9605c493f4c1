package catalogservice

import "github.com/urbanseva/booking-service/internal/domain"

// Category wire model of a service category from CatalogService
type Category struct {
	Slug               string       `json:"slug"`
	Name               string       `json:"name"`
	BasePrice          float64      `json:"basePrice"`
	MinDurationMinutes int          `json:"minDuration"`
	SubServices        []SubService `json:"subServices"`
	IsActive           bool         `json:"isActive"`
}

// SubService wire model of a category add-on
type SubService struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
}

// ErrorResponse wire model of an error from CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain converts the wire model to the domain model
func (c *Category) ToDomain() *domain.ServiceCategory {
	subServices := make([]domain.SubService, len(c.SubServices))
	for i, s := range c.SubServices {
		subServices[i] = domain.SubService{
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &domain.ServiceCategory{
		Slug:               c.Slug,
		Name:               c.Name,
		BasePrice:          c.BasePrice,
		MinDurationMinutes: c.MinDurationMinutes,
		SubServices:        subServices,
	}
}
