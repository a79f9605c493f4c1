package domain

// ServiceCategory is the reference data a booking is priced against.
// Supplied by the catalog service (or the built-in fallback catalog when the
// catalog is unreachable); never persisted by this service.
type ServiceCategory struct {
	Slug               string
	Name               string
	BasePrice          float64
	MinDurationMinutes int
	SubServices        []SubService
}

// SubService is an optional itemized add-on within a category.
// Names are unique within their category.
type SubService struct {
	Name            string
	Price           float64
	DurationMinutes int
}

// SelectedSubService is a customer's pick of a sub-service with a quantity
type SelectedSubService struct {
	Name     string
	Quantity int
}

// FindSubService looks up a sub-service by name
func (c *ServiceCategory) FindSubService(name string) (SubService, bool) {
	for _, s := range c.SubServices {
		if s.Name == name {
			return s, true
		}
	}
	return SubService{}, false
}

// HasSubServices reports whether the category offers any add-ons
func (c *ServiceCategory) HasSubServices() bool {
	return len(c.SubServices) > 0
}
