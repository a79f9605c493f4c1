package geoservice

// ServiceArea wire model of a serviceable area from GeoService
type ServiceArea struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	TravelFee float64 `json:"travelFee"`
	IsActive  bool    `json:"isActive"`
}

// ErrorResponse wire model of an error from GeoService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
