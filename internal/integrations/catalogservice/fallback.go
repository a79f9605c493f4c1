package catalogservice

import "github.com/urbanseva/booking-service/internal/domain"

// fallbackCatalog is the built-in category catalog used when CatalogService
// is unreachable or a slug is unknown. It mirrors the catalog the product
// ships with so booking keeps working during catalog outages.
var fallbackCatalog = []domain.ServiceCategory{
	{
		Slug: "plumbing", Name: "Plumbing", BasePrice: 499, MinDurationMinutes: 60,
		SubServices: []domain.SubService{
			{Name: "Tap Repair", Price: 199, DurationMinutes: 30},
			{Name: "Pipe Leakage", Price: 399, DurationMinutes: 60},
			{Name: "Water Tank Cleaning", Price: 999, DurationMinutes: 120},
		},
	},
	{
		Slug: "electrical", Name: "Electrical", BasePrice: 599, MinDurationMinutes: 60,
		SubServices: []domain.SubService{
			{Name: "Fan Installation", Price: 299, DurationMinutes: 45},
			{Name: "Switch Replacement", Price: 149, DurationMinutes: 20},
			{Name: "MCB Change", Price: 499, DurationMinutes: 60},
		},
	},
	{
		Slug: "cleaning", Name: "Cleaning", BasePrice: 399, MinDurationMinutes: 120,
		SubServices: []domain.SubService{
			{Name: "Bathroom Cleaning", Price: 499, DurationMinutes: 60},
			{Name: "Kitchen Deep Clean", Price: 999, DurationMinutes: 120},
			{Name: "Full Home Clean", Price: 2999, DurationMinutes: 240},
		},
	},
	{
		Slug: "painting", Name: "Painting", BasePrice: 1999, MinDurationMinutes: 240,
		SubServices: []domain.SubService{
			{Name: "Single Room", Price: 2500, DurationMinutes: 240},
			{Name: "Wall Touchup", Price: 999, DurationMinutes: 120},
		},
	},
	{
		Slug: "carpentry", Name: "Carpentry", BasePrice: 699, MinDurationMinutes: 60,
		SubServices: []domain.SubService{
			{Name: "Lock Repair", Price: 299, DurationMinutes: 30},
			{Name: "Furniture Assembly", Price: 599, DurationMinutes: 90},
		},
	},
	{
		Slug: "appliance", Name: "Appliance Repair", BasePrice: 599, MinDurationMinutes: 60,
		SubServices: []domain.SubService{
			{Name: "Washing Machine Check", Price: 399, DurationMinutes: 45},
			{Name: "Refrigerator Check", Price: 499, DurationMinutes: 45},
		},
	},
	{
		Slug: "ac-service", Name: "AC Service", BasePrice: 799, MinDurationMinutes: 60,
		SubServices: []domain.SubService{
			{Name: "AC Service (Split)", Price: 599, DurationMinutes: 60},
			{Name: "AC Service (Window)", Price: 499, DurationMinutes: 60},
			{Name: "Gas Filling", Price: 2499, DurationMinutes: 60},
		},
	},
	{
		Slug: "pest-control", Name: "Pest Control", BasePrice: 899, MinDurationMinutes: 60,
		SubServices: []domain.SubService{
			{Name: "Cockroach Control", Price: 599, DurationMinutes: 60},
			{Name: "Mosquito Control", Price: 499, DurationMinutes: 45},
			{Name: "Termite Control", Price: 1499, DurationMinutes: 120},
		},
	},
	{
		Slug: "salon", Name: "Home Salon", BasePrice: 499, MinDurationMinutes: 45,
		SubServices: []domain.SubService{
			{Name: "Haircut", Price: 299, DurationMinutes: 30},
			{Name: "Facial", Price: 599, DurationMinutes: 45},
			{Name: "Manicure & Pedicure", Price: 799, DurationMinutes: 60},
		},
	},
	{
		Slug: "men-grooming", Name: "Men's Grooming", BasePrice: 399, MinDurationMinutes: 30,
		SubServices: []domain.SubService{
			{Name: "Haircut", Price: 199, DurationMinutes: 30},
			{Name: "Beard Trim", Price: 99, DurationMinutes: 15},
			{Name: "Head Massage", Price: 149, DurationMinutes: 20},
		},
	},
	{
		Slug: "movers", Name: "Packers & Movers", BasePrice: 2999, MinDurationMinutes: 180,
		SubServices: []domain.SubService{
			{Name: "1 BHK Moving", Price: 2999, DurationMinutes: 180},
			{Name: "2 BHK Moving", Price: 4999, DurationMinutes: 240},
			{Name: "3 BHK Moving", Price: 7999, DurationMinutes: 360},
		},
	},
	{
		Slug: "other", Name: "Other", BasePrice: 499, MinDurationMinutes: 60,
	},
}

// FallbackCategory returns the built-in category for the slug. Unknown slugs
// get a copy of the generic "other" category carrying the requested slug, so
// booking never blocks on missing reference data.
func FallbackCategory(slug string) *domain.ServiceCategory {
	for i := range fallbackCatalog {
		if fallbackCatalog[i].Slug == slug {
			category := fallbackCatalog[i]
			return &category
		}
	}

	generic := fallbackCatalog[len(fallbackCatalog)-1]
	generic.Slug = slug
	return &generic
}
