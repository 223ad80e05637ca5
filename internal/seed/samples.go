package seed

import "github.com/heartmarshall/hearthhub/internal/domain"

// Samples returns the demo listings, in insertion order.
func Samples() []domain.PropertyFormData {
	return []domain.PropertyFormData{
		{
			Title:        "Modern Downtown Apartment",
			Description:  "Beautiful modern apartment in the heart of the city with stunning skyline views. Features include hardwood floors, stainless steel appliances, and a spacious balcony.",
			Price:        850000,
			Bedrooms:     2,
			Bathrooms:    2,
			Area:         1200,
			PropertyType: domain.PropertyTypeApartment,
			Location:     "Manhattan, NY",
			Amenities:    []string{"Modern Kitchen", "City View", "Balcony", "Hardwood Floors"},
			Images:       []string{"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&h=600&fit=crop"},
		},
		{
			Title:        "Suburban Family House",
			Description:  "Spacious family home with large backyard, perfect for children and pets. Updated kitchen, finished basement, and attached garage.",
			Price:        450000,
			Bedrooms:     4,
			Bathrooms:    3,
			Area:         2800,
			PropertyType: domain.PropertyTypeHouse,
			Location:     "Austin, TX",
			Amenities:    []string{"Garden", "Garage", "Modern Kitchen", "Fireplace"},
			Images:       []string{"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=800&h=600&fit=crop"},
		},
		{
			Title:        "Luxury Beach Villa",
			Description:  "Stunning beachfront villa with private pool and direct ocean access. Premium finishes throughout, chef's kitchen, and multiple outdoor entertaining areas.",
			Price:        1200000,
			Bedrooms:     5,
			Bathrooms:    4,
			Area:         4200,
			PropertyType: domain.PropertyTypeVilla,
			Location:     "Miami, FL",
			Amenities:    []string{"Swimming Pool", "Garden", "Modern Kitchen", "City View", "Walk-in Closet"},
			Images:       []string{"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=800&h=600&fit=crop"},
		},
	}
}
