package suggestion

// Fallback returns the fixed placeholder document. It does not depend on the
// request and every call returns a fresh copy.
func Fallback() Document {
	return Document{
		Accommodations: []Accommodation{
			{
				Name:        "Centrally Located Hotel",
				Type:        "Hotel",
				PriceRange:  "$120-180/night",
				Rating:      4.2,
				Description: "Comfortable accommodation with modern amenities",
				Location:    "City Center",
			},
			{
				Name:        "Boutique Inn",
				Type:        "B&B",
				PriceRange:  "$90-140/night",
				Rating:      4.4,
				Description: "Charming local hospitality with personalized service",
				Location:    "Historic District",
			},
			{
				Name:        "Modern Apartment",
				Type:        "Airbnb",
				PriceRange:  "$80-120/night",
				Rating:      4.3,
				Description: "Spacious apartment perfect for families or groups",
				Location:    "Residential Area",
			},
		},
		Restaurants: []Restaurant{
			{
				Name:        "Local Favorite Bistro",
				Cuisine:     "Local",
				PriceRange:  "$30-50/person",
				Rating:      4.5,
				Description: "Authentic local cuisine with seasonal ingredients",
				Location:    "Downtown",
			},
			{
				Name:        "Rooftop Restaurant",
				Cuisine:     "International",
				PriceRange:  "$40-70/person",
				Rating:      4.3,
				Description: "Fine dining with panoramic city views",
				Location:    "City Center",
			},
			{
				Name:        "Cozy Café",
				Cuisine:     "Café",
				PriceRange:  "$15-25/person",
				Rating:      4.6,
				Description: "Perfect for breakfast and casual meals",
				Location:    "Arts Quarter",
			},
		},
		Activities: []Activity{
			{
				Name:        "City Walking Tour",
				Type:        "Sightseeing",
				Duration:    "3 hours",
				Cost:        "$25-35",
				Description: "Guided tour of historical landmarks and attractions",
				Location:    "City Center",
			},
			{
				Name:        "Local Museum Visit",
				Type:        "Cultural",
				Duration:    "2-3 hours",
				Cost:        "$15-25",
				Description: "Explore local history and culture",
				Location:    "Museum District",
			},
			{
				Name:        "Scenic Viewpoint",
				Type:        "Nature",
				Duration:    "1-2 hours",
				Cost:        "Free",
				Description: "Beautiful views and photo opportunities",
				Location:    "Hilltop Area",
			},
		},
		Itinerary: []DayPlan{
			{
				Day:           1,
				Location:      "Starting destination",
				Activities:    []string{"Check-in", "City Walking Tour", "Local Dinner"},
				Accommodation: "Centrally Located Hotel",
				Meals:         []string{"Cozy Café (breakfast)", "Local Favorite Bistro (dinner)"},
				Notes:         "Take it easy on arrival day and get oriented",
			},
			{
				Day:           2,
				Location:      "Main destination",
				Activities:    []string{"Museum Visit", "Scenic Viewpoint", "Shopping"},
				Accommodation: "Centrally Located Hotel",
				Meals:         []string{"Hotel breakfast", "Rooftop Restaurant (dinner)"},
				Notes:         "Full day of exploration and sightseeing",
			},
		},
		TotalEstimatedCost: "$800-1200 per person for a weekend trip",
		BestTimeToVisit:    "Spring or Fall for optimal weather and fewer crowds",
		PackingList: []string{
			"Comfortable walking shoes",
			"Weather-appropriate clothing",
			"Camera or smartphone",
			"Portable charger",
			"Travel documents",
			"Light daypack",
		},
		TravelTips: []string{
			"Book accommodations in advance for better rates",
			"Try local specialties and ask for recommendations",
			"Use public transportation or walk when possible",
			"Keep copies of important documents",
			"Check local customs and etiquette",
			"Download offline maps for navigation",
		},
	}
}
