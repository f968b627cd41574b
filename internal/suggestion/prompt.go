package suggestion

import (
	"fmt"
	"strings"
)

// schemaExample is embedded in every prompt so the model sees the exact keys.
const schemaExample = `{
  "accommodations": [
    {
      "name": "Hotel Name",
      "type": "Hotel/B&B/Airbnb",
      "priceRange": "$100-200/night",
      "rating": 4.5,
      "description": "Brief description",
      "location": "City, Area"
    }
  ],
  "restaurants": [
    {
      "name": "Restaurant Name",
      "cuisine": "Italian/Local/etc",
      "priceRange": "$25-50/person",
      "rating": 4.3,
      "description": "Brief description",
      "location": "City, Area"
    }
  ],
  "activities": [
    {
      "name": "Activity Name",
      "type": "Sightseeing/Adventure/etc",
      "duration": "2-3 hours",
      "cost": "$20-40",
      "description": "Brief description",
      "location": "City, Area"
    }
  ],
  "itinerary": [
    {
      "day": 1,
      "location": "City Name",
      "activities": ["Activity 1", "Activity 2"],
      "accommodation": "Hotel Name",
      "meals": ["Restaurant for breakfast", "Restaurant for dinner"],
      "notes": "Travel tips for the day"
    }
  ],
  "totalEstimatedCost": "$1500-2500 for the entire trip",
  "bestTimeToVisit": "Spring (March-May) for optimal weather",
  "packingList": ["Item 1", "Item 2", "Item 3"],
  "travelTips": ["Tip 1", "Tip 2", "Tip 3"]
}`

// BuildPrompt renders c into the instruction sent to the model. The output depends
// only on c.
func BuildPrompt(c Constraints) string {
	notes := c.Notes
	if strings.TrimSpace(notes) == "" {
		notes = "None"
	}

	return fmt.Sprintf(`You are a professional travel planning AI. Analyze the following trip request and provide comprehensive suggestions in JSON format.

Trip Details:
- Starting Point: %s
- Destinations: %s
- Duration: %s
- Travelers: %s
- Budget: %s
- Interests: %s
- Additional Notes: %s

Please provide a detailed JSON response with the following structure:

%s

Provide at least 3-5 suggestions for accommodations, restaurants, and activities. Make the recommendations specific to the destinations and interests mentioned. Return ONLY the JSON object, no additional text.
`,
		c.StartingPoint,
		strings.Join(c.Destinations, ", "),
		c.Duration,
		c.TravelerProfile,
		c.BudgetTier,
		c.Interests,
		notes,
		schemaExample)
}
