package suggestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	c := sampleConstraints()
	p := BuildPrompt(c)

	assert.Contains(t, p, "- Starting Point: Bengaluru")
	assert.Contains(t, p, "- Destinations: Goa, Gokarna")
	assert.Contains(t, p, "- Duration: 5 days")
	assert.Contains(t, p, "- Travelers: 2 adults")
	assert.Contains(t, p, "- Budget: mid-range")
	assert.Contains(t, p, "- Interests: beaches, seafood")
	assert.Contains(t, p, "- Additional Notes: None")
	assert.Contains(t, p, `"totalEstimatedCost"`)
	assert.Contains(t, p, `"travelTips"`)
	assert.Contains(t, p, "Return ONLY the JSON object, no additional text.")

	assert.Equal(t, p, BuildPrompt(c), "prompt is reproducible")

	c.Notes = "vegetarian"
	assert.Contains(t, BuildPrompt(c), "- Additional Notes: vegetarian")
}

func TestConstraints_Validate(t *testing.T) {
	assert.NoError(t, sampleConstraints().Validate())

	missingStart := sampleConstraints()
	missingStart.StartingPoint = ""
	assert.Error(t, missingStart.Validate())

	noDestinations := sampleConstraints()
	noDestinations.Destinations = nil
	assert.Error(t, noDestinations.Validate())

	blankDestination := sampleConstraints()
	blankDestination.Destinations = []string{"Goa", ""}
	assert.Error(t, blankDestination.Validate())
}

func TestFallback_FreshCopies(t *testing.T) {
	a := Fallback()
	a.PackingList[0] = "changed"
	a.Itinerary[0].Activities[0] = "changed"

	b := Fallback()
	assert.Equal(t, "Comfortable walking shoes", b.PackingList[0])
	assert.Equal(t, "Check-in", b.Itinerary[0].Activities[0])
	assert.NoError(t, validate.Struct(b))
	assert.Len(t, b.Accommodations, 3)
	assert.Len(t, b.Itinerary, 2)
}
