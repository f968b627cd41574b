package intent

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_Phrasings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TripIntent
	}{
		{
			name:  "plan a trip binds destination first",
			input: "Plan a trip to Goa from Gadag",
			want:  TripIntent{Origin: "Gadag", Destination: "Goa"},
		},
		{
			name:  "trip from",
			input: "Trip from Bangalore to Mysore",
			want:  TripIntent{Origin: "Bangalore", Destination: "Mysore"},
		},
		{
			name:  "to ... trip binds destination first",
			input: "Hubli to Dharwad trip",
			want:  TripIntent{Origin: "Dharwad", Destination: "Hubli"},
		},
		{
			name:  "route from",
			input: "Route from Pune to Nashik",
			want:  TripIntent{Origin: "Pune", Destination: "Nashik"},
		},
		{
			name:  "show route",
			input: "Show route Mumbai to Delhi",
			want:  TripIntent{Origin: "Mumbai", Destination: "Delhi"},
		},
		{
			name:  "upper case input",
			input: "SHOW ROUTE Mumbai TO Delhi",
			want:  TripIntent{Origin: "Mumbai", Destination: "Delhi"},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "route from   Pune   to   Nashik  ",
			want:  TripIntent{Origin: "Pune", Destination: "Nashik"},
		},
		{
			name:  "trailing punctuation kept",
			input: "Plan a trip to Goa from Gadag!",
			want:  TripIntent{Origin: "Gadag!", Destination: "Goa"},
		},
		{
			name:  "embedded in a sentence",
			input: "Hey, can you plan a trip to Ooty from Chennai",
			want:  TripIntent{Origin: "Chennai", Destination: "Ooty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_NoMatch(t *testing.T) {
	for _, input := range []string{"I like trains", "", "   ", "to", "trip from Goa"} {
		_, ok := Extract(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestExtract_FirstRuleWins(t *testing.T) {
	// Both "trip from ... to ..." and "... to ... trip" match; the earlier rule is used.
	got, ok := Extract("trip from Pune to Goa trip")
	require.True(t, ok)
	assert.Equal(t, TripIntent{Origin: "Pune", Destination: "Goa trip"}, got)
}

func TestExtract_WidthChangingLowercase(t *testing.T) {
	got, ok := Extract("Trip from İstanbul to Ankara")
	require.True(t, ok)
	assert.Equal(t, strings.ToLower("İstanbul"), got.Origin)
	assert.Equal(t, "ankara", got.Destination)
}

func TestExtractor_BlankCaptureStopsSearch(t *testing.T) {
	e := NewExtractor(
		Rule{Name: "blank", Pattern: regexp.MustCompile(`go(\s*)to(\s*)x`), Binding: OriginFirst},
		Rule{Name: "fallback", Pattern: regexp.MustCompile(`(go)(to)`), Binding: OriginFirst},
	)
	_, ok := e.Extract("gotox")
	assert.False(t, ok)

	got, ok := e.Extract("goto")
	require.True(t, ok)
	assert.Equal(t, TripIntent{Origin: "go", Destination: "to"}, got)
}

func TestFirstMatch(t *testing.T) {
	never := func(string) (int, bool) { return 0, false }
	one := func(string) (int, bool) { return 1, true }
	two := func(string) (int, bool) { return 2, true }

	v, ok := FirstMatch[int]("x", never, one, two)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = FirstMatch[int]("x", never)
	assert.False(t, ok)
	assert.Zero(t, v)

	_, ok = FirstMatch[int]("x")
	assert.False(t, ok)
}
