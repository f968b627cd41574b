// README: Rule-based extraction of an origin/destination pair from free text.
package intent

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// TripIntent is an origin/destination pair parsed from an utterance.
type TripIntent struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// Binding says which capture group holds which role.
type Binding int

const (
	// OriginFirst binds group 1 to the origin and group 2 to the destination.
	OriginFirst Binding = iota
	// DestinationFirst binds group 1 to the destination and group 2 to the origin.
	DestinationFirst
)

// Rule pairs a two-group pattern with its role mapping.
// Patterns are matched against lowercased text.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Binding Binding
}

// DefaultRules are tried in order; the first pattern that matches wins.
var DefaultRules = []Rule{
	{Name: "plan-trip-to-from", Pattern: regexp.MustCompile(`plan a trip to\s+(.+?)\s+from\s+(.+)`), Binding: DestinationFirst},
	{Name: "trip-from-to", Pattern: regexp.MustCompile(`trip from\s+(.+?)\s+to\s+(.+)`), Binding: OriginFirst},
	{Name: "to-trip", Pattern: regexp.MustCompile(`(.+?)\s+to\s+(.+?)\s+trip`), Binding: DestinationFirst},
	{Name: "route-from-to", Pattern: regexp.MustCompile(`route from\s+(.+?)\s+to\s+(.+)`), Binding: OriginFirst},
	{Name: "show-route-to", Pattern: regexp.MustCompile(`show route\s+(.+?)\s+to\s+(.+)`), Binding: OriginFirst},
}

// Extractor resolves utterances against an ordered rule list.
type Extractor struct {
	rules []Rule
}

// NewExtractor returns an Extractor over rules, or over DefaultRules when none are given.
func NewExtractor(rules ...Rule) *Extractor {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Extractor{rules: rules}
}

var defaultExtractor = NewExtractor()

// Extract runs the default rules over utterance.
func Extract(utterance string) (TripIntent, bool) {
	return defaultExtractor.Extract(utterance)
}

// Extract returns the intent of the first matching rule. A match whose captures are
// blank after trimming yields no intent; later rules are not consulted.
func (e *Extractor) Extract(utterance string) (TripIntent, bool) {
	lowered := strings.ToLower(utterance)

	// Captures are sliced from the caller's text when lowercasing kept every rune's width,
	// so "Show route Mumbai to Delhi" keeps its casing.
	source := lowered
	if sameWidths(utterance, lowered) {
		source = utterance
	}

	matchers := make([]Matcher[TripIntent], 0, len(e.rules))
	for _, r := range e.rules {
		matchers = append(matchers, r.matcher(source))
	}

	found, ok := FirstMatch(lowered, matchers...)
	if !ok {
		return TripIntent{}, false
	}
	if found.Origin == "" || found.Destination == "" {
		return TripIntent{}, false
	}
	return found, true
}

func (r Rule) matcher(source string) Matcher[TripIntent] {
	return func(lowered string) (TripIntent, bool) {
		loc := r.Pattern.FindStringSubmatchIndex(lowered)
		if loc == nil || len(loc) < 6 || loc[2] < 0 || loc[4] < 0 {
			return TripIntent{}, false
		}
		first := strings.TrimSpace(source[loc[2]:loc[3]])
		second := strings.TrimSpace(source[loc[4]:loc[5]])
		if r.Binding == DestinationFirst {
			return TripIntent{Origin: second, Destination: first}, true
		}
		return TripIntent{Origin: first, Destination: second}, true
	}
}

func sameWidths(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for len(a) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		_, nb := utf8.DecodeRuneInString(b)
		if na != nb || ra == utf8.RuneError {
			return false
		}
		a, b = a[na:], b[nb:]
	}
	return true
}
