package maps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// ErrNoRoute is returned when the Directions API finds no leg between the points.
var ErrNoRoute = errors.New("no route found")

// Estimate summarises the first leg of the best driving route.
type Estimate struct {
	Duration time.Duration `json:"duration"`
	Minutes  float64       `json:"minutes"`
	Distance string        `json:"distance"`
	Meters   int           `json:"meters"`
	Summary  string        `json:"summary,omitempty"`
}

// directions is the slice of *maps.Client used here.
type directions interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// RouteService handles interactions with Google Maps API.
type RouteService struct {
	client   directions
	language string
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client, language: "en"}, nil
}

// Estimate returns the driving duration and distance from origin to destination.
func (s *RouteService) Estimate(ctx context.Context, origin, destination string) (Estimate, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Language:    s.language,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return Estimate{}, fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Estimate{}, ErrNoRoute
	}

	leg := routes[0].Legs[0]
	return Estimate{
		Duration: leg.Duration,
		Minutes:  leg.Duration.Minutes(),
		Distance: leg.Distance.HumanReadable,
		Meters:   leg.Distance.Meters,
		Summary:  routes[0].Summary,
	}, nil
}
