package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BodyGetter is the part of the enhanced HTTP client the gateway needs
type BodyGetter interface {
	GetBody(ctx context.Context, url string) ([]byte, error)
}

// OSRMGW talks to an OSRM server using the walking profile
type OSRMGW struct {
	client  BodyGetter
	baseURL string
}

// NewOSRMGW creates a new OSRM gateway
func NewOSRMGW(client BodyGetter, baseURL string) *OSRMGW {
	return &OSRMGW{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Distance float64   `json:"distance"`
	Duration float64   `json:"duration"`
	Legs     []osrmLeg `json:"legs"`
}

type osrmLeg struct {
	Steps []osrmStep `json:"steps"`
}

type osrmStep struct {
	Distance float64      `json:"distance"`
	Duration float64      `json:"duration"`
	Name     string       `json:"name"`
	Maneuver osrmManeuver `json:"maneuver"`
}

type osrmManeuver struct {
	Type     string `json:"type"`
	Modifier string `json:"modifier"`
}

// WalkingRoute returns distance, duration and turn-by-turn steps between two
// points. No route yields an empty result, not an error.
func (g *OSRMGW) WalkingRoute(ctx context.Context, from, to models.Point) (*models.WalkRoute, error) {
	// OSRM takes lng,lat pairs
	url := fmt.Sprintf("%s/route/v1/walking/%f,%f;%f,%f?overview=false&steps=true",
		g.baseURL, from.Lng, from.Lat, to.Lng, to.Lat)

	body, err := g.client.GetBody(ctx, url)
	if err != nil {
		return nil, apperror.Upstream(err, "walking directions unavailable")
	}

	var resp osrmResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperror.Upstream(err, "walking directions unreadable")
	}

	route := &models.WalkRoute{Steps: []models.WalkStep{}}
	if len(resp.Routes) == 0 {
		return route, nil
	}

	first := resp.Routes[0]
	route.DistanceM = first.Distance
	route.DurationS = first.Duration
	if len(first.Legs) == 0 {
		return route, nil
	}

	for _, s := range first.Legs[0].Steps {
		route.Steps = append(route.Steps, models.WalkStep{
			Instruction: formatInstruction(s.Maneuver, s.Name),
			DistanceM:   s.Distance,
			DurationS:   s.Duration,
		})
	}
	return route, nil
}

func formatInstruction(m osrmManeuver, name string) string {
	kind := m.Type
	if kind == "" {
		kind = "continue"
	}
	road := strings.TrimSpace(name)
	// Casers are stateful, so one per call
	title := cases.Title(language.English).String(kind)

	switch kind {
	case "depart":
		if road != "" {
			return "Depart onto " + road
		}
		return "Depart"
	case "arrive":
		return "Arrive at destination"
	case "roundabout":
		if road != "" {
			return "Enter roundabout and take exit onto " + road
		}
		return "Enter roundabout"
	case "turn", "new name", "continue", "merge", "on ramp", "off ramp", "fork", "end of road":
		switch {
		case m.Modifier != "" && road != "":
			return fmt.Sprintf("%s %s onto %s", title, m.Modifier, road)
		case m.Modifier != "":
			return title + " " + m.Modifier
		}
	}

	if road != "" {
		return title + " onto " + road
	}
	return title
}
