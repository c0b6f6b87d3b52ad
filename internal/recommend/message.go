package recommend

import (
	"fmt"

	"rental-recommender/backend/internal/trip"
)

// RecommendationMessage builds a short summary line for a scored result set.
// The wording varies by result count (one, a few, many) and the trip purpose
// used for scoring.
func RecommendationMessage(scored []ScoredDeal, purpose trip.Purpose) string {
	if len(scored) == 0 {
		return "No offers matched this trip yet. Try adjusting the dates or pickup location."
	}

	noun := purposeNoun(purpose)
	top := scored[0]
	name := top.Deal.Vehicle.Brand + " " + top.Deal.Vehicle.Model

	switch {
	case len(scored) == 1:
		return fmt.Sprintf("The %s is the one offer that stands out for your %s, scoring %.0f/100.",
			name, noun, top.Score)
	case len(scored) <= 3:
		return fmt.Sprintf("We found %d strong options for your %s, led by the %s at %.0f/100.",
			len(scored), noun, name, top.Score)
	default:
		return fmt.Sprintf("Out of %d offers for your %s, the %s leads the pack at %.0f/100.",
			len(scored), noun, name, top.Score)
	}
}

func purposeNoun(purpose trip.Purpose) string {
	switch purpose {
	case trip.PurposeFamily:
		return "family getaway"
	case trip.PurposeBusiness:
		return "business trip"
	case trip.PurposeVacation:
		return "vacation"
	default:
		return "trip"
	}
}
