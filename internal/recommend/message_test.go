package recommend

import (
	"strings"
	"testing"

	"rental-recommender/backend/internal/trip"
)

func TestRecommendationMessage(t *testing.T) {
	deal := func(id string) ScoredDeal {
		return ScoredDeal{Deal: Deal{Vehicle: Vehicle{ID: id, Brand: "Volvo", Model: "XC60"}}, Score: 82}
	}

	tests := []struct {
		name     string
		scored   []ScoredDeal
		purpose  trip.Purpose
		contains string
	}{
		{"empty", nil, trip.PurposeFamily, "No offers matched"},
		{"single family", []ScoredDeal{deal("a")}, trip.PurposeFamily, "family getaway"},
		{"few business", []ScoredDeal{deal("a"), deal("b")}, trip.PurposeBusiness, "business trip"},
		{"many vacation", []ScoredDeal{deal("a"), deal("b"), deal("c"), deal("d")}, trip.PurposeVacation, "vacation"},
		{"unknown purpose fallback", []ScoredDeal{deal("a"), deal("b"), deal("c"), deal("d")}, trip.PurposeUnknown, "trip"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := RecommendationMessage(tc.scored, tc.purpose)
			if !strings.Contains(msg, tc.contains) {
				t.Fatalf("expected message to contain %q, got %q", tc.contains, msg)
			}
		})
	}
}

func TestRecommendationMessageNamesTopDeal(t *testing.T) {
	scored := []ScoredDeal{
		{Deal: Deal{Vehicle: Vehicle{Brand: "Skoda", Model: "Octavia"}}, Score: 91},
		{Deal: Deal{Vehicle: Vehicle{Brand: "Fiat", Model: "500"}}, Score: 40},
	}
	msg := RecommendationMessage(scored, trip.PurposeBusiness)
	if !strings.Contains(msg, "Skoda Octavia") {
		t.Fatalf("expected top deal name in message, got %q", msg)
	}
}
