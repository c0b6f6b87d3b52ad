package recommend

import (
	"testing"

	"rental-recommender/backend/internal/trip"
)

func TestWeatherScore(t *testing.T) {
	awdAttr := []Attribute{{Key: "features", Value: "AWD"}}

	tests := []struct {
		name     string
		vehicle  Vehicle
		weather  trip.Weather
		expected float64
		reason   string
	}{
		{"snow tyres and awd", Vehicle{TyreType: "Winter", Attributes: awdAttr}, trip.WeatherSnowy, 1.0, "Winter Ready"},
		{"snow tyres only", Vehicle{TyreType: "All-Season"}, trip.WeatherSnowy, 0.8, ""},
		{"snow awd only", Vehicle{TyreType: "Summer", Attributes: awdAttr}, trip.WeatherSnowy, 0.7, ""},
		{"snow unfit", Vehicle{TyreType: "Summer"}, trip.WeatherSnowy, 0.4, ""},
		{"rain all-season", Vehicle{TyreType: "All-Season"}, trip.WeatherRainy, 1.0, "Wet-Road Grip"},
		{"rain other tyres", Vehicle{TyreType: "Winter"}, trip.WeatherRainy, 0.7, ""},
		{"sun convertible", Vehicle{GroupType: "Convertible"}, trip.WeatherSunny, 1.0, "Open-Top Fun"},
		{"sun hardtop", Vehicle{GroupType: "Sedan"}, trip.WeatherSunny, 0.8, ""},
		{"mixed neutral", Vehicle{TyreType: "Winter", Attributes: awdAttr}, trip.WeatherMixed, 0.8, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, reasons := WeatherScore(tc.vehicle, tc.weather)
			if score != tc.expected {
				t.Fatalf("expected score %v got %v", tc.expected, score)
			}
			assertReason(t, reasons, tc.reason)
		})
	}
}

func TestWeatherSnowyAllSeasonWithoutAWDHasNoWinterReadyReason(t *testing.T) {
	score, reasons := WeatherScore(Vehicle{TyreType: "All-Season"}, trip.WeatherSnowy)
	if score != 0.8 {
		t.Fatalf("expected 0.8 got %v", score)
	}
	for _, r := range reasons {
		if r.Title == "Winter Ready" {
			t.Fatalf("unexpected Winter Ready reason without all-wheel drive")
		}
	}
}
