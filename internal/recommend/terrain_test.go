package recommend

import (
	"testing"

	"rental-recommender/backend/internal/trip"
)

func TestTerrainScore(t *testing.T) {
	awdAttr := []Attribute{{Key: "DRIVETRAIN", Value: "AWD"}}

	tests := []struct {
		name     string
		vehicle  Vehicle
		terrain  trip.Terrain
		expected float64
		reason   string
	}{
		{"mountain awd suv", Vehicle{GroupType: "SUV", Attributes: awdAttr}, trip.TerrainMountain, 1.0, "Mountain Ready"},
		{"mountain awd only", Vehicle{GroupType: "Sedan", Attributes: awdAttr}, trip.TerrainMountain, 0.9, "All-Wheel Drive"},
		{"mountain suv only", Vehicle{GroupType: "SUV"}, trip.TerrainMountain, 0.6, ""},
		{"mountain unfit", Vehicle{GroupType: "Compact"}, trip.TerrainMountain, 0.3, ""},
		{"city electric compact", Vehicle{GroupType: "Compact", FuelType: "electric"}, trip.TerrainCity, 1.0, "City Friendly"},
		{"city electric suv", Vehicle{GroupType: "SUV", FuelType: "electric"}, trip.TerrainCity, 0.9, "Electric Drive"},
		{"city sedan", Vehicle{GroupType: "Sedan", FuelType: "petrol"}, trip.TerrainCity, 0.8, ""},
		{"city other", Vehicle{GroupType: "Van", FuelType: "diesel"}, trip.TerrainCity, 0.6, ""},
		{"highway automatic sedan", Vehicle{GroupType: "Sedan", Transmission: "Automatic"}, trip.TerrainHighway, 1.0, "Highway Cruiser"},
		{"highway automatic luxury", Vehicle{GroupType: "SUV", Transmission: "Automatic", IsMoreLuxury: true}, trip.TerrainHighway, 1.0, "Highway Cruiser"},
		{"highway automatic only", Vehicle{GroupType: "SUV", Transmission: "Automatic"}, trip.TerrainHighway, 0.9, ""},
		{"highway manual", Vehicle{GroupType: "Sedan", Transmission: "Manual"}, trip.TerrainHighway, 0.7, ""},
		{"mixed neutral", Vehicle{GroupType: "SUV", Attributes: awdAttr}, trip.TerrainMixed, 0.7, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, reasons := TerrainScore(tc.vehicle, tc.terrain)
			if score != tc.expected {
				t.Fatalf("expected score %v got %v", tc.expected, score)
			}
			assertReason(t, reasons, tc.reason)
		})
	}
}

// assertReason fails unless the reason list contains exactly the expected
// title, or is empty when none is expected.
func assertReason(t *testing.T, reasons []Reason, title string) {
	t.Helper()
	if title == "" {
		if len(reasons) != 0 {
			t.Fatalf("expected no reasons, got %+v", reasons)
		}
		return
	}
	for _, r := range reasons {
		if r.Title == title {
			return
		}
	}
	t.Fatalf("expected reason %q in %+v", title, reasons)
}
