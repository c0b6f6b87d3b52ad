package recommend

import "testing"

func TestCapacityScore(t *testing.T) {
	tests := []struct {
		name       string
		vehicle    Vehicle
		passengers int
		luggage    int
		expected   float64
		reason     string
	}{
		{"plenty of seats no bags needed", Vehicle{PassengersCount: 6}, 4, 0, 1.0, "Spacious"},
		{"exact seats", Vehicle{PassengersCount: 4, BagsCount: 4}, 4, 4, 0.9, ""},
		{"one seat short", Vehicle{PassengersCount: 3, BagsCount: 4}, 4, 4, 0.75, ""},
		{"far too small", Vehicle{PassengersCount: 2, BagsCount: 1}, 5, 4, 0.25, ""},
		{"double luggage space", Vehicle{PassengersCount: 4, BagsCount: 8}, 4, 4, 0.95, "Generous Boot"},
		{"tight luggage", Vehicle{PassengersCount: 6, BagsCount: 2}, 4, 4, 0.65, "Spacious"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, reasons := CapacityScore(tc.vehicle, tc.passengers, tc.luggage)
			if score != tc.expected {
				t.Fatalf("expected score %v got %v", tc.expected, score)
			}
			if tc.reason != "" {
				assertReason(t, reasons, tc.reason)
			}
		})
	}
}

func TestCapacityScoreSpaciousScenario(t *testing.T) {
	// Six seats against four travelers hits the top passenger tier.
	score, reasons := CapacityScore(Vehicle{PassengersCount: 6, BagsCount: 2}, 4, 4)
	// Passenger fit 1.0, luggage fit 0.3 (two bags against four needed).
	if score != 0.65 {
		t.Fatalf("expected 0.65 got %v", score)
	}
	assertReason(t, reasons, "Spacious")
}
