package recommend

import (
	"testing"

	"rental-recommender/backend/internal/trip"
)

func TestPurposeScore(t *testing.T) {
	awdAttr := []Attribute{{Key: "spec", Value: "4WD"}}

	tests := []struct {
		name     string
		vehicle  Vehicle
		purpose  trip.Purpose
		expected float64
		reason   string
	}{
		{"business luxury sedan", Vehicle{GroupType: "Sedan", IsMoreLuxury: true}, trip.PurposeBusiness, 1.0, "Business Class"},
		{"business luxury new car", Vehicle{GroupType: "SUV", IsMoreLuxury: true, IsNewCar: true}, trip.PurposeBusiness, 1.0, "Business Class"},
		{"business luxury only", Vehicle{GroupType: "SUV", IsMoreLuxury: true}, trip.PurposeBusiness, 0.9, ""},
		{"business sedan only", Vehicle{GroupType: "Sedan"}, trip.PurposeBusiness, 0.8, ""},
		{"business unfit", Vehicle{GroupType: "Van", Transmission: "Manual"}, trip.PurposeBusiness, 0.6, ""},
		{"vacation group discount", Vehicle{PassengersCount: 5, IsExcitingDiscount: true}, trip.PurposeVacation, 1.0, "Holiday Pick"},
		{"vacation group recommended", Vehicle{PassengersCount: 4, IsRecommended: true}, trip.PurposeVacation, 1.0, "Holiday Pick"},
		{"vacation group only", Vehicle{PassengersCount: 4}, trip.PurposeVacation, 0.8, ""},
		{"vacation small car", Vehicle{PassengersCount: 2}, trip.PurposeVacation, 0.7, ""},
		{"family new roomy", Vehicle{PassengersCount: 7, BagsCount: 4, IsNewCar: true}, trip.PurposeFamily, 1.0, "Family Favorite"},
		{"family roomy", Vehicle{PassengersCount: 5, BagsCount: 3}, trip.PurposeFamily, 0.9, ""},
		{"family seats only", Vehicle{PassengersCount: 5, BagsCount: 1}, trip.PurposeFamily, 0.7, ""},
		{"family unfit", Vehicle{PassengersCount: 4, BagsCount: 4}, trip.PurposeFamily, 0.5, ""},
		{"adventure awd suv", Vehicle{GroupType: "SUV", Attributes: awdAttr}, trip.PurposeAdventure, 1.0, "Adventure Ready"},
		{"adventure suv only", Vehicle{GroupType: "SUV"}, trip.PurposeAdventure, 0.8, ""},
		{"adventure awd only", Vehicle{GroupType: "Sedan", Attributes: awdAttr}, trip.PurposeAdventure, 0.8, ""},
		{"adventure unfit", Vehicle{GroupType: "Compact"}, trip.PurposeAdventure, 0.5, ""},
		{"unknown neutral", Vehicle{GroupType: "SUV"}, trip.PurposeUnknown, 0.7, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, reasons := PurposeScore(tc.vehicle, tc.purpose)
			if score != tc.expected {
				t.Fatalf("expected score %v got %v", tc.expected, score)
			}
			assertReason(t, reasons, tc.reason)
		})
	}
}
