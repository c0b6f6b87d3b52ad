package recommend

import (
	"reflect"
	"testing"

	"rental-recommender/backend/internal/trip"
)

func newTestRecommender(t *testing.T) *Recommender {
	t.Helper()
	r, err := NewRecommender(DefaultWeights())
	if err != nil {
		t.Fatalf("new recommender: %v", err)
	}
	return r
}

func TestNewRecommenderRejectsInvalidWeights(t *testing.T) {
	if _, err := NewRecommender(Weights{Terrain: 1.5}); err == nil {
		t.Fatal("expected error for invalid weights")
	}
}

func TestScoreVehicleBounds(t *testing.T) {
	r := newTestRecommender(t)
	ctx := trip.Context{
		Terrain:    trip.TerrainMountain,
		Weather:    trip.WeatherSnowy,
		Purpose:    trip.PurposeAdventure,
		Passengers: 4,
		Luggage:    3,
	}

	vehicles := []Vehicle{
		{ID: "ideal", GroupType: "SUV", TyreType: "Winter", PassengersCount: 7, BagsCount: 6,
			Attributes: []Attribute{{Key: "DRIVETRAIN", Value: "AWD"}}, IsNewCar: true},
		{ID: "poor", GroupType: "Compact", TyreType: "Summer", PassengersCount: 2, BagsCount: 1},
	}

	for _, v := range vehicles {
		rec := r.ScoreVehicle(v, ctx, nil)
		if rec.Score < 0 || rec.Score > 1 {
			t.Fatalf("score out of range for %s: %v", v.ID, rec.Score)
		}
		if rec.MatchPercent < 0 || rec.MatchPercent > 100 {
			t.Fatalf("match percent out of range for %s: %d", v.ID, rec.MatchPercent)
		}
		for i := 1; i < len(rec.Reasons); i++ {
			if rec.Reasons[i-1].Impact < rec.Reasons[i].Impact {
				t.Fatalf("reasons not sorted by impact: %+v", rec.Reasons)
			}
		}
	}
}

func TestScoreVehicleIdempotent(t *testing.T) {
	r := newTestRecommender(t)
	ctx := trip.Context{Terrain: trip.TerrainCity, Weather: trip.WeatherRainy, Purpose: trip.PurposeBusiness, Passengers: 2}
	v := Vehicle{ID: "v1", Brand: "Volvo", GroupType: "Sedan", FuelType: "electric", TyreType: "All-Season", Transmission: "Automatic", PassengersCount: 5, BagsCount: 3, IsMoreLuxury: true}
	profile := &UserProfile{PreferredBrands: []string{"Volvo"}}

	first := r.ScoreVehicle(v, ctx, profile)
	second := r.ScoreVehicle(v, ctx, profile)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scoring is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestScoreVehiclesRanking(t *testing.T) {
	r := newTestRecommender(t)
	ctx := trip.Context{Terrain: trip.TerrainMountain, Weather: trip.WeatherSnowy, Purpose: trip.PurposeAdventure, Passengers: 4, Luggage: 2}

	vehicles := []Vehicle{
		{ID: "city-car", GroupType: "Compact", TyreType: "Summer", PassengersCount: 4, BagsCount: 2},
		{ID: "mountain-suv", GroupType: "SUV", TyreType: "Winter", PassengersCount: 7, BagsCount: 5,
			Attributes: []Attribute{{Key: "DRIVETRAIN", Value: "4WD"}}},
		{ID: "mid-sedan", GroupType: "Sedan", TyreType: "All-Season", PassengersCount: 5, BagsCount: 3},
	}

	ranked := r.ScoreVehicles(vehicles, ctx, nil)
	if len(ranked) != len(vehicles) {
		t.Fatalf("expected %d results got %d", len(vehicles), len(ranked))
	}
	if ranked[0].Vehicle.ID != "mountain-suv" {
		t.Fatalf("expected mountain-suv first, got %s", ranked[0].Vehicle.ID)
	}
	for i, rec := range ranked {
		if rec.Rank != i+1 {
			t.Fatalf("expected dense rank %d got %d", i+1, rec.Rank)
		}
		if i > 0 && ranked[i-1].Score < rec.Score {
			t.Fatalf("results not sorted descending at index %d", i)
		}
	}
}

func TestScoreVehiclesEmptyInput(t *testing.T) {
	r := newTestRecommender(t)
	ranked := r.ScoreVehicles(nil, trip.Context{}, nil)
	if ranked == nil || len(ranked) != 0 {
		t.Fatalf("expected empty slice, got %v", ranked)
	}
}

func TestScoreVehiclesTiesKeepInputOrder(t *testing.T) {
	r := newTestRecommender(t)
	ctx := trip.Context{Terrain: trip.TerrainMixed, Weather: trip.WeatherMixed, Purpose: trip.PurposeUnknown, Passengers: 2}

	// Identical vehicles score identically; the stable sort must keep them
	// in input order.
	twin := Vehicle{GroupType: "Sedan", PassengersCount: 5, BagsCount: 3}
	first, second := twin, twin
	first.ID = "first"
	second.ID = "second"

	ranked := r.ScoreVehicles([]Vehicle{first, second}, ctx, nil)
	if ranked[0].Vehicle.ID != "first" || ranked[1].Vehicle.ID != "second" {
		t.Fatalf("tie broke input order: %s, %s", ranked[0].Vehicle.ID, ranked[1].Vehicle.ID)
	}
	if ranked[0].Score != ranked[1].Score {
		t.Fatalf("twins should score identically: %v vs %v", ranked[0].Score, ranked[1].Score)
	}
}

func TestMountainScenarioMatchesSpecBehavior(t *testing.T) {
	v := Vehicle{GroupType: "SUV", Attributes: []Attribute{{Key: "DRIVETRAIN", Value: "AWD"}}}
	score, reasons := TerrainScore(v, trip.TerrainMountain)
	if score != 1.0 {
		t.Fatalf("expected terrain score 1.0 got %v", score)
	}
	assertReason(t, reasons, "Mountain Ready")
}
