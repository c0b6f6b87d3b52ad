package recommend

import (
	"fmt"
	"math"
	"sort"

	"rental-recommender/backend/internal/trip"
)

// Recommender combines the dimension scorers into ranked vehicle
// recommendations using a validated weight configuration. It holds no
// mutable state and is safe for concurrent use.
type Recommender struct {
	weights Weights
}

// NewRecommender constructs a recommender, rejecting weight sets that do not
// sum to 1.0.
func NewRecommender(w Weights) (*Recommender, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("recommender weights: %w", err)
	}
	return &Recommender{weights: w}, nil
}

// Weights returns the active weight configuration.
func (r *Recommender) Weights() Weights {
	if r == nil {
		return DefaultWeights()
	}
	return r.weights
}

// ScoreVehicle scores a single vehicle against the trip context and optional
// user profile. The overall score is the weighted combination of the five
// dimension scores, clamped to [0,1]; MatchPercent is the rounded integer
// percentage. Reasons from every dimension are merged and ordered by
// descending impact. Rank is left unset; ScoreVehicles assigns it.
func (r *Recommender) ScoreVehicle(v Vehicle, ctx trip.Context, profile *UserProfile) Recommendation {
	ctx = ctx.Normalize()
	w := r.Weights()

	terrain, reasons := TerrainScore(v, ctx.Terrain)
	weather, weatherReasons := WeatherScore(v, ctx.Weather)
	capacity, capacityReasons := CapacityScore(v, ctx.Passengers, ctx.Luggage)
	purpose, purposeReasons := PurposeScore(v, ctx.Purpose)
	preference, prefReasons := PreferenceScore(v, profile)

	reasons = append(reasons, weatherReasons...)
	reasons = append(reasons, capacityReasons...)
	reasons = append(reasons, purposeReasons...)
	reasons = append(reasons, prefReasons...)

	score := clamp01(w.Terrain*terrain +
		w.Weather*weather +
		w.Capacity*capacity +
		w.Purpose*purpose +
		w.Preference*preference)

	return Recommendation{
		Vehicle:      v,
		Score:        score,
		MatchPercent: matchPercent(score),
		Reasons:      sortReasons(reasons),
	}
}

// ScoreVehicles scores every vehicle, sorts descending by score, and assigns
// dense 1-based ranks. The sort is stable, so vehicles with identical scores
// keep their original relative order. An empty catalog yields an empty slice.
func (r *Recommender) ScoreVehicles(vehicles []Vehicle, ctx trip.Context, profile *UserProfile) []Recommendation {
	if len(vehicles) == 0 {
		return []Recommendation{}
	}
	out := make([]Recommendation, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, r.ScoreVehicle(v, ctx, profile))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

func matchPercent(score float64) int {
	pct := int(math.Round(score * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
