package recommend

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

const weightTolerance = 0.001

// Weights defines the relative importance of each scoring dimension for the
// vehicle-level aggregator. All weights must sum to 1.0 (±0.001).
type Weights struct {
	Terrain    float64 `json:"terrain"`
	Weather    float64 `json:"weather"`
	Capacity   float64 `json:"capacity"`
	Purpose    float64 `json:"purpose"`
	Preference float64 `json:"preference"`
}

// DefaultWeights returns the product-defined weight distribution.
func DefaultWeights() Weights {
	return Weights{
		Terrain:    0.25,
		Weather:    0.20,
		Capacity:   0.25,
		Purpose:    0.20,
		Preference: 0.10,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Terrain + w.Weather + w.Capacity + w.Purpose + w.Preference
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w Weights) Validate() error {
	if math.Abs(w.Sum()-1.0) > weightTolerance {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.Terrain, w.Weather, w.Capacity, w.Purpose, w.Preference} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}

// LoadWeights reads weight overrides from a JSON file. An empty path returns
// the defaults. The result is validated before being returned.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()
	if path == "" {
		return w, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return w, fmt.Errorf("read weights: %w", err)
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return w, fmt.Errorf("unmarshal weights: %w", err)
	}
	if err := w.Validate(); err != nil {
		return w, err
	}
	return w, nil
}
