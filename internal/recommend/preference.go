package recommend

import "strings"

// PreferenceScore rates the vehicle against the user's learned preferences.
// A nil profile yields the neutral baseline of 0.5 with no reasons.
// Transmission matches raise the score without emitting a reason, matching
// the product's current behavior.
func PreferenceScore(v Vehicle, profile *UserProfile) (float64, []Reason) {
	score := 0.5
	if profile == nil {
		return score, nil
	}

	var reasons []Reason
	if containsFold(profile.PreferredBrands, v.Brand) {
		score += 0.3
		reasons = append(reasons, Reason{
			Title:  "Preferred Brand",
			Detail: v.Brand + " is one of your usual picks",
			Impact: ImpactMedium,
		})
	}
	if profile.PreferredTransmission != "" &&
		strings.EqualFold(strings.TrimSpace(profile.PreferredTransmission), strings.TrimSpace(v.Transmission)) {
		score += 0.2
	}

	return clamp01(score), reasons
}

func containsFold(haystack []string, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return false
	}
	for _, item := range haystack {
		if strings.EqualFold(strings.TrimSpace(item), needle) {
			return true
		}
	}
	return false
}
