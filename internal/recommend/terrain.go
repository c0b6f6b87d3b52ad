package recommend

import "rental-recommender/backend/internal/trip"

// TerrainScore rates how well the vehicle suits the trip terrain. The score
// is clamped to [0,1] and returned together with any supporting reasons.
func TerrainScore(v Vehicle, terrain trip.Terrain) (float64, []Reason) {
	var reasons []Reason
	score := 0.7

	switch terrain {
	case trip.TerrainMountain:
		awd := HasCapability(v, CapabilityAllWheelDrive)
		switch {
		case awd && isSUV(v):
			score = 1.0
			reasons = append(reasons, Reason{
				Title:  "Mountain Ready",
				Detail: "All-wheel drive SUV suited to steep and unpaved mountain roads",
				Impact: ImpactTop,
			})
		case awd:
			score = 0.9
			reasons = append(reasons, Reason{
				Title:  "All-Wheel Drive",
				Detail: "Drivetrain keeps traction on mountain passes",
				Impact: ImpactHigh,
			})
		case isSUV(v):
			score = 0.6
		default:
			score = 0.3
		}
	case trip.TerrainCity:
		electric := HasCapability(v, CapabilityElectric)
		nimble := isCompact(v) || isSedan(v)
		switch {
		case electric && nimble:
			score = 1.0
			reasons = append(reasons, Reason{
				Title:  "City Friendly",
				Detail: "Compact electric, easy to park and cheap to run in town",
				Impact: ImpactHigh,
			})
		case electric:
			score = 0.9
			reasons = append(reasons, Reason{
				Title:  "Electric Drive",
				Detail: "Zero-emission driving for low-emission city zones",
				Impact: ImpactMedium,
			})
		case nimble:
			score = 0.8
		default:
			score = 0.6
		}
	case trip.TerrainHighway:
		switch {
		case isAutomatic(v) && (isSedan(v) || v.IsMoreLuxury):
			score = 1.0
			reasons = append(reasons, Reason{
				Title:  "Highway Cruiser",
				Detail: "Automatic transmission and a comfortable ride for long stretches",
				Impact: ImpactHigh,
			})
		case isAutomatic(v):
			score = 0.9
		default:
			score = 0.7
		}
	default:
		// MIXED and unrecognized terrains stay neutral.
		score = 0.7
	}

	return clamp01(score), reasons
}
