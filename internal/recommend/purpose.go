package recommend

import "rental-recommender/backend/internal/trip"

// PurposeScore rates how well the vehicle fits the reason for the trip.
// An UNKNOWN purpose stays neutral.
func PurposeScore(v Vehicle, purpose trip.Purpose) (float64, []Reason) {
	var reasons []Reason
	score := 0.7

	switch purpose {
	case trip.PurposeBusiness:
		switch {
		case v.IsMoreLuxury && (isSedan(v) || v.IsNewCar):
			score = 1.0
			reasons = append(reasons, Reason{
				Title:  "Business Class",
				Detail: "Luxury sedan that arrives sharp at any meeting",
				Impact: ImpactHigh,
			})
		case v.IsMoreLuxury:
			score = 0.9
		case isSedan(v) || isAutomatic(v):
			score = 0.8
		default:
			score = 0.6
		}
	case trip.PurposeVacation:
		switch {
		case v.PassengersCount >= 4 && (v.IsExcitingDiscount || v.IsRecommended):
			score = 1.0
			reasons = append(reasons, Reason{
				Title:  "Holiday Pick",
				Detail: "Popular choice with space for the whole group",
				Impact: ImpactHigh,
			})
		case v.PassengersCount >= 4:
			score = 0.8
		default:
			score = 0.7
		}
	case trip.PurposeFamily:
		switch {
		case v.PassengersCount >= 5 && v.BagsCount >= 3 && v.IsNewCar:
			score = 1.0
			reasons = append(reasons, Reason{
				Title:  "Family Favorite",
				Detail: "New, roomy car with space for the family and its luggage",
				Impact: ImpactHigh,
			})
		case v.PassengersCount >= 5 && v.BagsCount >= 3:
			score = 0.9
		case v.PassengersCount >= 5:
			score = 0.7
		default:
			score = 0.5
		}
	case trip.PurposeAdventure:
		awd := HasCapability(v, CapabilityAllWheelDrive)
		switch {
		case isSUV(v) && awd:
			score = 1.0
			reasons = append(reasons, Reason{
				Title:  "Adventure Ready",
				Detail: "All-wheel drive SUV for wherever the trip leads",
				Impact: ImpactHigh,
			})
		case isSUV(v) || awd:
			score = 0.8
		default:
			score = 0.5
		}
	default:
		score = 0.7
	}

	return clamp01(score), reasons
}
