package recommend

import "rental-recommender/backend/internal/trip"

// WeatherScore rates how well the vehicle suits the expected weather.
func WeatherScore(v Vehicle, weather trip.Weather) (float64, []Reason) {
	var reasons []Reason
	score := 0.8

	switch weather {
	case trip.WeatherSnowy:
		tires := HasCapability(v, CapabilityWinterTires)
		awd := HasCapability(v, CapabilityAllWheelDrive)
		switch {
		case tires && awd:
			score = 1.0
			reasons = append(reasons, Reason{
				Title:  "Winter Ready",
				Detail: "Winter-rated tyres plus all-wheel drive for snow and ice",
				Impact: ImpactTop,
			})
		case tires:
			score = 0.8
		case awd:
			score = 0.7
		default:
			score = 0.4
		}
	case trip.WeatherRainy:
		if hasAllSeasonTires(v) {
			score = 1.0
			reasons = append(reasons, Reason{
				Title:  "Wet-Road Grip",
				Detail: "All-season tyres hold the road in heavy rain",
				Impact: ImpactHigh,
			})
		} else {
			score = 0.7
		}
	case trip.WeatherSunny:
		if HasCapability(v, CapabilityConvertible) {
			score = 1.0
			reasons = append(reasons, Reason{
				Title:  "Open-Top Fun",
				Detail: "Convertible roof for sunny-day driving",
				Impact: ImpactMedium,
			})
		} else {
			score = 0.8
		}
	default:
		score = 0.8
	}

	return clamp01(score), reasons
}
