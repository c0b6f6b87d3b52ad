package recommend

// CapacityScore rates passenger and luggage fit against the party size.
// The result is the average of the two fit scores.
func CapacityScore(v Vehicle, passengers, luggage int) (float64, []Reason) {
	var reasons []Reason

	passengerFit := passengerFitScore(v, passengers, &reasons)
	luggageFit := luggageFitScore(v, luggage, &reasons)

	return clamp01((passengerFit + luggageFit) / 2), reasons
}

func passengerFitScore(v Vehicle, needed int, reasons *[]Reason) float64 {
	if needed < 1 {
		needed = 1
	}
	switch {
	case v.PassengersCount >= needed+2:
		*reasons = append(*reasons, Reason{
			Title:  "Spacious",
			Detail: "Seats everyone with room to spare",
			Impact: ImpactHigh,
		})
		return 1.0
	case v.PassengersCount >= needed:
		return 0.9
	case v.PassengersCount >= needed-1:
		return 0.6
	default:
		return 0.2
	}
}

func luggageFitScore(v Vehicle, needed int, reasons *[]Reason) float64 {
	if needed <= 0 {
		return 1.0
	}
	switch {
	case v.BagsCount >= needed*2:
		*reasons = append(*reasons, Reason{
			Title:  "Generous Boot",
			Detail: "Twice the luggage space you need",
			Impact: ImpactMedium,
		})
		return 1.0
	case v.BagsCount >= needed:
		return 0.9
	case v.BagsCount >= needed-1:
		return 0.6
	default:
		return 0.3
	}
}
