package recommend

import "strings"

// Capability is a structured view over the free-form attribute list. All
// substring matching against upstream text is confined to HasCapability so
// a structured attribute model can replace it without touching scorer logic.
type Capability int

const (
	// CapabilityAllWheelDrive matches 4WD/AWD drivetrain signals.
	CapabilityAllWheelDrive Capability = iota
	// CapabilityConvertible matches open-top body styles.
	CapabilityConvertible
	// CapabilityElectric matches battery-electric fuel types.
	CapabilityElectric
	// CapabilityWinterTires matches all-season or winter tyre fitment.
	CapabilityWinterTires
)

// HasCapability reports whether the vehicle exposes the given capability.
// Empty attribute lists simply return false.
func HasCapability(v Vehicle, cap Capability) bool {
	switch cap {
	case CapabilityAllWheelDrive:
		return attributeContains(v.Attributes, "4wd") ||
			attributeContains(v.Attributes, "awd") ||
			attributeKeyContains(v.Attributes, "drivetrain")
	case CapabilityConvertible:
		return attributeContains(v.Attributes, "convertible") ||
			strings.Contains(strings.ToLower(v.GroupType), "convertible")
	case CapabilityElectric:
		return strings.EqualFold(strings.TrimSpace(v.FuelType), "electric")
	case CapabilityWinterTires:
		tyre := strings.ToLower(v.TyreType)
		return strings.Contains(tyre, "all-season") ||
			strings.Contains(tyre, "all season") ||
			strings.Contains(tyre, "winter")
	default:
		return false
	}
}

func attributeContains(attrs []Attribute, needle string) bool {
	for _, attr := range attrs {
		if strings.Contains(strings.ToLower(attr.Value), needle) ||
			strings.Contains(strings.ToLower(attr.Key), needle) {
			return true
		}
	}
	return false
}

func attributeKeyContains(attrs []Attribute, needle string) bool {
	for _, attr := range attrs {
		if strings.Contains(strings.ToLower(attr.Key), needle) {
			return true
		}
	}
	return false
}

func isSUV(v Vehicle) bool {
	return strings.Contains(strings.ToLower(v.GroupType), "suv")
}

func isSedan(v Vehicle) bool {
	return strings.Contains(strings.ToLower(v.GroupType), "sedan")
}

func isCompact(v Vehicle) bool {
	return strings.Contains(strings.ToLower(v.GroupType), "compact")
}

func isAutomatic(v Vehicle) bool {
	return strings.Contains(strings.ToLower(v.Transmission), "automatic")
}

func isEfficientFuel(v Vehicle) bool {
	fuel := strings.ToLower(strings.TrimSpace(v.FuelType))
	return fuel == "electric" || fuel == "hybrid"
}

func hasAllSeasonTires(v Vehicle) bool {
	tyre := strings.ToLower(v.TyreType)
	return strings.Contains(tyre, "all-season") || strings.Contains(tyre, "all season")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
