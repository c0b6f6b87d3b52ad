package trip

import "strings"

// Terrain classifies the dominant road conditions for a trip.
type Terrain string

const (
	TerrainCity     Terrain = "CITY"
	TerrainHighway  Terrain = "HIGHWAY"
	TerrainMountain Terrain = "MOUNTAIN"
	TerrainMixed    Terrain = "MIXED"
)

// Weather classifies the expected weather for a trip.
type Weather string

const (
	WeatherSunny Weather = "SUNNY"
	WeatherRainy Weather = "RAINY"
	WeatherSnowy Weather = "SNOWY"
	WeatherMixed Weather = "MIXED"
)

// Purpose classifies why the renter is travelling.
type Purpose string

const (
	PurposeBusiness  Purpose = "BUSINESS"
	PurposeVacation  Purpose = "VACATION"
	PurposeFamily    Purpose = "FAMILY"
	PurposeAdventure Purpose = "ADVENTURE"
	PurposeUnknown   Purpose = "UNKNOWN"
)

// Context describes a single trip as supplied by the quiz flow or the chat
// context extractor. Zero values are valid; Normalize applies the documented
// defaults before scoring.
type Context struct {
	Terrain      Terrain
	Weather      Weather
	Purpose      Purpose
	Passengers   int
	Luggage      int
	DurationDays int
}

// Normalize returns a copy with defaults applied: at least one traveler,
// non-negative luggage, at least a one-day rental, and MIXED/UNKNOWN
// fallbacks for unset enum fields.
func (c Context) Normalize() Context {
	if c.Passengers < 1 {
		c.Passengers = 1
	}
	if c.Luggage < 0 {
		c.Luggage = 0
	}
	if c.DurationDays < 1 {
		c.DurationDays = 1
	}
	if c.Terrain == "" {
		c.Terrain = TerrainMixed
	}
	if c.Weather == "" {
		c.Weather = WeatherMixed
	}
	if c.Purpose == "" {
		c.Purpose = PurposeUnknown
	}
	return c
}

// ParseTerrain maps free-form quiz or chat text to a Terrain value.
// Unrecognized input falls back to MIXED.
func ParseTerrain(input string) Terrain {
	switch s := normalize(input); {
	case containsAny(s, "mountain", "hill", "offroad", "off-road", "alpine"):
		return TerrainMountain
	case containsAny(s, "city", "urban", "town"):
		return TerrainCity
	case containsAny(s, "highway", "motorway", "freeway"):
		return TerrainHighway
	default:
		return TerrainMixed
	}
}

// ParseWeather maps free-form text to a Weather value, falling back to MIXED.
func ParseWeather(input string) Weather {
	switch s := normalize(input); {
	case containsAny(s, "snow", "ice", "winter"):
		return WeatherSnowy
	case containsAny(s, "rain", "wet", "storm"):
		return WeatherRainy
	case containsAny(s, "sun", "clear", "dry"):
		return WeatherSunny
	default:
		return WeatherMixed
	}
}

// ParsePurpose maps free-form text to a Purpose value, falling back to UNKNOWN.
func ParsePurpose(input string) Purpose {
	switch s := normalize(input); {
	case containsAny(s, "business", "work", "meeting", "corporate"):
		return PurposeBusiness
	case containsAny(s, "family", "kids", "relatives"):
		return PurposeFamily
	case containsAny(s, "adventure", "outdoor", "camping", "hiking"):
		return PurposeAdventure
	case containsAny(s, "vacation", "holiday", "leisure", "beach"):
		return PurposeVacation
	default:
		return PurposeUnknown
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
