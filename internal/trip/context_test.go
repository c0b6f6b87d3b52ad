package trip

import "testing"

func TestParseTerrain(t *testing.T) {
	tests := []struct {
		input    string
		expected Terrain
	}{
		{"Mountain roads", TerrainMountain},
		{"alpine pass", TerrainMountain},
		{"CITY", TerrainCity},
		{"urban driving", TerrainCity},
		{"mostly highway", TerrainHighway},
		{"a bit of everything", TerrainMixed},
		{"", TerrainMixed},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseTerrain(tc.input); got != tc.expected {
				t.Fatalf("expected %s got %s", tc.expected, got)
			}
		})
	}
}

func TestParseWeather(t *testing.T) {
	tests := []struct {
		input    string
		expected Weather
	}{
		{"Snow expected", WeatherSnowy},
		{"winter conditions", WeatherSnowy},
		{"heavy rain", WeatherRainy},
		{"sunny all week", WeatherSunny},
		{"who knows", WeatherMixed},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseWeather(tc.input); got != tc.expected {
				t.Fatalf("expected %s got %s", tc.expected, got)
			}
		})
	}
}

func TestParsePurpose(t *testing.T) {
	tests := []struct {
		input    string
		expected Purpose
	}{
		{"business meeting", PurposeBusiness},
		{"family visit", PurposeFamily},
		{"hiking and camping", PurposeAdventure},
		{"summer holiday", PurposeVacation},
		{"", PurposeUnknown},
		{"just driving", PurposeUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParsePurpose(tc.input); got != tc.expected {
				t.Fatalf("expected %s got %s", tc.expected, got)
			}
		})
	}
}

func TestContextNormalize(t *testing.T) {
	ctx := Context{}.Normalize()
	if ctx.Passengers != 1 {
		t.Fatalf("expected default passenger count 1, got %d", ctx.Passengers)
	}
	if ctx.DurationDays != 1 {
		t.Fatalf("expected default duration 1, got %d", ctx.DurationDays)
	}
	if ctx.Terrain != TerrainMixed || ctx.Weather != WeatherMixed || ctx.Purpose != PurposeUnknown {
		t.Fatalf("expected neutral enum defaults, got %+v", ctx)
	}

	ctx = Context{Passengers: 4, Luggage: -2, DurationDays: 7, Terrain: TerrainCity, Weather: WeatherSunny, Purpose: PurposeFamily}.Normalize()
	if ctx.Passengers != 4 || ctx.Luggage != 0 || ctx.DurationDays != 7 {
		t.Fatalf("normalize altered valid fields: %+v", ctx)
	}
	if ctx.Terrain != TerrainCity {
		t.Fatalf("normalize altered terrain: %s", ctx.Terrain)
	}
}
