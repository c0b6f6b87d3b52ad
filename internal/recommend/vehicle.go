package recommend

// Attribute is one free-form (key, title, value) entry from the upstream
// offer feed. Drivetrain and body-style signals arrive here as loose text
// rather than structured fields.
type Attribute struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Value string `json:"value"`
}

// Vehicle is an immutable offer record as supplied by the catalog provider.
// The engine only reads it; scoring never mutates caller data.
type Vehicle struct {
	ID              string      `json:"id"`
	Brand           string      `json:"brand"`
	Model           string      `json:"model"`
	GroupType       string      `json:"group_type"`
	PassengersCount int         `json:"passengers_count"`
	BagsCount       int         `json:"bags_count"`
	Transmission    string      `json:"transmission"`
	FuelType        string      `json:"fuel_type"`
	TyreType        string      `json:"tyre_type"`
	Attributes      []Attribute `json:"attributes"`
	IsNewCar           bool    `json:"is_new_car"`
	IsRecommended      bool    `json:"is_recommended"`
	IsMoreLuxury       bool    `json:"is_more_luxury"`
	IsExcitingDiscount bool    `json:"is_exciting_discount"`
	DailyRate          float64 `json:"daily_rate"`
}

// Price is a monetary amount with its currency code.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Deal bundles a vehicle with pricing and promotional metadata.
type Deal struct {
	Vehicle            Vehicle  `json:"vehicle"`
	TotalPrice         Price    `json:"total_price"`
	DiscountPercentage float64  `json:"discount_percentage"`
	DealInfo           string   `json:"deal_info"`
	Tags               []string `json:"tags"`
	UpsellReasons      []string `json:"upsell_reasons"`
}

// BudgetRange is the user's historical spend window.
type BudgetRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// UserProfile carries aggregated, privacy-scoped preference signals. It is
// an optional scoring input; a nil profile produces baseline scores.
type UserProfile struct {
	PreferredBrands       []string    `json:"preferred_brands"`
	PreferredVehicleTypes []string    `json:"preferred_vehicle_types"`
	PreferredFuelTypes    []string    `json:"preferred_fuel_types"`
	PreferredTransmission string      `json:"preferred_transmission"`
	Budget                BudgetRange `json:"budget"`
	TypicalTravelers      int         `json:"typical_travelers"`
	CommonTripPurposes    []string    `json:"common_trip_purposes"`
}

// Recommendation is the vehicle-level scoring output.
type Recommendation struct {
	Vehicle      Vehicle  `json:"vehicle"`
	Score        float64  `json:"score"`
	MatchPercent int      `json:"match_percent"`
	Reasons      []Reason `json:"reasons"`
	Rank         int      `json:"rank"`
}

// ScoredDeal is the deal-level scoring output on the additive 0-100 scale.
type ScoredDeal struct {
	Deal    Deal     `json:"deal"`
	Score   float64  `json:"score"`
	Reasons []Reason `json:"reasons"`
	Rank    int      `json:"rank"`
}
