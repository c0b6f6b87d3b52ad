package api

import (
	"rental-recommender/backend/internal/fleet"
	"rental-recommender/backend/internal/recommend"
	"rental-recommender/backend/internal/trip"
)

// TripContextDTO is the caller-supplied trip description. Enum fields accept
// free-form text and are parsed with MIXED/UNKNOWN fallbacks.
type TripContextDTO struct {
	Terrain      string `json:"terrain"`
	Weather      string `json:"weather"`
	Purpose      string `json:"purpose"`
	Passengers   int    `json:"passengers"`
	Luggage      int    `json:"luggage"`
	DurationDays int    `json:"duration_days"`
}

// Context converts the DTO into a normalized engine context.
func (t TripContextDTO) Context() trip.Context {
	return trip.Context{
		Terrain:      trip.ParseTerrain(t.Terrain),
		Weather:      trip.ParseWeather(t.Weather),
		Purpose:      trip.ParsePurpose(t.Purpose),
		Passengers:   t.Passengers,
		Luggage:      t.Luggage,
		DurationDays: t.DurationDays,
	}.Normalize()
}

// VehicleDTO mirrors one catalog offer on the wire.
type VehicleDTO struct {
	ID                 string                `json:"id"`
	Brand              string                `json:"brand"`
	Model              string                `json:"model"`
	GroupType          string                `json:"group_type"`
	PassengersCount    int                   `json:"passengers_count"`
	BagsCount          int                   `json:"bags_count"`
	Transmission       string                `json:"transmission"`
	FuelType           string                `json:"fuel_type"`
	TyreType           string                `json:"tyre_type"`
	Attributes         []recommend.Attribute `json:"attributes"`
	IsNewCar           bool                  `json:"is_new_car"`
	IsRecommended      bool                  `json:"is_recommended"`
	IsMoreLuxury       bool                  `json:"is_more_luxury"`
	IsExcitingDiscount bool                  `json:"is_exciting_discount"`
	DailyRate          float64               `json:"daily_rate"`
	TotalAmount        float64               `json:"total_amount"`
	Currency           string                `json:"currency"`
	DiscountPercentage float64               `json:"discount_percentage"`
	DealInfo           string                `json:"deal_info"`
	Tags               []string              `json:"tags"`
	UpsellReasons      []string              `json:"upsell_reasons"`
}

// Record converts the DTO into a persistable catalog record.
func (v VehicleDTO) Record() *fleet.VehicleRecord {
	rec := &fleet.VehicleRecord{
		ID:                 v.ID,
		Brand:              v.Brand,
		Model:              v.Model,
		GroupType:          v.GroupType,
		PassengersCount:    v.PassengersCount,
		BagsCount:          v.BagsCount,
		Transmission:       v.Transmission,
		FuelType:           v.FuelType,
		TyreType:           v.TyreType,
		IsNewCar:           v.IsNewCar,
		IsRecommended:      v.IsRecommended,
		IsMoreLuxury:       v.IsMoreLuxury,
		IsExcitingDiscount: v.IsExcitingDiscount,
		DailyRate:          v.DailyRate,
		TotalAmount:        v.TotalAmount,
		Currency:           v.Currency,
		DiscountPercentage: v.DiscountPercentage,
		DealInfo:           v.DealInfo,
	}
	rec.SetAttributes(v.Attributes)
	rec.SetTags(v.Tags)
	rec.SetUpsellReasons(v.UpsellReasons)
	return rec
}

// Deal converts the DTO directly into an engine deal for inline scoring.
func (v VehicleDTO) Deal() recommend.Deal {
	return v.Record().Deal()
}

func vehicleDTO(rec fleet.VehicleRecord) VehicleDTO {
	return VehicleDTO{
		ID:                 rec.ID,
		Brand:              rec.Brand,
		Model:              rec.Model,
		GroupType:          rec.GroupType,
		PassengersCount:    rec.PassengersCount,
		BagsCount:          rec.BagsCount,
		Transmission:       rec.Transmission,
		FuelType:           rec.FuelType,
		TyreType:           rec.TyreType,
		Attributes:         rec.Attributes(),
		IsNewCar:           rec.IsNewCar,
		IsRecommended:      rec.IsRecommended,
		IsMoreLuxury:       rec.IsMoreLuxury,
		IsExcitingDiscount: rec.IsExcitingDiscount,
		DailyRate:          rec.DailyRate,
		TotalAmount:        rec.TotalAmount,
		Currency:           rec.Currency,
		DiscountPercentage: rec.DiscountPercentage,
		DealInfo:           rec.DealInfo,
		Tags:               rec.Tags(),
		UpsellReasons:      rec.UpsellReasons(),
	}
}

// UpsertVehiclesResponse reports catalog ingest counts.
type UpsertVehiclesResponse struct {
	Received int `json:"received"`
	Stored   int `json:"stored"`
}

// VehiclesResponse lists catalog records.
type VehiclesResponse struct {
	Items []VehicleDTO `json:"items"`
	Total int64        `json:"total"`
}

// RecommendRequest asks for ranked vehicle recommendations.
type RecommendRequest struct {
	Context TripContextDTO `json:"context"`
	UserID  string         `json:"user_id"`
	Limit   int            `json:"limit"`
}

// ReasonDTO carries one scoring justification.
type ReasonDTO struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Impact int    `json:"impact"`
}

// RecommendationDTO is one ranked vehicle result.
type RecommendationDTO struct {
	VehicleID    string      `json:"vehicle_id"`
	Brand        string      `json:"brand"`
	Model        string      `json:"model"`
	Score        float64     `json:"score"`
	MatchPercent int         `json:"match_percent"`
	Rank         int         `json:"rank"`
	Reasons      []ReasonDTO `json:"reasons"`
}

// RecommendResponse wraps ranked recommendations.
type RecommendResponse struct {
	Items []RecommendationDTO `json:"items"`
	Total int                 `json:"total"`
}

// ScoreDealsRequest scores caller-supplied offers without touching the catalog.
type ScoreDealsRequest struct {
	Context TripContextDTO `json:"context"`
	UserID  string         `json:"user_id"`
	Deals   []VehicleDTO   `json:"deals"`
}

// ScoredDealDTO is one ranked deal result.
type ScoredDealDTO struct {
	VehicleID string      `json:"vehicle_id"`
	Brand     string      `json:"brand"`
	Model     string      `json:"model"`
	Score     float64     `json:"score"`
	Rank      int         `json:"rank"`
	Reasons   []ReasonDTO `json:"reasons"`
}

// ScoredDealsResponse wraps ranked deals plus the templated summary line.
type ScoredDealsResponse struct {
	Items   []ScoredDealDTO `json:"items"`
	Total   int             `json:"total"`
	Message string          `json:"message"`
}

func reasonDTOs(reasons []recommend.Reason) []ReasonDTO {
	out := make([]ReasonDTO, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, ReasonDTO{Title: r.Title, Detail: r.Detail, Impact: r.Impact})
	}
	return out
}

func recommendationDTO(rec recommend.Recommendation) RecommendationDTO {
	return RecommendationDTO{
		VehicleID:    rec.Vehicle.ID,
		Brand:        rec.Vehicle.Brand,
		Model:        rec.Vehicle.Model,
		Score:        rec.Score,
		MatchPercent: rec.MatchPercent,
		Rank:         rec.Rank,
		Reasons:      reasonDTOs(rec.Reasons),
	}
}

func scoredDealDTO(sd recommend.ScoredDeal) ScoredDealDTO {
	return ScoredDealDTO{
		VehicleID: sd.Deal.Vehicle.ID,
		Brand:     sd.Deal.Vehicle.Brand,
		Model:     sd.Deal.Vehicle.Model,
		Score:     sd.Score,
		Rank:      sd.Rank,
		Reasons:   reasonDTOs(sd.Reasons),
	}
}
