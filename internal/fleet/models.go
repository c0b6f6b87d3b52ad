package fleet

import (
	"encoding/json"
	"strings"
	"time"

	"rental-recommender/backend/internal/recommend"
)

// VehicleRecord is a catalog offer persisted from the upstream booking API.
// Free-form lists are stored as JSON text columns.
type VehicleRecord struct {
	ID                 string `gorm:"primaryKey;size:64"`
	Brand              string `gorm:"size:128;index"`
	Model              string `gorm:"size:128"`
	GroupType          string `gorm:"size:64;index"`
	PassengersCount    int
	BagsCount          int
	Transmission       string `gorm:"size:32"`
	FuelType           string `gorm:"size:32;index"`
	TyreType           string `gorm:"size:64"`
	AttributesJSON     string `gorm:"type:text"`
	IsNewCar           bool
	IsRecommended      bool
	IsMoreLuxury       bool
	IsExcitingDiscount bool
	DailyRate          float64
	TotalAmount        float64
	Currency           string  `gorm:"size:8"`
	DiscountPercentage float64
	DealInfo           string `gorm:"size:512"`
	TagsJSON           string `gorm:"type:text"`
	UpsellJSON         string `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SetAttributes persists the attribute list as JSON.
func (r *VehicleRecord) SetAttributes(attrs []recommend.Attribute) {
	if attrs == nil {
		r.AttributesJSON = "[]"
		return
	}
	payload, _ := json.Marshal(attrs)
	r.AttributesJSON = string(payload)
}

// Attributes returns the unmarshalled attribute list.
func (r *VehicleRecord) Attributes() []recommend.Attribute {
	if strings.TrimSpace(r.AttributesJSON) == "" {
		return nil
	}
	var out []recommend.Attribute
	if err := json.Unmarshal([]byte(r.AttributesJSON), &out); err != nil {
		return nil
	}
	return out
}

// SetTags stores the promotional tag list as JSON.
func (r *VehicleRecord) SetTags(tags []string) {
	payload, _ := json.Marshal(tags)
	r.TagsJSON = string(payload)
}

// Tags reads the stored tag list.
func (r *VehicleRecord) Tags() []string {
	return decodeStringList(r.TagsJSON)
}

// SetUpsellReasons stores the upsell-reason list as JSON.
func (r *VehicleRecord) SetUpsellReasons(reasons []string) {
	payload, _ := json.Marshal(reasons)
	r.UpsellJSON = string(payload)
}

// UpsellReasons reads the stored upsell-reason list.
func (r *VehicleRecord) UpsellReasons() []string {
	return decodeStringList(r.UpsellJSON)
}

// Vehicle converts the record into the engine's vehicle type.
func (r *VehicleRecord) Vehicle() recommend.Vehicle {
	return recommend.Vehicle{
		ID:                 r.ID,
		Brand:              r.Brand,
		Model:              r.Model,
		GroupType:          r.GroupType,
		PassengersCount:    r.PassengersCount,
		BagsCount:          r.BagsCount,
		Transmission:       r.Transmission,
		FuelType:           r.FuelType,
		TyreType:           r.TyreType,
		Attributes:         r.Attributes(),
		IsNewCar:           r.IsNewCar,
		IsRecommended:      r.IsRecommended,
		IsMoreLuxury:       r.IsMoreLuxury,
		IsExcitingDiscount: r.IsExcitingDiscount,
		DailyRate:          r.DailyRate,
	}
}

// Deal converts the record into a priced engine deal.
func (r *VehicleRecord) Deal() recommend.Deal {
	return recommend.Deal{
		Vehicle:            r.Vehicle(),
		TotalPrice:         recommend.Price{Amount: r.TotalAmount, Currency: r.Currency},
		DiscountPercentage: r.DiscountPercentage,
		DealInfo:           r.DealInfo,
		Tags:               r.Tags(),
		UpsellReasons:      r.UpsellReasons(),
	}
}

// Booking is one historical rental used to learn user preferences.
type Booking struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       string `gorm:"size:64;index"`
	VehicleID    string `gorm:"size:64;index"`
	Brand        string `gorm:"size:128"`
	GroupType    string `gorm:"size:64"`
	FuelType     string `gorm:"size:32"`
	Transmission string `gorm:"size:32"`
	Travelers    int
	TotalAmount  float64
	Currency     string `gorm:"size:8"`
	Purpose      string `gorm:"size:32"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// ProfileRecord holds the aggregated preference signals for one user.
type ProfileRecord struct {
	UserID                string `gorm:"primaryKey;size:64"`
	BrandsJSON            string `gorm:"type:text"`
	VehicleTypesJSON      string `gorm:"type:text"`
	FuelTypesJSON         string `gorm:"type:text"`
	PurposesJSON          string `gorm:"type:text"`
	PreferredTransmission string `gorm:"size:32"`
	BudgetMin             float64
	BudgetMax             float64
	Currency              string `gorm:"size:8"`
	TypicalTravelers      int
	UpdatedAt             time.Time
}

// SetBrands stores the preferred brand list as JSON.
func (p *ProfileRecord) SetBrands(brands []string) {
	payload, _ := json.Marshal(brands)
	p.BrandsJSON = string(payload)
}

// SetVehicleTypes stores the preferred vehicle-type list as JSON.
func (p *ProfileRecord) SetVehicleTypes(types []string) {
	payload, _ := json.Marshal(types)
	p.VehicleTypesJSON = string(payload)
}

// SetFuelTypes stores the preferred fuel-type list as JSON.
func (p *ProfileRecord) SetFuelTypes(fuels []string) {
	payload, _ := json.Marshal(fuels)
	p.FuelTypesJSON = string(payload)
}

// SetPurposes stores the common trip purposes as JSON.
func (p *ProfileRecord) SetPurposes(purposes []string) {
	payload, _ := json.Marshal(purposes)
	p.PurposesJSON = string(payload)
}

// Profile converts the record into the engine's profile type.
func (p *ProfileRecord) Profile() *recommend.UserProfile {
	if p == nil {
		return nil
	}
	return &recommend.UserProfile{
		PreferredBrands:       decodeStringList(p.BrandsJSON),
		PreferredVehicleTypes: decodeStringList(p.VehicleTypesJSON),
		PreferredFuelTypes:    decodeStringList(p.FuelTypesJSON),
		PreferredTransmission: p.PreferredTransmission,
		Budget: recommend.BudgetRange{
			Min:      p.BudgetMin,
			Max:      p.BudgetMax,
			Currency: p.Currency,
		},
		TypicalTravelers:   p.TypicalTravelers,
		CommonTripPurposes: decodeStringList(p.PurposesJSON),
	}
}

func decodeStringList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}
