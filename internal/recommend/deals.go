package recommend

import (
	"fmt"
	"sort"
	"strings"

	"rental-recommender/backend/internal/trip"
)

// Point budgets for each deal-scoring bucket. Buckets are clamped
// independently before summation and the total is clamped to [0,100].
const (
	priceBucketMax          = 30.0
	featureBucketMax        = 25.0
	contextBucketMax        = 20.0
	preferenceBucketMax     = 20.0
	qualityBucketMax        = 15.0
	attractivenessBucketMax = 10.0
)

// ScoreDeal scores a full offer against the trip context and optional user
// profile on the additive 0-100 scale. Reasons are returned ordered by
// descending impact.
func ScoreDeal(deal Deal, ctx trip.Context, profile *UserProfile) (float64, []Reason) {
	ctx = ctx.Normalize()

	var reasons []Reason
	total := 0.0

	pts, rs := priceBucket(deal)
	total += pts
	reasons = append(reasons, rs...)

	pts, rs = featureBucket(deal.Vehicle, ctx.Passengers)
	total += pts
	reasons = append(reasons, rs...)

	pts, rs = contextBucket(deal, ctx.Purpose)
	total += pts
	reasons = append(reasons, rs...)

	pts, rs = preferenceBucket(deal, profile)
	total += pts
	reasons = append(reasons, rs...)

	pts, rs = qualityBucket(deal.Vehicle)
	total += pts
	reasons = append(reasons, rs...)

	pts, rs = attractivenessBucket(deal)
	total += pts
	reasons = append(reasons, rs...)

	return clampRange(total, 0, 100), sortReasons(reasons)
}

// ScoreAndRankDeals scores every deal, sorts descending by score, and assigns
// dense 1-based ranks. Ties keep input order; empty input yields an empty slice.
func ScoreAndRankDeals(deals []Deal, ctx trip.Context, profile *UserProfile) []ScoredDeal {
	if len(deals) == 0 {
		return []ScoredDeal{}
	}
	out := make([]ScoredDeal, 0, len(deals))
	for _, deal := range deals {
		score, reasons := ScoreDeal(deal, ctx, profile)
		out = append(out, ScoredDeal{Deal: deal, Score: score, Reasons: reasons})
	}
	return RankDeals(out)
}

// RankDeals stable-sorts already-scored deals descending by score and
// assigns dense 1-based ranks.
func RankDeals(scored []ScoredDeal) []ScoredDeal {
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

// TopRecommendations returns the n best deals for the context.
func TopRecommendations(deals []Deal, ctx trip.Context, profile *UserProfile, n int) []ScoredDeal {
	ranked := ScoreAndRankDeals(deals, ctx, profile)
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// priceBucket awards up to 30 points: a discount-proportional share of 15
// plus a total-price tier.
func priceBucket(deal Deal) (float64, []Reason) {
	var reasons []Reason

	discount := clampRange(deal.DiscountPercentage, 0, 100)
	pts := discount / 100 * 15

	amount := deal.TotalPrice.Amount
	switch {
	case amount < 50:
		pts += 15
	case amount < 100:
		pts += 12
	case amount < 150:
		pts += 8
	case amount < 200:
		pts += 5
	default:
		pts += 2
	}

	if discount > 0 {
		impact := ImpactHigh
		if discount >= 20 {
			impact = ImpactTop
		}
		reasons = append(reasons, Reason{
			Title:  fmt.Sprintf("%.0f%% Discount", discount),
			Detail: "Current promotion lowers the total price",
			Impact: impact,
		})
	}
	if amount < 100 {
		reasons = append(reasons, Reason{
			Title:  "Great Value",
			Detail: "Total cost stays under 100 for the whole rental",
			Impact: ImpactHigh,
		})
	}

	return clampRange(pts, 0, priceBucketMax), reasons
}

// featureBucket awards up to 25 points for capacity and fuel fit. The bag
// requirement derives from the traveler count with a floor of two bags.
func featureBucket(v Vehicle, travelers int) (float64, []Reason) {
	var reasons []Reason
	if travelers < 1 {
		travelers = 1
	}

	pts := 0.0
	switch {
	case v.PassengersCount >= travelers+2:
		pts += 10
		reasons = append(reasons, Reason{
			Title:  "Room for Everyone",
			Detail: "Seats well beyond your group size",
			Impact: ImpactHigh,
		})
	case v.PassengersCount >= travelers:
		pts += 8
	case v.PassengersCount >= travelers-1:
		pts += 5
	}

	bagNeed := travelers + 1
	if bagNeed < 2 {
		bagNeed = 2
	}
	switch {
	case v.BagsCount >= bagNeed*2:
		pts += 8
	case v.BagsCount >= bagNeed:
		pts += 6
	case v.BagsCount >= bagNeed-1:
		pts += 4
	default:
		pts += 2
	}

	fuel := strings.ToLower(strings.TrimSpace(v.FuelType))
	switch fuel {
	case "electric", "hybrid":
		pts += 7
		reasons = append(reasons, Reason{
			Title:  "Efficient Choice",
			Detail: "Low running costs thanks to " + fuel + " power",
			Impact: ImpactMedium,
		})
	case "diesel":
		pts += 5
	case "petrol", "gasoline":
		pts += 3
	default:
		pts += 2
	}

	return clampRange(pts, 0, featureBucketMax), reasons
}

// contextBucket awards up to 20 points: a purpose tier (max 12) plus an
// 8-point all-terrain bonus. The bonus intentionally inspects the tyre-type
// string and upsell-reason text for drivetrain hints, mirroring how the
// upstream feed smuggles drivetrain data into those fields.
func contextBucket(deal Deal, purpose trip.Purpose) (float64, []Reason) {
	var reasons []Reason
	v := deal.Vehicle

	pts := 0.0
	switch purpose {
	case trip.PurposeFamily:
		switch {
		case v.PassengersCount >= 5:
			pts = 12
			reasons = append(reasons, Reason{
				Title:  "Fits the Family",
				Detail: "Five or more seats for a family trip",
				Impact: ImpactMedium,
			})
		case v.PassengersCount >= 4:
			pts = 8
		default:
			pts = 4
		}
	case trip.PurposeBusiness:
		switch {
		case v.IsMoreLuxury || isSedan(v):
			pts = 12
			reasons = append(reasons, Reason{
				Title:  "Professional Look",
				Detail: "Sedan or luxury trim suited to business travel",
				Impact: ImpactMedium,
			})
		case isAutomatic(v):
			pts = 8
		default:
			pts = 4
		}
	case trip.PurposeVacation:
		switch {
		case v.PassengersCount >= 4 || isSUV(v):
			pts = 12
		case v.IsExcitingDiscount:
			pts = 8
		default:
			pts = 5
		}
	default:
		pts = 6
	}

	if hasAllTerrainHint(deal) {
		pts += 8
		reasons = append(reasons, Reason{
			Title:  "All-Terrain Capable",
			Detail: "Four-wheel drive noted on this offer",
			Impact: ImpactMedium,
		})
	}

	return clampRange(pts, 0, contextBucketMax), reasons
}

func hasAllTerrainHint(deal Deal) bool {
	tyre := strings.ToLower(deal.Vehicle.TyreType)
	if strings.Contains(tyre, "4wd") || strings.Contains(tyre, "awd") {
		return true
	}
	for _, upsell := range deal.UpsellReasons {
		lowered := strings.ToLower(upsell)
		if strings.Contains(lowered, "4wd") || strings.Contains(lowered, "awd") {
			return true
		}
	}
	return false
}

// preferenceBucket awards up to 20 points against the user's historical
// profile. A nil profile contributes nothing.
func preferenceBucket(deal Deal, profile *UserProfile) (float64, []Reason) {
	if profile == nil {
		return 0, nil
	}

	var reasons []Reason
	v := deal.Vehicle
	pts := 0.0

	if containsFold(profile.PreferredBrands, v.Brand) {
		pts += 7
		reasons = append(reasons, Reason{
			Title:  "Matches Your Favorite Brand",
			Detail: v.Brand + " shows up often in your bookings",
			Impact: ImpactHigh,
		})
	}
	if containsFold(profile.PreferredVehicleTypes, v.GroupType) {
		pts += 6
		reasons = append(reasons, Reason{
			Title:  "Your Kind of Car",
			Detail: "You usually rent a " + strings.ToLower(v.GroupType),
			Impact: ImpactMedium,
		})
	}
	if containsFold(profile.PreferredFuelTypes, v.FuelType) {
		pts += 4
		reasons = append(reasons, Reason{
			Title:  "Preferred Fuel",
			Detail: "Runs on the fuel type you tend to choose",
			Impact: ImpactMedium,
		})
	}
	if profile.Budget.Max > 0 &&
		deal.TotalPrice.Amount >= profile.Budget.Min &&
		deal.TotalPrice.Amount <= profile.Budget.Max {
		pts += 3
		reasons = append(reasons, Reason{
			Title:  "Within Your Budget",
			Detail: "Total price sits inside your usual spend range",
			Impact: ImpactModerate,
		})
	}

	return clampRange(pts, 0, preferenceBucketMax), reasons
}

// qualityBucket awards up to 15 points for the catalog quality flags.
func qualityBucket(v Vehicle) (float64, []Reason) {
	var reasons []Reason
	pts := 0.0

	if v.IsNewCar {
		pts += 5
		reasons = append(reasons, Reason{
			Title:  "Brand New",
			Detail: "Recently added to the fleet",
			Impact: ImpactMedium,
		})
	}
	if v.IsRecommended {
		pts += 5
		reasons = append(reasons, Reason{
			Title:  "Highly Recommended",
			Detail: "Frequently chosen and well rated by other renters",
			Impact: ImpactMedium,
		})
	}
	if v.IsMoreLuxury {
		pts += 5
		reasons = append(reasons, Reason{
			Title:  "Premium Comfort",
			Detail: "Upgraded interior and ride quality",
			Impact: ImpactMedium,
		})
	}

	return clampRange(pts, 0, qualityBucketMax), reasons
}

// attractivenessBucket awards up to 10 points for promotional signals.
func attractivenessBucket(deal Deal) (float64, []Reason) {
	var reasons []Reason
	pts := 0.0

	if deal.Vehicle.IsExcitingDiscount {
		pts += 5
		reasons = append(reasons, Reason{
			Title:  "Hot Deal",
			Detail: "Flagged as an exceptional discount",
			Impact: ImpactHigh,
		})
	}
	if strings.TrimSpace(deal.DealInfo) != "" {
		pts += 2
	}
	if len(deal.Tags) > 0 {
		pts += 1
		shown := deal.Tags
		if len(shown) > 2 {
			shown = shown[:2]
		}
		reasons = append(reasons, Reason{
			Title:  "Tagged: " + strings.Join(shown, ", "),
			Detail: "Offer carries promotional tags",
			Impact: ImpactModerate,
		})
	}
	if len(deal.UpsellReasons) > 0 {
		pts += 2
	}

	return clampRange(pts, 0, attractivenessBucketMax), reasons
}
