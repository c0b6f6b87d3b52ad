package fleet

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// minRepeat is how often a brand/type/fuel must recur in a user's history
// before it counts as a preference.
const minRepeat = 2

// BuildProfiles aggregates booking history into per-user preference records.
// It is a pure function over the booking slice so the aggregation rules can
// be tested without a database.
func BuildProfiles(bookings []Booking) []ProfileRecord {
	byUser := make(map[string][]Booking)
	var order []string
	for _, b := range bookings {
		user := strings.TrimSpace(b.UserID)
		if user == "" {
			continue
		}
		if _, seen := byUser[user]; !seen {
			order = append(order, user)
		}
		byUser[user] = append(byUser[user], b)
	}

	out := make([]ProfileRecord, 0, len(order))
	for _, user := range order {
		out = append(out, buildProfile(user, byUser[user]))
	}
	return out
}

func buildProfile(userID string, history []Booking) ProfileRecord {
	rec := ProfileRecord{UserID: userID, UpdatedAt: time.Now().UTC()}

	brands := newFrequency()
	types := newFrequency()
	fuels := newFrequency()
	transmissions := newFrequency()
	purposes := newFrequency()

	var travelerSum, travelerCount int
	for _, b := range history {
		brands.add(b.Brand)
		types.add(b.GroupType)
		fuels.add(b.FuelType)
		transmissions.add(b.Transmission)
		purposes.add(b.Purpose)

		if b.Travelers > 0 {
			travelerSum += b.Travelers
			travelerCount++
		}
		if b.TotalAmount > 0 {
			if rec.BudgetMin == 0 || b.TotalAmount < rec.BudgetMin {
				rec.BudgetMin = b.TotalAmount
			}
			if b.TotalAmount > rec.BudgetMax {
				rec.BudgetMax = b.TotalAmount
			}
			if rec.Currency == "" {
				rec.Currency = b.Currency
			}
		}
	}

	rec.SetBrands(brands.repeated(minRepeat))
	rec.SetVehicleTypes(types.repeated(minRepeat))
	rec.SetFuelTypes(fuels.repeated(minRepeat))
	rec.SetPurposes(purposes.repeated(1))
	rec.PreferredTransmission = transmissions.top()
	if travelerCount > 0 {
		rec.TypicalTravelers = int(math.Round(float64(travelerSum) / float64(travelerCount)))
	}
	return rec
}

// frequency counts case-insensitive string occurrences while remembering the
// original casing and first-seen order.
type frequency struct {
	counts    map[string]int
	display   map[string]string
	firstSeen []string
}

func newFrequency() *frequency {
	return &frequency{counts: make(map[string]int), display: make(map[string]string)}
}

func (f *frequency) add(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	key := strings.ToLower(value)
	if _, seen := f.counts[key]; !seen {
		f.firstSeen = append(f.firstSeen, key)
		f.display[key] = value
	}
	f.counts[key]++
}

// repeated returns values seen at least min times, most frequent first.
// Ties keep first-seen order.
func (f *frequency) repeated(min int) []string {
	keys := make([]string, len(f.firstSeen))
	copy(keys, f.firstSeen)
	sort.SliceStable(keys, func(i, j int) bool {
		return f.counts[keys[i]] > f.counts[keys[j]]
	})
	var out []string
	for _, key := range keys {
		if f.counts[key] >= min {
			out = append(out, f.display[key])
		}
	}
	return out
}

// top returns the single most frequent value, or empty.
func (f *frequency) top() string {
	if values := f.repeated(1); len(values) > 0 {
		return values[0]
	}
	return ""
}

// ReplaceProfiles atomically swaps the profile table with the provided slice.
func (d *Database) ReplaceProfiles(profiles []ProfileRecord) error {
	if d == nil {
		return errors.New("database is nil")
	}
	return d.gorm.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ProfileRecord{}).Error; err != nil {
			return err
		}
		if len(profiles) == 0 {
			return nil
		}
		// Batch insert to avoid SQLite variable limit (999)
		const batchSize = 50
		return tx.CreateInBatches(profiles, batchSize).Error
	})
}
