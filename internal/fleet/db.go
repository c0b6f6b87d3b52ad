package fleet

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Database wraps the GORM DB handle and exposes repository helpers.
type Database struct {
	gorm *gorm.DB
	mu   sync.Mutex
}

// Open initializes the SQLite-backed database at the provided path.
func Open(path string, silent bool) (*Database, error) {
	cfg := &gorm.Config{}
	if silent {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&VehicleRecord{}, &Booking{}, &ProfileRecord{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		logrus.WithError(err).Warn("enable WAL mode")
	}
	if err := db.Exec("PRAGMA synchronous=NORMAL").Error; err != nil {
		logrus.WithError(err).Warn("set synchronous pragma")
	}
	return &Database{gorm: db}, nil
}

// GORM exposes the raw gorm.DB handle.
func (d *Database) GORM() *gorm.DB {
	return d.gorm
}

// Close closes the underlying database connection.
func (d *Database) Close() error {
	if d == nil {
		return nil
	}
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// UpsertVehicle inserts or updates a catalog record keyed by offer id.
func (d *Database) UpsertVehicle(rec *VehicleRecord) error {
	if rec == nil {
		return errors.New("vehicle record is nil")
	}
	rec.ID = strings.TrimSpace(rec.ID)
	if rec.ID == "" {
		return errors.New("vehicle id required")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gorm.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"brand", "model", "group_type", "passengers_count", "bags_count",
			"transmission", "fuel_type", "tyre_type", "attributes_json",
			"is_new_car", "is_recommended", "is_more_luxury", "is_exciting_discount",
			"daily_rate", "total_amount", "currency", "discount_percentage",
			"deal_info", "tags_json", "upsell_json", "updated_at",
		}),
	}).Create(rec).Error
}

// ListVehicles returns catalog records, newest first, with an optional limit.
func (d *Database) ListVehicles(limit int) ([]VehicleRecord, error) {
	if d == nil {
		return nil, errors.New("database is nil")
	}
	query := d.gorm.Model(&VehicleRecord{}).Order("updated_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []VehicleRecord
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return rows, nil
}

// CountVehicles returns the catalog size.
func (d *Database) CountVehicles() (int64, error) {
	if d == nil {
		return 0, errors.New("database is nil")
	}
	var count int64
	if err := d.gorm.Model(&VehicleRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SaveBooking appends a historical rental row.
func (d *Database) SaveBooking(b *Booking) error {
	if b == nil {
		return errors.New("booking is nil")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gorm.Create(b).Error
}

// ListBookings returns all bookings ordered by user then recency.
func (d *Database) ListBookings() ([]Booking, error) {
	if d == nil {
		return nil, errors.New("database is nil")
	}
	var rows []Booking
	if err := d.gorm.Model(&Booking{}).Order("user_id, created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return rows, nil
}

// GetProfile loads the aggregated profile for a user, nil when absent.
func (d *Database) GetProfile(userID string) (*ProfileRecord, error) {
	if d == nil {
		return nil, errors.New("database is nil")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}
	var rec ProfileRecord
	err := d.gorm.First(&rec, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &rec, nil
}
