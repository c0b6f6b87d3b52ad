// Command profilegen rebuilds the aggregated per-user preference profiles
// from stored booking history. It can optionally ingest a bookings JSON dump
// first, and write the resulting profiles to a JSON file for inspection.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"rental-recommender/backend/internal/fleet"
)

func main() {
	var (
		dbPath       = flag.String("db", filepath.FromSlash("data/rental-recommender.db"), "Path to SQLite database")
		bookingsPath = flag.String("bookings", "", "Optional bookings JSON file to ingest before aggregating")
		outputPath   = flag.String("output", "", "Optional path to write the aggregated profiles as JSON")
	)
	flag.Parse()

	db, err := fleet.Open(*dbPath, true)
	if err != nil {
		logrus.Fatalf("open database: %v", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logrus.WithError(cerr).Warn("close database")
		}
	}()

	if *bookingsPath != "" {
		ingested, err := ingestBookings(db, *bookingsPath)
		if err != nil {
			logrus.Fatalf("ingest bookings: %v", err)
		}
		logrus.WithFields(logrus.Fields{
			"file":     *bookingsPath,
			"bookings": ingested,
		}).Info("ingested booking history")
	}

	bookings, err := db.ListBookings()
	if err != nil {
		logrus.Fatalf("list bookings: %v", err)
	}

	profiles := fleet.BuildProfiles(bookings)
	if err := db.ReplaceProfiles(profiles); err != nil {
		logrus.Fatalf("replace profiles: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"bookings": len(bookings),
		"profiles": len(profiles),
	}).Info("profiles rebuilt")

	if *outputPath != "" {
		payload, err := json.MarshalIndent(profiles, "", "  ")
		if err != nil {
			logrus.Fatalf("marshal profiles: %v", err)
		}
		if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
			logrus.Fatalf("write output: %v", err)
		}
		logrus.WithField("file", *outputPath).Info("wrote profile dump")
	}
}

func ingestBookings(db *fleet.Database, path string) (int, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return 0, err
	}
	var bookings []fleet.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return 0, err
	}
	count := 0
	for i := range bookings {
		bookings[i].ID = 0
		if err := db.SaveBooking(&bookings[i]); err != nil {
			logrus.WithError(err).WithField("user", bookings[i].UserID).Warn("save booking")
			continue
		}
		count++
	}
	return count, nil
}
