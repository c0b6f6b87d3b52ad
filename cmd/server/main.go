package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"rental-recommender/backend/internal/api"
)

func main() {
	baseDir, err := os.Getwd()
	if err != nil {
		logrus.Fatalf("determine working directory: %v", err)
	}

	dataDir := filepath.Join(baseDir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		logrus.Fatalf("create data directory: %v", err)
	}

	cfg := api.Config{
		DBPath:      filepath.Join(dataDir, "rental-recommender.db"),
		WeightsPath: strings.TrimSpace(os.Getenv("WEIGHTS_PATH")),
	}

	if override := strings.TrimSpace(os.Getenv("RENTAL_DB_PATH")); override != "" {
		cfg.DBPath = override
	}
	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	router, err := server.Router()
	if err != nil {
		logrus.Fatalf("configure router: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("starting rental-recommender backend on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
