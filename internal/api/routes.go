package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"rental-recommender/backend/internal/fleet"
	"rental-recommender/backend/internal/recommend"
)

// Config defines server dependencies.
type Config struct {
	DBPath         string
	WeightsPath    string
	AllowedOrigins []string
	SilentDB       bool
}

// Server wires HTTP handlers with persistence and the scoring engine.
type Server struct {
	db             *fleet.Database
	recommender    *recommend.Recommender
	allowedOrigins []string
	notifier       *ScoreNotifier
	jobMu          sync.Mutex
	activeJob      *scoreJob
}

// NewServer constructs the API server.
func NewServer(cfg Config) (*Server, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("db path required")
	}
	db, err := fleet.Open(cfg.DBPath, cfg.SilentDB)
	if err != nil {
		return nil, err
	}

	weights, err := recommend.LoadWeights(cfg.WeightsPath)
	if err != nil {
		return nil, fmt.Errorf("load weights: %w", err)
	}
	recommender, err := recommend.NewRecommender(weights)
	if err != nil {
		return nil, err
	}

	return &Server{
		db:             db,
		recommender:    recommender,
		allowedOrigins: cfg.AllowedOrigins,
		notifier:       NewScoreNotifier(),
	}, nil
}

// Close releases server resources.
func (s *Server) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Router builds the gin engine with CORS and all routes attached.
func (s *Server) Router() (*gin.Engine, error) {
	router := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(s.allowedOrigins) > 0 {
		corsCfg.AllowOrigins = s.allowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsCfg))

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", s.handleHealth)
		apiGroup.POST("/vehicles", s.handleUpsertVehicles)
		apiGroup.GET("/vehicles", s.handleListVehicles)
		apiGroup.POST("/recommendations", s.handleRecommend)
		apiGroup.POST("/deals/score", s.handleScoreDeals)
		apiGroup.GET("/deals/top", s.handleTopDeals)
		apiGroup.POST("/score/run", s.handleStartScoreRun)
		apiGroup.POST("/score/cancel", s.handleCancelScoreRun)
		apiGroup.GET("/score/stream", s.handleScoreStream)
	}

	return router, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	count, err := s.db.CountVehicles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"vehicles": count,
		"weights":  s.recommender.Weights(),
	})
}

func (s *Server) handleUpsertVehicles(c *gin.Context) {
	var payload []VehicleDTO
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle payload: " + err.Error()})
		return
	}

	stored := 0
	for _, dto := range payload {
		if err := s.db.UpsertVehicle(dto.Record()); err != nil {
			logrus.WithError(err).WithField("vehicle", dto.ID).Warn("upsert vehicle")
			continue
		}
		stored++
	}

	logrus.WithFields(logrus.Fields{
		"received": len(payload),
		"stored":   stored,
	}).Info("catalog upsert")
	c.JSON(http.StatusOK, UpsertVehiclesResponse{Received: len(payload), Stored: stored})
}

func (s *Server) handleListVehicles(c *gin.Context) {
	limit := intQuery(c, "limit", 0)
	records, err := s.db.ListVehicles(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := s.db.CountVehicles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]VehicleDTO, 0, len(records))
	for _, rec := range records {
		items = append(items, vehicleDTO(rec))
	}
	c.JSON(http.StatusOK, VehiclesResponse{Items: items, Total: total})
}

func (s *Server) handleRecommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	records, err := s.db.ListVehicles(0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	profile, err := s.loadProfile(req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	vehicles := make([]recommend.Vehicle, 0, len(records))
	for _, rec := range records {
		vehicles = append(vehicles, rec.Vehicle())
	}

	start := time.Now()
	ranked := s.recommender.ScoreVehicles(vehicles, req.Context.Context(), profile)
	if req.Limit > 0 && req.Limit < len(ranked) {
		ranked = ranked[:req.Limit]
	}

	logrus.WithFields(logrus.Fields{
		"vehicles": len(vehicles),
		"returned": len(ranked),
		"user":     req.UserID,
		"duration": time.Since(start),
	}).Info("scored vehicle recommendations")

	items := make([]RecommendationDTO, 0, len(ranked))
	for _, rec := range ranked {
		items = append(items, recommendationDTO(rec))
	}
	c.JSON(http.StatusOK, RecommendResponse{Items: items, Total: len(items)})
}

func (s *Server) handleScoreDeals(c *gin.Context) {
	var req ScoreDealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	profile, err := s.loadProfile(req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	deals := make([]recommend.Deal, 0, len(req.Deals))
	for _, dto := range req.Deals {
		deals = append(deals, dto.Deal())
	}

	ctx := req.Context.Context()
	ranked := recommend.ScoreAndRankDeals(deals, ctx, profile)

	items := make([]ScoredDealDTO, 0, len(ranked))
	for _, sd := range ranked {
		items = append(items, scoredDealDTO(sd))
	}
	c.JSON(http.StatusOK, ScoredDealsResponse{
		Items:   items,
		Total:   len(items),
		Message: recommend.RecommendationMessage(ranked, ctx.Purpose),
	})
}

func (s *Server) handleTopDeals(c *gin.Context) {
	ctxDTO := TripContextDTO{
		Terrain:    c.Query("terrain"),
		Weather:    c.Query("weather"),
		Purpose:    c.Query("purpose"),
		Passengers: intQuery(c, "passengers", 1),
		Luggage:    intQuery(c, "luggage", 0),
	}
	n := intQuery(c, "n", 3)

	profile, err := s.loadProfile(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records, err := s.db.ListVehicles(0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	deals := make([]recommend.Deal, 0, len(records))
	for _, rec := range records {
		deals = append(deals, rec.Deal())
	}

	ctx := ctxDTO.Context()
	top := recommend.TopRecommendations(deals, ctx, profile, n)

	items := make([]ScoredDealDTO, 0, len(top))
	for _, sd := range top {
		items = append(items, scoredDealDTO(sd))
	}
	c.JSON(http.StatusOK, ScoredDealsResponse{
		Items:   items,
		Total:   len(items),
		Message: recommend.RecommendationMessage(top, ctx.Purpose),
	})
}

func (s *Server) handleStartScoreRun(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	profile, err := s.loadProfile(req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.jobMu.Lock()
	job, err := s.startScoreJob(req.Context.Context(), profile, req.Limit)
	s.jobMu.Unlock()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"job_id":     job.id,
		"total":      job.total,
		"started_at": job.startedAt,
	})
}

func (s *Server) handleCancelScoreRun(c *gin.Context) {
	s.jobMu.Lock()
	cancelled := s.cancelScoreJob()
	s.jobMu.Unlock()

	if !cancelled {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active scoring run"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelling"})
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (s *Server) handleScoreStream(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade")
		return
	}

	client := s.notifier.Register(conn)
	defer s.notifier.Unregister(client)

	// Drain reads until the peer goes away; broadcasts happen elsewhere.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) loadProfile(userID string) (*recommend.UserProfile, error) {
	if userID == "" {
		return nil, nil
	}
	rec, err := s.db.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return rec.Profile(), nil
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
