package api

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rental-recommender/backend/internal/recommend"
	"rental-recommender/backend/internal/trip"
)

const (
	scoreBatchSize   = 200
	progressInterval = 100 * time.Millisecond
)

// scoreJob tracks one asynchronous catalog scoring run.
type scoreJob struct {
	id        string
	cancel    context.CancelFunc
	startedAt time.Time
	total     int
}

// startScoreJob launches an asynchronous scoring run over the stored catalog.
// The caller must hold s.jobMu.
func (s *Server) startScoreJob(ctx trip.Context, profile *recommend.UserProfile, topN int) (*scoreJob, error) {
	if s.activeJob != nil {
		return nil, errors.New("scoring run already active")
	}

	records, err := s.db.ListVehicles(0)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	job := &scoreJob{
		id:        uuid.NewString(),
		cancel:    cancel,
		startedAt: time.Now().UTC(),
		total:     len(records),
	}
	s.activeJob = job

	deals := make([]recommend.Deal, 0, len(records))
	for _, rec := range records {
		deals = append(deals, rec.Deal())
	}

	go s.runScoreJob(runCtx, job, deals, ctx, profile, topN)
	return job, nil
}

// cancelScoreJob aborts the active run if present. Caller holds s.jobMu.
func (s *Server) cancelScoreJob() bool {
	if s.activeJob == nil {
		return false
	}
	s.activeJob.cancel()
	return true
}

func (s *Server) runScoreJob(runCtx context.Context, job *scoreJob, deals []recommend.Deal, tripCtx trip.Context, profile *recommend.UserProfile, topN int) {
	defer func() {
		s.jobMu.Lock()
		s.activeJob = nil
		s.jobMu.Unlock()
	}()

	s.notifier.Broadcast(ScoreEvent{Type: "started", JobID: job.id, Total: job.total})
	logrus.WithFields(logrus.Fields{
		"job":   job.id,
		"deals": job.total,
	}).Info("catalog scoring run started")

	var scored []recommend.ScoredDeal
	for start := 0; start < len(deals); start += scoreBatchSize {
		select {
		case <-runCtx.Done():
			s.notifier.Broadcast(ScoreEvent{
				Type:    "cancelled",
				JobID:   job.id,
				Total:   job.total,
				Message: "scoring run cancelled",
			})
			logrus.WithField("job", job.id).Warn("catalog scoring run cancelled")
			return
		default:
		}

		end := start + scoreBatchSize
		if end > len(deals) {
			end = len(deals)
		}
		for _, deal := range deals[start:end] {
			score, reasons := recommend.ScoreDeal(deal, tripCtx, profile)
			scored = append(scored, recommend.ScoredDeal{Deal: deal, Score: score, Reasons: reasons})
		}

		s.notifier.Broadcast(ScoreEvent{
			Type:      "progress",
			JobID:     job.id,
			Total:     job.total,
			Processed: end,
		})
		time.Sleep(progressInterval)
	}

	ranked := recommend.RankDeals(scored)
	if topN <= 0 {
		topN = 5
	}
	if topN < len(ranked) {
		ranked = ranked[:topN]
	}
	top := make([]ScoredDealDTO, 0, len(ranked))
	for _, sd := range ranked {
		top = append(top, scoredDealDTO(sd))
	}

	s.notifier.Broadcast(ScoreEvent{
		Type:      "completed",
		JobID:     job.id,
		Total:     job.total,
		Processed: job.total,
		Top:       top,
		Message:   recommend.RecommendationMessage(ranked, tripCtx.Purpose),
	})
	logrus.WithFields(logrus.Fields{
		"job":      job.id,
		"deals":    job.total,
		"duration": time.Since(job.startedAt),
	}).Info("catalog scoring run completed")
}
