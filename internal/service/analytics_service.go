package service

import (
	"context"
	"encoding/json"
	"time"

	"ai_tutor_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

const (
	dashboardCacheKey = "analytics:dashboard"
	dashboardCacheTTL = time.Minute
)

// DashboardStats aggregates platform-wide learning metrics.
type DashboardStats struct {
	TotalLearners         int64                   `json:"total_learners"`
	TotalPaths            int64                   `json:"total_paths"`
	TotalQuizzes          int64                   `json:"total_quizzes"`
	AverageCompletionRate float64                 `json:"average_completion_rate"`
	LearningStyles        []repository.StyleCount `json:"learning_styles_distribution"`
}

// AnalyticsService serves the dashboard, with a short-lived Redis snapshot
// so repeated loads do not rescan every path.
type AnalyticsService struct {
	profileRepo *repository.ProfileRepository
	pathRepo    *repository.PathRepository
	quizRepo    *repository.QuizRepository
	rdb         *redis.Client
}

func NewAnalyticsService(
	profileRepo *repository.ProfileRepository,
	pathRepo *repository.PathRepository,
	quizRepo *repository.QuizRepository,
	rdb *redis.Client,
) *AnalyticsService {
	return &AnalyticsService{
		profileRepo: profileRepo,
		pathRepo:    pathRepo,
		quizRepo:    quizRepo,
		rdb:         rdb,
	}
}

func (s *AnalyticsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var cached DashboardStats
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	stats := &DashboardStats{}
	var err error
	if stats.TotalLearners, err = s.profileRepo.Count(); err != nil {
		return nil, err
	}
	if stats.TotalQuizzes, err = s.quizRepo.CountSubmissions(); err != nil {
		return nil, err
	}

	paths, err := s.pathRepo.All()
	if err != nil {
		return nil, err
	}
	stats.TotalPaths = int64(len(paths))

	var rateSum float64
	var rated int
	for _, p := range paths {
		if len(p.Resources) == 0 {
			continue
		}
		rateSum += float64(p.CurrentPosition) / float64(len(p.Resources)) * 100
		rated++
	}
	if rated > 0 {
		stats.AverageCompletionRate = rateSum / float64(rated)
	}

	if stats.LearningStyles, err = s.profileRepo.StyleDistribution(); err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(stats); err == nil {
			s.rdb.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL)
		}
	}
	return stats, nil
}
