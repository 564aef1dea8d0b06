package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/observability"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

// DashboardService serves attendance aggregates, cached in Redis.
type DashboardService interface {
	AttendanceSummary(ctx context.Context, studentID, subjectID uint) (dto.AttendanceSummary, error)
}

type dashboardService struct {
	attendance repository.AttendanceRepository
	redis      *redis.Client
	ttl        time.Duration
	logger     zerolog.Logger
}

// NewDashboardService constructs a dashboard service. A nil Redis client
// disables caching.
func NewDashboardService(attendance repository.AttendanceRepository, redisClient *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &dashboardService{
		attendance: attendance,
		redis:      redisClient,
		ttl:        ttl,
		logger:     logger.With().Str("component", "dashboard_service").Logger(),
	}
}

func (s *dashboardService) AttendanceSummary(ctx context.Context, studentID, subjectID uint) (dto.AttendanceSummary, error) {
	key := fmt.Sprintf("dashboard:attendance:%d:%d", studentID, subjectID)

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, key).Result()
		if err == nil {
			var summary dto.AttendanceSummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				observability.DashboardCacheHits().Inc()
				return summary, nil
			}
		}
	}

	observability.DashboardCacheMisses().Inc()

	total, present, err := s.attendance.StudentSubjectCounts(ctx, studentID, subjectID)
	if err != nil {
		return dto.AttendanceSummary{}, err
	}

	summary := dto.AttendanceSummary{
		StudentID: studentID,
		SubjectID: subjectID,
		Total:     total,
		Present:   present,
	}
	if total > 0 {
		summary.Percentage = float64(present) / float64(total) * 100
	}

	if s.redis != nil {
		payload, err := json.Marshal(summary)
		if err == nil {
			if err := s.redis.Set(ctx, key, payload, s.ttl).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to cache attendance summary")
			}
		}
	}

	return summary, nil
}
