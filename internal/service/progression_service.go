// Package service contains the business logic of the application.
package service

import (
	"context"
	"fmt"

	"creel/internal/cache"
	"creel/internal/middleware"
	"creel/internal/models"
	"creel/internal/observability"
	"creel/internal/repository"
)

// ScoreEvent names an engagement action that awards experience.
type ScoreEvent string

const (
	ScoreEventPostCreated    ScoreEvent = "post_created"
	ScoreEventCommentCreated ScoreEvent = "comment_created"
	ScoreEventReplyCreated   ScoreEvent = "reply_created"
)

// scoreWeights maps each event to the experience it awards. Replies carry
// no weight and are skipped before touching storage.
var scoreWeights = map[ScoreEvent]int{
	ScoreEventPostCreated:    100,
	ScoreEventCommentCreated: 50,
	ScoreEventReplyCreated:   0,
}

// ProgressionService maintains per-user experience and level.
type ProgressionService struct {
	profileRepo repository.ProfileRepository
}

// NewProgressionService creates a new progression service.
func NewProgressionService(profileRepo repository.ProfileRepository) *ProgressionService {
	return &ProgressionService{profileRepo: profileRepo}
}

// ApplyScoreEvent awards the event's experience to the user's profile and
// recomputes the level. The increment happens in one SQL statement so
// concurrent awards for the same user all land.
func (s *ProgressionService) ApplyScoreEvent(ctx context.Context, userID uint, event ScoreEvent) error {
	weight, ok := scoreWeights[event]
	if !ok {
		return models.NewValidationError(fmt.Sprintf("unknown score event: %s", event))
	}
	if weight == 0 {
		return nil
	}

	rows, err := s.profileRepo.AddExperience(ctx, userID, weight)
	if err != nil {
		return models.NewInternalError(err)
	}
	if rows == 0 {
		return models.NewNotFoundError("PROFILE_NOT_FOUND")
	}

	observability.ScoreEvents.WithLabelValues(string(event)).Inc()
	middleware.Logger.DebugContext(ctx, "score event applied",
		"user_id", userID,
		"event", string(event),
		"experience", weight,
	)
	return nil
}

// GetProfile returns the user's progression readout, cache-aside through
// Redis. Score events invalidate the entry so a fresh total is served
// right after a post or comment lands.
func (s *ProgressionService) GetProfile(ctx context.Context, userID uint) (*models.ProfileDetail, error) {
	if userID == 0 {
		return nil, models.NewValidationError("userId is required")
	}

	var detail models.ProfileDetail
	err := cache.Aside(ctx, cache.ProfileKey(userID), &detail, cache.ProfileTTL, func() error {
		profile, err := s.profileRepo.GetByUserID(ctx, userID)
		if err != nil {
			if repository.IsNotFound(err) {
				return models.NewNotFoundError("PROFILE_NOT_FOUND")
			}
			return models.NewInternalError(err)
		}
		detail = models.ProfileDetail{
			ID:         profile.ID,
			UserID:     profile.UserID,
			Avatar:     profile.Avatar,
			Experience: profile.Experience,
			Level:      profile.Level,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
