package service

import (
	"context"
	"testing"

	"creel/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestApplyScoreEvent_Weights(t *testing.T) {
	tests := []struct {
		name   string
		event  ScoreEvent
		amount int
	}{
		{"post awards 100", ScoreEventPostCreated, 100},
		{"comment awards 50", ScoreEventCommentCreated, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profileRepo := new(MockProfileRepository)
			svc := NewProgressionService(profileRepo)

			profileRepo.On("AddExperience", mock.Anything, uint(7), tt.amount).Return(int64(1), nil)

			err := svc.ApplyScoreEvent(context.Background(), 7, tt.event)
			require.NoError(t, err)
			profileRepo.AssertExpectations(t)
		})
	}
}

func TestApplyScoreEvent_ReplySkipsStorage(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	svc := NewProgressionService(profileRepo)

	err := svc.ApplyScoreEvent(context.Background(), 7, ScoreEventReplyCreated)
	require.NoError(t, err)
	profileRepo.AssertNotCalled(t, "AddExperience", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyScoreEvent_UnknownEvent(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	svc := NewProgressionService(profileRepo)

	err := svc.ApplyScoreEvent(context.Background(), 7, ScoreEvent("post_deleted"))
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrCodeValidation, appErr.Code)
}

func TestGetProfile_ProjectsLedger(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	svc := NewProgressionService(profileRepo)

	profileRepo.On("GetByUserID", mock.Anything, uint(3)).Return(&models.Profile{
		ID:         9,
		UserID:     3,
		Avatar:     "a.png",
		Experience: 1150,
		Level:      1,
	}, nil)

	detail, err := svc.GetProfile(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, uint(9), detail.ID)
	assert.Equal(t, 1150, detail.Experience)
	assert.Equal(t, 1, detail.Level)
}

func TestGetProfile_Missing(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	svc := NewProgressionService(profileRepo)

	profileRepo.On("GetByUserID", mock.Anything, uint(4)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetProfile(context.Background(), 4)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrCodeNotFound, appErr.Code)
	assert.Equal(t, "PROFILE_NOT_FOUND", appErr.Message)
}

func TestApplyScoreEvent_MissingProfile(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	svc := NewProgressionService(profileRepo)

	profileRepo.On("AddExperience", mock.Anything, uint(9), 100).Return(int64(0), nil)

	err := svc.ApplyScoreEvent(context.Background(), 9, ScoreEventPostCreated)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrCodeNotFound, appErr.Code)
	assert.Equal(t, "PROFILE_NOT_FOUND", appErr.Message)
}
