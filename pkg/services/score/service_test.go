package score

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fadedpez/parlor/internal/logging"
	"github.com/fadedpez/parlor/internal/types"
	"github.com/fadedpez/parlor/pkg/entities"
	mock_history "github.com/fadedpez/parlor/pkg/repositories/history/mock"
	"github.com/fadedpez/parlor/pkg/storage/memory"
	mockstorage "github.com/fadedpez/parlor/pkg/storage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoadRecoversToZero(t *testing.T) {
	var buf bytes.Buffer
	store := mockstorage.New()
	store.On("Load", mock.Anything).Return(int64(0), errors.New("permission denied"))

	svc := NewService(entities.GameBlackjack, store, nil, logging.NewLoggerTo(&buf, logging.WARN))
	assert.Equal(t, int64(0), svc.Load(context.Background()))
	assert.Equal(t, int64(0), svc.Current())
	assert.Contains(t, buf.String(), "starting from 0")
	store.AssertExpectations(t)
}

func TestApplySavesAfterEveryRound(t *testing.T) {
	ctx := context.Background()
	store := mockstorage.New()
	store.On("Load", mock.Anything).Return(int64(20), nil)
	store.On("Save", mock.Anything, int64(30)).Return(nil).Once()
	store.On("Save", mock.Anything, int64(20)).Return(nil).Twice()

	svc := NewService(entities.GameBlackjack, store, nil, nil)
	require.Equal(t, int64(20), svc.Load(ctx))

	record, err := svc.Apply(ctx, RoundResult{Outcome: entities.OutcomeWin, Delta: 10, Detail: "player 20 vs dealer 18"})
	require.NoError(t, err)
	assert.Equal(t, int64(30), record.ScoreAfter)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, entities.GameBlackjack, record.Game)

	_, err = svc.Apply(ctx, RoundResult{Outcome: entities.OutcomeLoss, Delta: -10})
	require.NoError(t, err)
	_, err = svc.Apply(ctx, RoundResult{Outcome: entities.OutcomePush})
	require.NoError(t, err)

	assert.Equal(t, int64(20), svc.Current())
	store.AssertExpectations(t)
}

func TestApplySaveFailure(t *testing.T) {
	store := mockstorage.New()
	store.On("Save", mock.Anything, int64(1)).Return(errors.New("disk full"))

	svc := NewService(entities.GameNumberGuesser, store, nil, nil)
	_, err := svc.Apply(context.Background(), RoundResult{Outcome: entities.OutcomeWin, Delta: 1})

	assert.True(t, types.IsGameError(err, types.ErrStorageError))
	assert.Equal(t, int64(1), svc.Current(), "the in-memory score is still updated")
}

func TestApplyRecordsHistory(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	hist := mock_history.NewMockRepository(ctrl)

	svc := NewService(entities.GameNumberGuesser, memory.New(4), hist, nil)
	fixed := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	svc.Load(ctx)

	hist.EXPECT().SaveRound(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, record *entities.RoundRecord) error {
			assert.Equal(t, entities.OutcomeWin, record.Outcome)
			assert.Equal(t, int64(1), record.Delta)
			assert.Equal(t, int64(5), record.ScoreAfter)
			assert.Equal(t, "guessed 62 in 5", record.Detail)
			assert.Equal(t, fixed, record.CompletedAt)
			return nil
		})

	_, err := svc.Apply(ctx, RoundResult{Outcome: entities.OutcomeWin, Delta: 1, Detail: "guessed 62 in 5"})
	require.NoError(t, err)
}

func TestHistoryFailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	ctrl := gomock.NewController(t)
	hist := mock_history.NewMockRepository(ctrl)
	hist.EXPECT().SaveRound(gomock.Any(), gomock.Any()).Return(errors.New("es down"))

	svc := NewService(entities.GameBlackjack, memory.New(0), hist, logging.NewLoggerTo(&buf, logging.WARN))
	_, err := svc.Apply(context.Background(), RoundResult{Outcome: entities.OutcomeLoss, Delta: -10})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "es down")
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	svc := NewService(entities.GameBlackjack, memory.New(0), nil, nil)
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Rounds)

	ctrl := gomock.NewController(t)
	hist := mock_history.NewMockRepository(ctrl)
	want := &entities.RoundStatistics{Game: entities.GameBlackjack, Rounds: 3}
	hist.EXPECT().Stats(gomock.Any(), entities.GameBlackjack).Return(want, nil)

	svc = NewService(entities.GameBlackjack, memory.New(0), hist, nil)
	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Rounds)
}
