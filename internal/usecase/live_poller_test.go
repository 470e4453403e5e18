package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	usecasemock "github.com/riskibarqy/fpl-insight/internal/mocks/usecase"
	"github.com/riskibarqy/fpl-insight/internal/platform/logging"
	"github.com/riskibarqy/fpl-insight/internal/usecase"
)

func TestLivePoller_PollOnce(t *testing.T) {
	ctx := context.Background()
	source := usecasemock.NewLiveStatsSource(t)
	source.On("FetchLiveStats", mock.Anything).Return(true, nil).Once()
	source.On("FetchLiveStats", mock.Anything).Return(false, errors.New("upstream down")).Once()

	poller, err := usecase.NewLivePoller(source, time.Minute, logging.NewNop())
	require.NoError(t, err)

	require.True(t, poller.PollOnce(ctx))
	require.False(t, poller.PollOnce(ctx), "errors are absorbed and reported as no change")
}

func TestLivePoller_StartRunsScheduledPolls(t *testing.T) {
	source := usecasemock.NewLiveStatsSource(t)
	polled := make(chan struct{}, 8)
	source.
		On("FetchLiveStats", mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case polled <- struct{}{}:
			default:
			}
		}).
		Return(false, nil)

	poller, err := usecase.NewLivePoller(source, 20*time.Millisecond, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, poller.Start(context.Background()))
	defer func() { require.NoError(t, poller.Stop()) }()

	select {
	case <-polled:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a scheduled poll")
	}
}

func TestNewLivePoller_RequiresSource(t *testing.T) {
	_, err := usecase.NewLivePoller(nil, time.Minute, logging.NewNop())
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
