package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"aging_curve/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingProbe struct {
	calls atomic.Int32
	err   error
}

func (p *countingProbe) ServerTime(context.Context) (time.Time, error) {
	p.calls.Add(1)
	return time.Now(), p.err
}

func TestSchedulerRunsUntilCancelled(t *testing.T) {
	probe := &countingProbe{}
	var statsCalls atomic.Int32
	s := NewScheduler(&config.Config{}, probe, func() sql.DBStats {
		statsCalls.Add(1)
		return sql.DBStats{OpenConnections: 2}
	}).WithInterval(5 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return probe.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	st := s.Status()
	require.GreaterOrEqual(t, st.Runs, 3)
	require.Zero(t, st.Failures)
	require.NoError(t, st.LastErr)
	require.Positive(t, statsCalls.Load())
}

func TestSchedulerRecordsFailures(t *testing.T) {
	probe := &countingProbe{err: errors.New("db down")}
	s := NewScheduler(&config.Config{}, probe, nil).WithInterval(5 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return s.Status().Failures >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	require.Error(t, s.Status().LastErr)
}

func TestSecondsToDurationDefault(t *testing.T) {
	require.Equal(t, time.Minute, secondsToDuration(0))
	require.Equal(t, 5*time.Second, secondsToDuration(5))
}
