package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	startErr error
	block    bool
	stopped  atomic.Bool
}

func (f *fakeService) Name() string { return "fake" }

func (f *fakeService) Start(ctx context.Context) error {
	if f.block {
		<-ctx.Done()
		return nil
	}
	return f.startErr
}

func (f *fakeService) Stop(ctx context.Context) error {
	f.stopped.Store(true)
	return nil
}

func TestRunnerStopsOnContextCancel(t *testing.T) {
	svc := &fakeService{block: true}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := NewRunner(svc).Run(ctx, time.Second, nil)
	require.NoError(t, err)
	assert.True(t, svc.stopped.Load())
}

func TestRunnerReturnsStartError(t *testing.T) {
	boom := errors.New("listen failed")
	svc := &fakeService{startErr: boom}

	err := NewRunner(svc).Run(context.Background(), time.Second, nil)
	require.ErrorIs(t, err, boom)
	assert.True(t, svc.stopped.Load())
}

func TestRunnerWithoutServices(t *testing.T) {
	require.Error(t, NewRunner().Run(context.Background(), time.Second, nil))
	require.Error(t, RunWithOptions(nil, Options{}))
}

func TestRunRequiresConfig(t *testing.T) {
	require.Error(t, Run(Options{}))
}
