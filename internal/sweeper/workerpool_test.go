package sweeper

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolExecutesTasks(t *testing.T) {
	wp := NewWorkerPool(3)

	var executed atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		err := wp.AddTask(context.Background(), func() error {
			defer wg.Done()
			executed.Add(1)
			return nil
		})
		require.NoError(t, err)
	}

	wg.Wait()
	assert.Equal(t, int32(10), executed.Load())
	wp.Close()
}

func TestWorkerPoolTaskErrorDoesNotStopWorkers(t *testing.T) {
	wp := NewWorkerPool(1)

	var wg sync.WaitGroup
	wg.Add(2)

	err := wp.AddTask(context.Background(), func() error {
		defer wg.Done()
		return assert.AnError
	})
	require.NoError(t, err)

	var secondRan atomic.Bool
	err = wp.AddTask(context.Background(), func() error {
		defer wg.Done()
		secondRan.Store(true)
		return nil
	})
	require.NoError(t, err)

	wg.Wait()
	assert.True(t, secondRan.Load())
	wp.Close()
}

func TestWorkerPoolCanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	// Saturate the single worker and the buffer so AddTask has to wait.
	block := make(chan struct{})
	for i := 0; i < 2; i++ {
		require.NoError(t, wp.AddTask(context.Background(), func() error {
			<-block
			return nil
		}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)

	close(block)
}
