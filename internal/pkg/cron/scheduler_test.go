package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsJobAtStart(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run at start")
	}
}

func TestSchedulerStopWaitsForJobs(t *testing.T) {
	s := NewScheduler()
	done := false
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		done = true
		return nil
	})

	s.Start()
	s.Stop()
	assert.True(t, done)
}
