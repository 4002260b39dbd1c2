package scheduler_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"ocreader/internal/model"
	"ocreader/internal/scheduler"
	"ocreader/internal/service"
	servicemock "ocreader/internal/service/mock"
)

func TestScheduler_SyncsOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockSyncService(ctrl)

	done := make(chan struct{})
	svc.EXPECT().Sync(gomock.Any()).DoAndReturn(func(ctx context.Context) (model.SyncRun, error) {
		close(done)
		return model.SyncRun{Result: model.SyncResultOK}, nil
	})

	s := scheduler.New(svc, time.Hour)
	s.Start()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sync was not started")
	}
	s.Stop()
}

func TestScheduler_StopCancelsRunningSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockSyncService(ctrl)

	started := make(chan struct{})
	cancelled := make(chan struct{})
	svc.EXPECT().Sync(gomock.Any()).DoAndReturn(func(ctx context.Context) (model.SyncRun, error) {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return model.SyncRun{}, ctx.Err()
	})

	s := scheduler.New(svc, time.Hour)
	s.Start()
	<-started
	s.Stop()

	select {
	case <-cancelled:
	default:
		t.Fatal("running sync was not cancelled")
	}
}

func TestScheduler_NotLoggedInIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemock.NewMockSyncService(ctrl)

	calls := make(chan struct{}, 10)
	svc.EXPECT().Sync(gomock.Any()).DoAndReturn(func(ctx context.Context) (model.SyncRun, error) {
		calls <- struct{}{}
		return model.SyncRun{}, service.ErrNotLoggedIn
	}).MinTimes(2)

	s := scheduler.New(svc, 20*time.Millisecond)
	s.Start()
	<-calls
	<-calls
	s.Stop()
}
