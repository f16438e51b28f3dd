package sweep

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/devpals/devpals-go/internal/domain/project"
	"github.com/devpals/devpals-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloser struct {
	mu     sync.Mutex
	closed []uint
	failOn map[uint]bool
}

func (f *fakeCloser) CloseProject(projectID uint, actingAuthorID *uint) (*project.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = append(f.closed, projectID)
	if actingAuthorID != nil {
		return nil, errors.New("sweep must not act as an author")
	}
	if f.failOn[projectID] {
		return nil, errors.New("close failed")
	}
	return &project.Project{ID: projectID, IsDone: true}, nil
}

func (f *fakeCloser) closedIDs() []uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := append([]uint(nil), f.closed...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestRunOnce(t *testing.T) {
	t.Run("nothing expired means nothing closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projectRepo := mock.NewMockProjectRepo(ctrl)
		closer := &fakeCloser{}

		projectRepo.EXPECT().ListExpiredOpen(gomock.Any()).Return(nil, nil)

		n, err := NewSweeper(projectRepo, closer, time.Hour, 2).RunOnce(context.Background())
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, closer.closedIDs())
	})

	t.Run("closes every expired open project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projectRepo := mock.NewMockProjectRepo(ctrl)
		closer := &fakeCloser{}

		projectRepo.EXPECT().ListExpiredOpen(gomock.Any()).Return([]project.Project{
			{ID: 1}, {ID: 2}, {ID: 3},
		}, nil)

		n, err := NewSweeper(projectRepo, closer, time.Hour, 2).RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []uint{1, 2, 3}, closer.closedIDs())
	})

	t.Run("one failing project does not stop the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projectRepo := mock.NewMockProjectRepo(ctrl)
		closer := &fakeCloser{failOn: map[uint]bool{2: true}}

		projectRepo.EXPECT().ListExpiredOpen(gomock.Any()).Return([]project.Project{
			{ID: 1}, {ID: 2}, {ID: 3},
		}, nil)

		n, err := NewSweeper(projectRepo, closer, time.Hour, 1).RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []uint{1, 2, 3}, closer.closedIDs())
	})

	t.Run("listing failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projectRepo := mock.NewMockProjectRepo(ctrl)
		closer := &fakeCloser{}

		projectRepo.EXPECT().ListExpiredOpen(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := NewSweeper(projectRepo, closer, time.Hour, 2).RunOnce(context.Background())
		assert.Error(t, err)
		assert.Empty(t, closer.closedIDs())
	})
}

func TestStartStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	projectRepo := mock.NewMockProjectRepo(ctrl)
	closer := &fakeCloser{}

	// Start runs one sweep immediately.
	projectRepo.EXPECT().ListExpiredOpen(gomock.Any()).Return(nil, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewSweeper(projectRepo, closer, time.Hour, 1).Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
}
