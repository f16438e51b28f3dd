package sweep

import (
	"context"
	"log"
	"time"

	"github.com/devpals/devpals-go/internal/domain/project"
	"github.com/devpals/devpals-go/internal/repository"
	"golang.org/x/sync/errgroup"
)

// ProjectCloser is the one lifecycle operation the sweeper drives.
// actingAuthorID is nil because the trigger is time, not a person.
type ProjectCloser interface {
	CloseProject(projectID uint, actingAuthorID *uint) (*project.Project, error)
}

// Sweeper periodically finds postings whose recruitment window has elapsed
// but are still open, and closes each one independently. It keeps no state
// between runs: every run re-derives its work set from the store, so a
// crash mid-sweep is repaired by the next run.
type Sweeper struct {
	projects    repository.ProjectRepo
	closer      ProjectCloser
	interval    time.Duration
	concurrency int
}

func NewSweeper(projects repository.ProjectRepo, closer ProjectCloser, interval time.Duration, concurrency int) *Sweeper {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Sweeper{
		projects:    projects,
		closer:      closer,
		interval:    interval,
		concurrency: concurrency,
	}
}

// RunOnce closes every expired-but-open project. Projects are independent
// units of work: one failure is logged and the rest proceed. The returned
// count is how many closes were attempted.
func (s *Sweeper) RunOnce(ctx context.Context) (int, error) {
	expired, err := s.projects.ListExpiredOpen(time.Now())
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	var eg errgroup.Group
	eg.SetLimit(s.concurrency)
	for _, p := range expired {
		id := p.ID
		eg.Go(func() error {
			if _, err := s.closer.CloseProject(id, nil); err != nil {
				log.Printf("sweep: closing project %d failed: %v", id, err)
			}
			return nil
		})
	}
	_ = eg.Wait()
	return len(expired), nil
}

// Start runs one sweep immediately, then once per interval until ctx is
// cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	log.Printf("Starting recruitment sweep (interval: %v)", s.interval)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Recruitment sweep stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	n, err := s.RunOnce(ctx)
	if err != nil {
		log.Printf("sweep: listing expired projects failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("sweep: closed %d expired projects", n)
	}
}
