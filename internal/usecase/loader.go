// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/naka-gawa/portfolio/internal/domain"
	"github.com/naka-gawa/portfolio/internal/gateway"
)

// Recorder receives fetch observations. metrics.Collector implements it.
type Recorder interface {
	ObserveFetch(endpoint string, elapsed time.Duration, err error)
	ObserveWidget(state domain.WidgetState)
}

type nopRecorder struct{}

func (nopRecorder) ObserveFetch(string, time.Duration, error) {}
func (nopRecorder) ObserveWidget(domain.WidgetState)          {}

// Loader is the use case behind the GitHub widget.
// It fetches profile, repositories and events concurrently and settles on a single state.
type Loader struct {
	fetcher  gateway.Fetcher
	recorder Recorder
	logger   *zap.Logger
}

// NewLoader creates a new Loader instance. A nil recorder disables observations.
func NewLoader(fetcher gateway.Fetcher, recorder Recorder, logger *zap.Logger) *Loader {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Loader{
		fetcher:  fetcher,
		recorder: recorder,
		logger:   logger,
	}
}

// Load issues the three requests for handle and returns either domain.Ready or domain.Failed.
//
// All three requests always run to completion before any result is inspected.
// A non-success profile status wins over every other outcome.
func (l *Loader) Load(ctx context.Context, handle string) domain.WidgetState {
	l.logger.Debug("loading GitHub widget data", zap.String("handle", handle))

	var (
		profile    *domain.Profile
		repos      []domain.Repository
		events     []domain.ActivityEvent
		profileErr error
	)

	// No shared context: a failure must not cancel the sibling requests.
	var eg errgroup.Group

	eg.Go(func() error {
		start := time.Now()
		profile, profileErr = l.fetcher.FetchProfile(ctx, handle)
		l.recorder.ObserveFetch("profile", time.Since(start), profileErr)
		return profileErr
	})

	eg.Go(func() error {
		start := time.Now()
		var err error
		repos, err = l.fetcher.FetchRepositories(ctx, handle)
		l.recorder.ObserveFetch("repositories", time.Since(start), err)
		return err
	})

	eg.Go(func() error {
		start := time.Now()
		var err error
		events, err = l.fetcher.FetchEvents(ctx, handle)
		l.recorder.ObserveFetch("events", time.Since(start), err)
		return err
	})

	err := eg.Wait()
	state := settle(profile, repos, events, profileErr, err)

	switch s := state.(type) {
	case domain.Failed:
		l.logger.Warn("GitHub widget load failed",
			zap.String("handle", handle),
			zap.Stringer("kind", s.Kind),
			zap.Error(err),
		)
	case domain.Ready:
		l.logger.Debug("GitHub widget data loaded",
			zap.Int("repos", len(s.Repos)),
			zap.Int("events", len(s.Events)),
		)
	}
	l.recorder.ObserveWidget(state)
	return state
}

func settle(profile *domain.Profile, repos []domain.Repository, events []domain.ActivityEvent, profileErr, firstErr error) domain.WidgetState {
	var statusErr *gateway.StatusError
	if errors.As(profileErr, &statusErr) {
		return domain.NewFailed(domain.FetchFailure, domain.MessageFetchFailed)
	}
	if firstErr != nil {
		return domain.NewFailed(domain.UnexpectedFailure, firstErr.Error())
	}
	if profile == nil {
		return domain.NewFailed(domain.UnexpectedFailure, "")
	}
	return domain.Ready{Snapshot: domain.Snapshot{
		Profile: *profile,
		Repos:   repos,
		Events:  events,
	}}
}
