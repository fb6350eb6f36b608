// Package widget implements the mount lifecycle of the GitHub activity widget.
package widget

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/naka-gawa/portfolio/internal/domain"
)

// Loader produces the settled state for a handle. usecase.Loader implements it.
type Loader interface {
	Load(ctx context.Context, handle string) domain.WidgetState
}

// Widget moves from Loading to Ready or Failed exactly once per mount.
// The handle is fixed for the lifetime of the widget.
type Widget struct {
	loader Loader
	handle string
	logger *zap.Logger

	once sync.Once
	done chan struct{}

	mu        sync.Mutex
	state     domain.WidgetState
	cancel    context.CancelFunc
	unmounted bool
}

// New creates an unmounted widget in the Loading state.
func New(loader Loader, handle string, logger *zap.Logger) *Widget {
	return &Widget{
		loader: loader,
		handle: handle,
		logger: logger,
		done:   make(chan struct{}),
		state:  domain.Loading{},
	}
}

// Handle returns the account the widget was created for.
func (w *Widget) Handle() string { return w.handle }

// Mount starts the load in the background. Calls after the first are no-ops.
func (w *Widget) Mount(ctx context.Context) {
	w.once.Do(func() {
		ctx, cancel := context.WithCancel(ctx)
		w.mu.Lock()
		if w.unmounted {
			w.mu.Unlock()
			cancel()
			close(w.done)
			return
		}
		w.cancel = cancel
		w.mu.Unlock()
		go w.run(ctx)
	})
}

func (w *Widget) run(ctx context.Context) {
	defer close(w.done)
	state := w.loader.Load(ctx, w.handle)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.cancel()
	if w.unmounted {
		w.logger.Debug("widget unmounted before settling, result discarded", zap.String("handle", w.handle))
		return
	}
	w.state = state
}

// State returns the current state.
func (w *Widget) State() domain.WidgetState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Done is closed once a mounted widget has settled or been torn down.
// It never closes for a widget that was never mounted.
func (w *Widget) Done() <-chan struct{} {
	return w.done
}

// Wait blocks until the widget settles or ctx is done, then returns the current state.
func (w *Widget) Wait(ctx context.Context) domain.WidgetState {
	select {
	case <-w.done:
	case <-ctx.Done():
	}
	return w.State()
}

// Unmount cancels an in-flight load. No state update happens afterwards.
func (w *Widget) Unmount() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.unmounted {
		return
	}
	w.unmounted = true
	if w.cancel != nil {
		w.cancel()
	}
}
