// Package closer collects shutdown hooks during startup and runs them in
// reverse order on shutdown.
package closer

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type CloseFunc func(ctx context.Context) error

type namedCloser struct {
	name string
	fn   CloseFunc
}

var (
	mu      sync.Mutex
	closers []namedCloser
	log     = zap.NewNop()
	closed  bool
)

func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l != nil {
		log = l
	}
}

// AddNamed registers a shutdown hook. Hooks run in reverse registration
// order, so dependents close before their dependencies.
func AddNamed(name string, fn CloseFunc) {
	mu.Lock()
	defer mu.Unlock()
	closers = append(closers, namedCloser{name: name, fn: fn})
}

// CloseAll runs every registered hook once, newest first, and joins their
// errors. Subsequent calls are no-ops.
func CloseAll(ctx context.Context) error {
	mu.Lock()
	if closed {
		mu.Unlock()
		return nil
	}
	closed = true
	toClose := make([]namedCloser, len(closers))
	copy(toClose, closers)
	mu.Unlock()

	var errs []error
	for i := len(toClose) - 1; i >= 0; i-- {
		c := toClose[i]
		if err := c.fn(ctx); err != nil {
			log.Error("failed to close", zap.String("name", c.name), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		log.Info("closed", zap.String("name", c.name))
	}

	return errors.Join(errs...)
}
