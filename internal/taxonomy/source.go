package taxonomy

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

// Source keeps the current tree for a session. Refresh swaps the whole tree or
// nothing.
type Source struct {
	fetcher Fetcher
	current atomic.Pointer[Tree]
	logger  *zap.Logger
}

func NewSource(f Fetcher, log *zap.Logger) *Source {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Source{fetcher: f, logger: log.Named("taxonomy")}
	s.current.Store(&Tree{})
	return s
}

// Refresh loads a new tree. On failure the previous tree stays in place.
func (s *Source) Refresh(ctx context.Context) error {
	t, err := Load(ctx, s.fetcher)
	if err != nil {
		s.logger.Error("Failed to load categories", zap.Error(err))
		return err
	}
	s.current.Store(&t)
	s.logger.Debug("Categories loaded", zap.Int("count", t.Len()))
	return nil
}

// Tree returns the current tree, empty until a refresh succeeds.
func (s *Source) Tree() Tree {
	return *s.current.Load()
}

// Degraded refreshes and returns whatever tree is current. Failures are only
// logged, so navigation renders empty instead of erroring.
func (s *Source) Degraded(ctx context.Context) Tree {
	_ = s.Refresh(ctx)
	return s.Tree()
}
