package rng

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrUnknownHandle is returned for handles that were never created or have
// already been destroyed.
var ErrUnknownHandle = errors.New("rng: unknown generator handle")

// Handle identifies a generator owned by a Table's caller. The zero Handle
// is never issued.
type Handle uint64

// Table issues MT19937 generators behind opaque handles. The caller owns
// each generator from Create until Destroy.
type Table struct {
	mu     sync.Mutex
	gens   map[Handle]*MT19937
	last   Handle
	logger *zap.Logger
}

type Option func(*Table)

func WithLogger(l *zap.Logger) Option {
	return func(t *Table) { t.logger = l }
}

func NewTable(opts ...Option) *Table {
	t := &Table{
		gens:   make(map[Handle]*MT19937),
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *Table) Create(seed uint32) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last++
	h := t.last
	t.gens[h] = NewMT19937(seed)
	t.logger.Debug("generator created", zap.Uint64("handle", uint64(h)), zap.Uint32("seed", seed))
	return h
}

// Next advances the generator behind h and returns its next value.
func (t *Table) Next(h Handle) (uint32, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	g, ok := t.gens[h]
	if !ok {
		return 0, fmt.Errorf("next %d: %w", h, ErrUnknownHandle)
	}
	return g.Next(), nil
}

func (t *Table) Destroy(h Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.gens[h]; !ok {
		t.logger.Warn("destroy of unknown generator", zap.Uint64("handle", uint64(h)))
		return fmt.Errorf("destroy %d: %w", h, ErrUnknownHandle)
	}
	delete(t.gens, h)
	t.logger.Debug("generator destroyed", zap.Uint64("handle", uint64(h)))
	return nil
}

// Len is the number of live generators.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.gens)
}
