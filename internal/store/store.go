package store

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"filmrec/internal/domain"
)

// Mode selects which list a search filters
type Mode int

const (
	// ModeNarrow filters the current list, so items dropped by one search
	// never come back.
	ModeNarrow Mode = iota
	// ModeSeed filters the original seed list on every search.
	ModeSeed
)

func (m Mode) String() string {
	switch m {
	case ModeNarrow:
		return "narrow"
	case ModeSeed:
		return "seed"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a config value into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "narrow":
		return ModeNarrow, nil
	case "seed":
		return ModeSeed, nil
	default:
		return ModeNarrow, fmt.Errorf("unknown search mode %q", s)
	}
}

// Subscriber receives the new film list after every search
type Subscriber func(films []domain.Film)

// Option configures a Store
type Option func(*Store)

// WithMode sets the search mode
func WithMode(mode Mode) Option {
	return func(s *Store) {
		s.mode = mode
	}
}

// WithLogger sets the logger used for search diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type subscription struct {
	id int
	fn Subscriber
}

// Store owns the current film list and notifies subscribers when a search
// replaces it. There is a single writer; the mutex only makes reads from
// other goroutines safe.
type Store struct {
	mu     sync.RWMutex
	seed   []domain.Film
	films  []domain.Film
	mode   Mode
	logger *zap.Logger

	subs   []subscription
	nextID int
}

// New creates a store holding a copy of seed
func New(seed []domain.Film, opts ...Option) *Store {
	s := &Store{
		seed:   clone(seed),
		films:  clone(seed),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Films returns a copy of the current list
func (s *Store) Films() []domain.Film {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.films)
}

// Mode returns the configured search mode
func (s *Store) Mode() Mode {
	return s.mode
}

// Subscribe registers fn to be called after every search.
// The returned function removes the subscription and may be called more than once.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					break
				}
			}
		})
	}
}

// Search replaces the current list with the films whose title contains query,
// ignoring case, and notifies subscribers synchronously in registration order.
func (s *Store) Search(query string) {
	s.mu.Lock()
	source := s.films
	if s.mode == ModeSeed {
		source = s.seed
	}

	result := Filter(source, query)
	if dropped := len(s.films) - len(result); s.mode == ModeNarrow && dropped > 0 {
		s.logger.Debug("search discarded films from the current list",
			zap.String("query", query),
			zap.Int("dropped", dropped))
	}
	s.films = result

	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.logger.Info("search completed",
		zap.String("query", query),
		zap.Stringer("mode", s.mode),
		zap.Int("matches", len(result)))

	// Subscribers run outside the lock so they may read the store
	for _, sub := range subs {
		sub.fn(clone(result))
	}
}

// Filter returns the films whose title contains query, ignoring case.
// An empty query matches every film. Order is preserved.
func Filter(films []domain.Film, query string) []domain.Film {
	needle := strings.ToLower(query)
	result := make([]domain.Film, 0, len(films))
	for _, film := range films {
		if strings.Contains(strings.ToLower(film.Title), needle) {
			result = append(result, film)
		}
	}
	return result
}

func clone(films []domain.Film) []domain.Film {
	out := make([]domain.Film, len(films))
	copy(out, films)
	return out
}
