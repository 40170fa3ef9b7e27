package overlay

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/playground"
	"github.com/gogpu/playground/internal/cache"
	"github.com/gogpu/playground/remap"
)

// Session errors.
var (
	// ErrNotStarted is returned when a session is used before Start.
	ErrNotStarted = errors.New("overlay: session not started")

	// ErrStopped is returned when a session is used after Stop.
	ErrStopped = errors.New("overlay: session stopped")

	// ErrIndex is returned for a segment index outside the loaded list.
	ErrIndex = errors.New("overlay: segment index out of range")
)

// Segmentation is one result of an image segmentation model.
type Segmentation struct {
	// Label is the class name, e.g. "person".
	Label string
	// Score is the model confidence in [0, 1].
	Score float64
	// Mask is a PNG data URI: white foreground on black background.
	Mask string
}

type state int

const (
	stateIdle state = iota
	stateRunning
	stateStopped
)

// Session tracks loaded segments and which of them cover the photo.
// A Session is safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	state  state
	opts   options
	segs   []Segmentation
	covers []string // remapped mask per segment, "" when uncovered
	cache  *cache.Cache[string, string]
}

// New creates a session. It must be started before use.
func New(opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{opts: o}
}

// Start makes the session usable. Starting a running session is a no-op;
// a stopped session cannot be restarted.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateRunning:
		return nil
	case stateStopped:
		return ErrStopped
	}
	s.cache = cache.New[string, string](s.opts.cacheSize)
	s.state = stateRunning
	playground.Logger().Info("overlay: session started", "cacheSize", s.opts.cacheSize)
	return nil
}

// Stop releases the cache and loaded segments. Stop is idempotent.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateStopped {
		return
	}
	if s.cache != nil {
		st := s.cache.Stats()
		playground.Logger().Info("overlay: session stopped",
			"hits", st.Hits, "misses", st.Misses, "evictions", st.Evictions)
		s.cache.Clear()
	}
	s.state = stateStopped
	s.segs = nil
	s.covers = nil
	s.cache = nil
}

// Load replaces the segments and uncovers everything.
// The remap cache survives, so masks seen before are not re-encoded.
func (s *Session) Load(segs []Segmentation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLocked(); err != nil {
		return err
	}
	s.segs = append([]Segmentation(nil), segs...)
	s.covers = make([]string, len(segs))
	playground.Logger().Debug("overlay: loaded segments", "count", len(segs))
	return nil
}

// Segments returns a copy of the loaded segments.
func (s *Session) Segments() []Segmentation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Segmentation(nil), s.segs...)
}

// Toggle covers segment idx with its remapped mask, or uncovers it if it is
// already covered. It reports whether the segment is covered afterwards.
// A mask that cannot be remapped leaves the segment uncovered.
func (s *Session) Toggle(idx int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLocked(); err != nil {
		return false, err
	}
	if idx < 0 || idx >= len(s.segs) {
		return false, fmt.Errorf("%w: %d (have %d)", ErrIndex, idx, len(s.segs))
	}
	if s.covers[idx] != "" {
		s.covers[idx] = ""
		return false, nil
	}

	mask := s.segs[idx].Mask
	uri, err := s.cache.GetOrCreate(mask, func() (string, error) {
		return remap.Remap(mask, s.opts.coverRules)
	})
	if err != nil {
		return false, fmt.Errorf("overlay: cover %q: %w", s.segs[idx].Label, err)
	}
	s.covers[idx] = uri
	return true, nil
}

// Covered reports whether segment idx currently covers the photo.
func (s *Session) Covered(idx int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return idx >= 0 && idx < len(s.covers) && s.covers[idx] != ""
}

// Covers returns the data URIs of the covering masks in segment order.
func (s *Session) Covers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for _, c := range s.covers {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Colorize paints every loaded mask with its own distinct color and returns
// the results in segment order. A mask that fails to decode is logged and
// left as "" in the result. Colorize returns early only when ctx is done.
func (s *Session) Colorize(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	if err := s.checkLocked(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	segs := append([]Segmentation(nil), s.segs...)
	limit := s.opts.parallelism
	s.mu.Unlock()

	colors := remap.Distinct(len(segs))
	out := make([]string, len(segs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, seg := range segs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			uri, err := remap.Remap(seg.Mask, remap.Highlight(colors[i]))
			if err != nil {
				playground.Logger().Warn("overlay: skipping mask",
					"index", i, "label", seg.Label, "err", err)
				return nil
			}
			out[i] = uri
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// checkLocked reports whether the session can be used. Caller must hold s.mu.
func (s *Session) checkLocked() error {
	switch s.state {
	case stateIdle:
		return ErrNotStarted
	case stateStopped:
		return ErrStopped
	}
	return nil
}
