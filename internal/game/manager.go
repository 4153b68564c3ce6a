// internal/game/manager.go
//
// Manager owns the live session and everything around it:
//   - mode switching (daily vs endless), each switch building a new Session
//   - daily restore: a persisted session whose seed matches today's is
//     resumed; anything stale or unparseable is silently discarded
//   - persistence of daily progress through the KV surface
//   - the exactly-once stats update on transition into won/lost
//
// The core computations stay pure; the Manager is the single logical actor
// that sequences them. A mutex guards the session because the HTTP layer
// may call in concurrently, but transitions still happen one guess at a
// time.

package game

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/parkdex/coastle/internal/catalog"
	"github.com/parkdex/coastle/internal/daily"
	"github.com/parkdex/coastle/internal/stats"
	"github.com/parkdex/coastle/internal/store"
)

var (
	// ErrEmptyPool signals that no guessable entities survived the adapter.
	ErrEmptyPool = errors.New("entity pool is empty")
	// ErrNoSession signals a guess with no active session.
	ErrNoSession = errors.New("no active session")
)

// Manager drives sessions over a fixed entity pool.
type Manager struct {
	mu      sync.Mutex
	pool    []catalog.Entity
	kv      store.KV
	variant string // scopes persistence keys, e.g. "coasters"
	now     func() time.Time

	session *Session
}

// NewManager builds a manager over pool. The pool is copied and sorted by
// ID so the daily selector sees a stable enumeration order no matter how
// the catalog source happened to deliver records.
func NewManager(pool []catalog.Entity, kv store.KV, variant string, now func() time.Time) *Manager {
	p := make([]catalog.Entity, len(pool))
	copy(p, pool)
	sort.Slice(p, func(i, j int) bool { return p[i].ID < p[j].ID })
	if now == nil {
		now = time.Now
	}
	return &Manager{pool: p, kv: kv, variant: variant, now: now}
}

// Pool returns the stable, ID-sorted entity pool.
func (m *Manager) Pool() []catalog.Entity { return m.pool }

// persistedSession is the wire shape of a stored daily session. The seed
// travels as a decimal string; a mismatch against today's seed discards
// the whole record.
type persistedSession struct {
	Seed    string        `json:"seed"`
	Guesses []GuessRecord `json:"guesses"`
	Status  Status        `json:"status"`
}

func (m *Manager) sessionKey() string { return "daily_session:" + m.variant }
func (m *Manager) statsKey() string   { return "stats:" + m.variant }

// StartDaily enters daily mode: restores today's persisted session if one
// exists, otherwise starts fresh via the deterministic selector.
func (m *Manager) StartDaily(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	today := m.now().UTC()
	seed := daily.Seed(today)
	answer, ok := daily.PickAnswer(today, m.pool)
	if !ok {
		return nil, ErrEmptyPool
	}

	if s := m.restoreDaily(ctx, seed, answer); s != nil {
		m.session = s
		return s, nil
	}

	m.session = NewSession(ModeDaily, seed, answer)
	m.persistDaily(ctx)
	return m.session, nil
}

// restoreDaily loads and validates a persisted daily session. Any problem
// (absent, unparseable, stale seed, bogus status) yields nil: a fresh
// session is constructed silently, never an error to the player.
func (m *Manager) restoreDaily(ctx context.Context, seed int, answer catalog.Entity) *Session {
	raw, ok, err := m.kv.Get(ctx, m.sessionKey())
	if err != nil {
		log.Warn().Err(err).Msg("load daily session")
		return nil
	}
	if !ok {
		return nil
	}
	var p persistedSession
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	if stored, err := strconv.Atoi(p.Seed); err != nil || stored != seed {
		return nil
	}
	switch p.Status {
	case StatusPlaying, StatusWon, StatusLost:
	default:
		return nil
	}
	if len(p.Guesses) > MaxGuesses {
		return nil
	}
	return &Session{
		Mode:    ModeDaily,
		Seed:    seed,
		Answer:  answer,
		Guesses: p.Guesses,
		Status:  p.Status,
	}
}

// StartEndless enters endless mode: always a fresh session with a uniform
// random answer, never restored and never persisted.
func (m *Manager) StartEndless(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	answer, err := randomEntity(m.pool)
	if err != nil {
		return nil, err
	}
	m.session = NewSession(ModeEndless, 0, answer)
	return m.session, nil
}

// Reset discards the current session and builds a brand-new one in the
// same mode. For daily mode the persisted record is dropped too, so the
// day restarts clean (same answer — the selector is deterministic).
func (m *Manager) Reset(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	mode := ModeDaily
	if m.session != nil {
		mode = m.session.Mode
	}
	m.session = nil
	m.mu.Unlock()

	if mode == ModeEndless {
		return m.StartEndless(ctx)
	}
	if err := m.kv.Delete(ctx, m.sessionKey()); err != nil {
		log.Warn().Err(err).Msg("drop daily session")
	}
	return m.StartDaily(ctx)
}

// SubmitGuess applies one guess to the active session. On transition into
// a terminal state the stats aggregator runs exactly once and, in daily
// mode, the finished session is persisted.
func (m *Manager) SubmitGuess(ctx context.Context, candidate catalog.Entity) (GuessRecord, *Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return GuessRecord{}, nil, ErrNoSession
	}
	wasPlaying := m.session.Status == StatusPlaying

	rec, err := m.session.SubmitGuess(candidate)
	if err != nil {
		return GuessRecord{}, m.session, err
	}

	if m.session.Mode == ModeDaily {
		m.persistDaily(ctx)
	}
	if wasPlaying && m.session.Finished() {
		m.recordResult(ctx)
	}
	return rec, m.session, nil
}

// Current returns the active session, or nil before the first mode entry.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Stats loads the persisted player stats; absent or corrupt data starts a
// zeroed record rather than failing. Reads only the KV surface, so it is
// safe with or without the manager lock held.
func (m *Manager) Stats(ctx context.Context) stats.PlayerStats {
	raw, ok, err := m.kv.Get(ctx, m.statsKey())
	if err != nil {
		log.Warn().Err(err).Msg("load stats")
	}
	if !ok || err != nil {
		return stats.New(MaxGuesses)
	}
	var s stats.PlayerStats
	if err := json.Unmarshal(raw, &s); err != nil {
		return stats.New(MaxGuesses)
	}
	if s.GuessDistribution == nil {
		s.GuessDistribution = make([]int, MaxGuesses)
	}
	return s
}

// recordResult folds the just-finished session into persisted stats.
// Called exactly once per termination, under the manager lock.
func (m *Manager) recordResult(ctx context.Context) {
	s := stats.OnGameEnd(m.session.Status == StatusWon, len(m.session.Guesses), m.Stats(ctx))
	buf, err := json.Marshal(s)
	if err != nil {
		log.Error().Err(err).Msg("marshal stats")
		return
	}
	if err := m.kv.Put(ctx, m.statsKey(), buf); err != nil {
		log.Warn().Err(err).Msg("save stats")
	}
}

// persistDaily writes the active daily session. Best effort: a write error
// is logged, not surfaced — the in-memory session stays authoritative.
func (m *Manager) persistDaily(ctx context.Context) {
	p := persistedSession{
		Seed:    strconv.Itoa(m.session.Seed),
		Guesses: m.session.Guesses,
		Status:  m.session.Status,
	}
	buf, err := json.Marshal(p)
	if err != nil {
		log.Error().Err(err).Msg("marshal daily session")
		return
	}
	if err := m.kv.Put(ctx, m.sessionKey(), buf); err != nil {
		log.Warn().Err(err).Msg("save daily session")
	}
}

// randomEntity picks uniformly from pool using crypto/rand.
func randomEntity(pool []catalog.Entity) (catalog.Entity, error) {
	if len(pool) == 0 {
		return catalog.Entity{}, ErrEmptyPool
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return catalog.Entity{}, fmt.Errorf("random pick: %w", err)
	}
	return pool[nBig.Int64()], nil
}
