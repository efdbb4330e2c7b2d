// Package session routes player intents to their table and records finished
// rounds in the player statistics.
package session

import (
	"context"
	"errors"
	"log"
	"time"

	"pointsjack/internal/game"
	"pointsjack/internal/player"
)

type Service struct {
	games   *game.Manager
	players player.Repository
}

// NewService wires the tables to the stats repository. players may be nil,
// in which case nothing is recorded.
func NewService(games *game.Manager, players player.Repository) *Service {
	return &Service{games: games, players: players}
}

// TableFactory builds fresh tables with the configured rules and dealer
// visibility.
func TableFactory(rules game.Rules, visibility game.Visibility, newSource func() game.Source) func() *game.Table {
	if newSource == nil {
		newSource = game.NewSource
	}
	return func() *game.Table {
		t := game.NewTable(rules, newSource())
		if err := t.SetVisibility(visibility); err != nil {
			log.Printf("ignoring dealer visibility %d: %v", visibility, err)
		}
		return t
	}
}

func (s *Service) Start(ctx context.Context, key string) (game.Snapshot, error) {
	return s.apply(ctx, key, (*game.Table).Start)
}

func (s *Service) Hit(ctx context.Context, key string) (game.Snapshot, error) {
	return s.apply(ctx, key, (*game.Table).Hit)
}

func (s *Service) Stay(ctx context.Context, key string) (game.Snapshot, error) {
	return s.apply(ctx, key, (*game.Table).Stay)
}

func (s *Service) SetVisibility(ctx context.Context, key string, v game.Visibility) (game.Snapshot, error) {
	var snap game.Snapshot
	err := s.games.Do(key, func(t *game.Table) error {
		err := t.SetVisibility(v)
		snap = t.Snapshot()
		return err
	})
	return snap, err
}

// State never seats a new player; unknown keys see a fresh table.
func (s *Service) State(ctx context.Context, key string) game.Snapshot {
	var snap game.Snapshot
	s.games.View(key, func(t *game.Table) {
		snap = t.Snapshot()
	})
	return snap
}

// NewMatch throws the current table away and seats the player at a fresh
// one with starting points.
func (s *Service) NewMatch(ctx context.Context, key string) game.Snapshot {
	log.Printf("new match for %s", key)
	return s.games.Reset(key)
}

func (s *Service) Stats(ctx context.Context, key string) (*player.Player, error) {
	if s.players == nil {
		return &player.Player{Key: key}, nil
	}
	p, err := s.players.Get(ctx, key)
	if errors.Is(err, player.ErrNotFound) {
		return &player.Player{Key: key}, nil
	}
	return p, err
}

func (s *Service) Top(ctx context.Context, limit int) ([]player.Stats, error) {
	if s.players == nil {
		return nil, nil
	}
	return s.players.GetTop(ctx, limit)
}

// EvictIdle drops tables not used for idle, checking every interval, until
// ctx is done.
func (s *Service) EvictIdle(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.games.Evict(idle); n > 0 {
				log.Printf("evicted %d idle tables, %d left", n, s.games.Len())
			}
		}
	}
}

// apply runs one intent. The snapshot is returned even when the intent is
// rejected so callers can re-render the unchanged table.
func (s *Service) apply(ctx context.Context, key string, intent func(*game.Table) error) (game.Snapshot, error) {
	var snap game.Snapshot
	err := s.games.Do(key, func(t *game.Table) error {
		if err := intent(t); err != nil {
			snap = t.Snapshot()
			return err
		}

		snap = t.Snapshot()
		if snap.Phase == game.PhaseFinished {
			s.record(ctx, key, snap)
		}
		return nil
	})
	return snap, err
}

func (s *Service) record(ctx context.Context, key string, snap game.Snapshot) {
	if s.players == nil {
		return
	}

	p, err := s.players.GetOrCreate(ctx, key)
	if err != nil {
		log.Printf("Failed to load player %s: %v", key, err)
		return
	}

	natural := snap.Result == game.ResultPlayerWin && game.IsNatural(snap.PlayerCards)
	p.AddRound(snap.Result, natural, snap.PlayerPoints)
	if snap.MatchOver {
		p.AddMatch(snap.MatchOutcome)
		log.Printf("match %s for %s after %d rounds (%d points)", snap.MatchOutcome, key, snap.Round, snap.PlayerPoints)
	}

	if err := s.players.Save(ctx, p); err != nil {
		log.Printf("Failed to save player: %v", err)
	}
}
