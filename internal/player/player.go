package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pointsjack/internal/game"
)

// Player holds lifetime statistics for one session key. Match points are
// never stored here; only finished rounds and matches are counted.
type Player struct {
	Key         string
	Rounds      int
	Wins        int
	Losses      int
	Pushes      int
	Naturals    int
	MatchesWon  int
	MatchesLost int
	BestPoints  int
}

type Stats struct {
	Key        string
	MatchesWon int
	Rounds     int
	Wins       int
	BestPoints int
	WinRate    float64
}

var ErrNotFound = errors.New("player not found")

type Repository interface {
	// Get loads a player without creating one; unknown keys give ErrNotFound.
	Get(ctx context.Context, key string) (*Player, error)
	GetOrCreate(ctx context.Context, key string) (*Player, error)
	Save(ctx context.Context, player *Player) error
	GetTop(ctx context.Context, limit int) ([]Stats, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) (*Player, error) {
	player := &Player{Key: key}

	err := r.db.QueryRowContext(ctx, `
		SELECT rounds, wins, losses, pushes, naturals, matches_won, matches_lost, best_points
		FROM players WHERE player_key = ?
	`, key).Scan(
		&player.Rounds, &player.Wins, &player.Losses, &player.Pushes,
		&player.Naturals, &player.MatchesWon, &player.MatchesLost, &player.BestPoints,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

func (r *SQLiteRepository) GetOrCreate(ctx context.Context, key string) (*Player, error) {
	player, err := r.Get(ctx, key)
	if !errors.Is(err, ErrNotFound) {
		return player, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO players (player_key) VALUES (?)
	`, key)

	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return &Player{Key: key}, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, player *Player) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE players SET
			rounds = ?, wins = ?, losses = ?, pushes = ?, naturals = ?,
			matches_won = ?, matches_lost = ?, best_points = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE player_key = ?
	`, player.Rounds, player.Wins, player.Losses, player.Pushes, player.Naturals,
		player.MatchesWon, player.MatchesLost, player.BestPoints, player.Key)

	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetTop(ctx context.Context, limit int) ([]Stats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT player_key, matches_won, rounds, wins, best_points
		FROM players
		WHERE rounds > 0
		ORDER BY matches_won DESC, best_points DESC, wins DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top players: %w", err)
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var s Stats
		if err := rows.Scan(&s.Key, &s.MatchesWon, &s.Rounds, &s.Wins, &s.BestPoints); err != nil {
			return nil, err
		}
		if s.Rounds > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Rounds) * 100
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// AddRound counts one finished round.
func (p *Player) AddRound(result game.Result, natural bool, points int) {
	p.Rounds++
	switch result {
	case game.ResultPlayerWin:
		p.Wins++
	case game.ResultDealerWin:
		p.Losses++
	case game.ResultPush:
		p.Pushes++
	}
	if natural {
		p.Naturals++
	}
	if points > p.BestPoints {
		p.BestPoints = points
	}
}

func (p *Player) AddMatch(outcome game.MatchOutcome) {
	switch outcome {
	case game.MatchWon:
		p.MatchesWon++
	case game.MatchLost:
		p.MatchesLost++
	}
}

func (p *Player) Matches() int {
	return p.MatchesWon + p.MatchesLost
}

func (p *Player) WinRate() float64 {
	if p.Rounds == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Rounds) * 100
}
