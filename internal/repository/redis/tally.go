package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/iamasit07/4-in-a-row/simulator/internal/domain"
)

const keyPrefix = "c4sim"

const (
	fieldPlayer1 = "player1"
	fieldPlayer2 = "player2"
	fieldDraw    = "draw"
	fieldGames   = "games"
)

// tallyKey returns the hash holding the counters of one matchup. The order
// of the names matters: player1 always moved as Player1.
func tallyKey(player1, player2 string) string {
	return fmt.Sprintf("%s:tally:%s:%s", keyPrefix, player1, player2)
}

// Counts are the totals kept for a matchup across runs.
type Counts struct {
	Player1Wins int64 `json:"player1_wins"`
	Player2Wins int64 `json:"player2_wins"`
	Draws       int64 `json:"draws"`
	Games       int64 `json:"games"`
}

// TallyStore keeps per-matchup outcome counters in redis hashes. It stores
// counters only, never boards or moves.
type TallyStore struct {
	client *redis.Client
}

func NewTallyStore(client *redis.Client) *TallyStore {
	return &TallyStore{client: client}
}

// Record adds one finished game to the matchup's counters.
func (s *TallyStore) Record(ctx context.Context, player1, player2 string, result domain.Result) error {
	var field string
	switch {
	case result.IsWinFor(domain.Player1):
		field = fieldPlayer1
	case result.IsWinFor(domain.Player2):
		field = fieldPlayer2
	case result.Status == domain.StatusDraw:
		field = fieldDraw
	default:
		return fmt.Errorf("record %s: game is not over", result)
	}

	key := tallyKey(player1, player2)
	pipe := s.client.TxPipeline()
	pipe.HIncrBy(ctx, key, field, 1)
	pipe.HIncrBy(ctx, key, fieldGames, 1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record %s vs %s: %w", player1, player2, err)
	}
	return nil
}

// Load returns the counters of a matchup; an unknown matchup has zero counts.
func (s *TallyStore) Load(ctx context.Context, player1, player2 string) (Counts, error) {
	values, err := s.client.HGetAll(ctx, tallyKey(player1, player2)).Result()
	if err != nil {
		return Counts{}, fmt.Errorf("load %s vs %s: %w", player1, player2, err)
	}

	var counts Counts
	for field, dst := range map[string]*int64{
		fieldPlayer1: &counts.Player1Wins,
		fieldPlayer2: &counts.Player2Wins,
		fieldDraw:    &counts.Draws,
		fieldGames:   &counts.Games,
	} {
		raw, ok := values[field]
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Counts{}, fmt.Errorf("load %s vs %s: field %s: %w", player1, player2, field, err)
		}
		*dst = n
	}
	return counts, nil
}

// Reset drops the counters of a matchup.
func (s *TallyStore) Reset(ctx context.Context, player1, player2 string) error {
	return s.client.Del(ctx, tallyKey(player1, player2)).Err()
}

func (s *TallyStore) Close() error {
	return s.client.Close()
}
