package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/iamasit07/4-in-a-row/simulator/internal/domain"
)

type TallyStoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *TallyStore
	ctx   context.Context
}

func TestTallyStoreSuite(t *testing.T) {
	suite.Run(t, new(TallyStoreSuite))
}

func (s *TallyStoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.store = NewTallyStore(client)
	s.ctx = context.Background()
}

func (s *TallyStoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *TallyStoreSuite) TestRecordAndLoad() {
	for _, result := range []domain.Result{
		domain.Won(domain.Player1),
		domain.Won(domain.Player1),
		domain.Won(domain.Player2),
		domain.Drawn(),
	} {
		s.Require().NoError(s.store.Record(s.ctx, "minimax", "random", result))
	}

	counts, err := s.store.Load(s.ctx, "minimax", "random")
	s.Require().NoError(err)
	s.Equal(Counts{Player1Wins: 2, Player2Wins: 1, Draws: 1, Games: 4}, counts)
}

func (s *TallyStoreSuite) TestMatchupsAreOrdered() {
	s.Require().NoError(s.store.Record(s.ctx, "minimax", "random", domain.Won(domain.Player1)))

	counts, err := s.store.Load(s.ctx, "random", "minimax")
	s.Require().NoError(err)
	s.Equal(Counts{}, counts)
}

func (s *TallyStoreSuite) TestLoadUnknownMatchup() {
	counts, err := s.store.Load(s.ctx, "nobody", "else")
	s.Require().NoError(err)
	s.Equal(Counts{}, counts)
}

func (s *TallyStoreSuite) TestRecordRejectsUnfinishedGames() {
	err := s.store.Record(s.ctx, "minimax", "random", domain.InProgress())
	s.Error(err)
	s.False(s.mini.Exists(tallyKey("minimax", "random")))
}

func (s *TallyStoreSuite) TestKeyLayout() {
	s.Require().NoError(s.store.Record(s.ctx, "threat", "minimax", domain.Drawn()))

	s.Equal("1", s.mini.HGet("c4sim:tally:threat:minimax", "draw"))
	s.Equal("1", s.mini.HGet("c4sim:tally:threat:minimax", "games"))
}

func (s *TallyStoreSuite) TestReset() {
	s.Require().NoError(s.store.Record(s.ctx, "minimax", "random", domain.Drawn()))
	s.Require().NoError(s.store.Reset(s.ctx, "minimax", "random"))

	counts, err := s.store.Load(s.ctx, "minimax", "random")
	s.Require().NoError(err)
	s.Equal(Counts{}, counts)
}

func (s *TallyStoreSuite) TestLoadCorruptCounter() {
	s.mini.HSet("c4sim:tally:a:b", "games", "many")

	_, err := s.store.Load(s.ctx, "a", "b")
	s.Error(err)
}

func (s *TallyStoreSuite) TestInitRedis() {
	client, err := InitRedis(s.ctx, s.mini.Addr(), "")
	s.Require().NoError(err)
	s.NoError(client.Close())

	client, err = InitRedis(s.ctx, "redis://"+s.mini.Addr()+"/0", "")
	s.Require().NoError(err)
	s.NoError(client.Close())

	_, err = InitRedis(s.ctx, "redis://%zz", "")
	s.Error(err)
}
