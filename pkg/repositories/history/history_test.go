package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fadedpez/parlor/pkg/db"
	"github.com/fadedpez/parlor/pkg/entities"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite runs the same behaviour checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (Repository, func())
	repo    Repository
	cleanup func()
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (Repository, func()) {
			return NewMemoryRepository(), func() {}
		},
	})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (Repository, func()) {
			conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "parlor.db"), nil)
			if err != nil {
				t.Fatalf("open sqlite: %v", err)
			}
			return NewSQLiteRepository(conn), func() { conn.Close() }
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo, s.cleanup = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.repo.Close())
	s.cleanup()
}

func (s *RepositoryTestSuite) save(game string, outcome entities.Outcome, delta int64, at time.Time) *entities.RoundRecord {
	record := &entities.RoundRecord{
		ID:          game + "-" + at.Format("150405.000000"),
		Game:        game,
		Outcome:     outcome,
		Delta:       delta,
		ScoreAfter:  delta,
		Detail:      "detail",
		CompletedAt: at,
	}
	s.Require().NoError(s.repo.SaveRound(context.Background(), record))
	return record
}

func (s *RepositoryTestSuite) TestRecentRoundsNewestFirst() {
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	first := s.save(entities.GameBlackjack, entities.OutcomeWin, 10, base)
	second := s.save(entities.GameBlackjack, entities.OutcomeLoss, -10, base.Add(time.Second))
	third := s.save(entities.GameBlackjack, entities.OutcomePush, 0, base.Add(2*time.Second))
	s.save(entities.GameNumberGuesser, entities.OutcomeWin, 1, base.Add(3*time.Second))

	rounds, err := s.repo.RecentRounds(context.Background(), entities.GameBlackjack, 2)
	s.Require().NoError(err)
	s.Require().Len(rounds, 2)
	s.Equal(third.ID, rounds[0].ID)
	s.Equal(second.ID, rounds[1].ID)
	s.Equal(entities.OutcomePush, rounds[0].Outcome)
	s.True(third.CompletedAt.Equal(rounds[0].CompletedAt), "completion time should round trip")

	all, err := s.repo.RecentRounds(context.Background(), entities.GameBlackjack, 10)
	s.Require().NoError(err)
	s.Len(all, 3)
	s.Equal(first.ID, all[2].ID)
}

func (s *RepositoryTestSuite) TestRecentRoundsEmpty() {
	rounds, err := s.repo.RecentRounds(context.Background(), entities.GameBlackjack, 5)
	s.Require().NoError(err)
	s.NotNil(rounds)
	s.Empty(rounds)
}

func (s *RepositoryTestSuite) TestStats() {
	base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s.save(entities.GameBlackjack, entities.OutcomeWin, 10, base)
	s.save(entities.GameBlackjack, entities.OutcomeWin, 10, base.Add(time.Second))
	s.save(entities.GameBlackjack, entities.OutcomeLoss, -10, base.Add(2*time.Second))
	s.save(entities.GameBlackjack, entities.OutcomePush, 0, base.Add(3*time.Second))
	s.save(entities.GameNumberGuesser, entities.OutcomeLoss, 0, base.Add(4*time.Second))

	stats, err := s.repo.Stats(context.Background(), entities.GameBlackjack)
	s.Require().NoError(err)
	s.Equal(entities.GameBlackjack, stats.Game)
	s.Equal(4, stats.Rounds)
	s.Equal(2, stats.Wins)
	s.Equal(1, stats.Losses)
	s.Equal(1, stats.Pushes)
	s.Equal(int64(10), stats.Net)

	empty, err := s.repo.Stats(context.Background(), "solitaire")
	s.Require().NoError(err)
	s.Equal(0, empty.Rounds)
}
