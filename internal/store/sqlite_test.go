package store_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/robalobadob/landmark/internal/database"
	"github.com/robalobadob/landmark/internal/game"
	"github.com/robalobadob/landmark/internal/stats"
	"github.com/robalobadob/landmark/internal/store"
)

type SQLiteSuite struct {
	suite.Suite
	db *sql.DB
	kv store.KV
}

func (s *SQLiteSuite) SetupTest() {
	db, err := database.Open(":memory:")
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))
	s.db = db
	s.kv = store.NewSQLite(db)
}

func (s *SQLiteSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *SQLiteSuite) TestPutGetOverwrite() {
	ctx := context.Background()
	s.Require().NoError(s.kv.Put(ctx, "k", []byte("one")))
	s.Require().NoError(s.kv.Put(ctx, "k", []byte("two")))

	v, err := s.kv.Get(ctx, "k")
	s.Require().NoError(err)
	s.Equal("two", string(v))

	var n int
	s.Require().NoError(s.db.QueryRow(`SELECT COUNT(1) FROM kv`).Scan(&n))
	s.Equal(1, n)
}

func (s *SQLiteSuite) TestGetMissing() {
	_, err := s.kv.Get(context.Background(), "nope")
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *SQLiteSuite) TestAdapterOverSQLite() {
	ctx := context.Background()
	a := store.NewAdapter(s.kv, "player-1")

	st := game.New()
	st = game.SubmitGuess(st, game.Landmark{Name: "Big Ben"}, game.RoundLandmark, "big ben")
	a.Save(ctx, store.SlotDaily, "big-ben", "2024-01-03", st)

	got, ok := a.Load(ctx, store.SlotDaily, "big-ben", "2024-01-03")
	s.Require().True(ok)
	s.Equal(st, got)

	a.RecordResult(ctx, stats.GameResult{Date: "2024-01-03", LandmarkID: "big-ben", LandmarkGuessed: true})
	s.Len(a.History(ctx), 1)
}

func TestSQLiteSuite(t *testing.T) {
	suite.Run(t, new(SQLiteSuite))
}
