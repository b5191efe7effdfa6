package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/landmark/internal/config"
	"github.com/robalobadob/landmark/internal/daily"
	"github.com/robalobadob/landmark/internal/database"
	"github.com/robalobadob/landmark/internal/httpserver"
	"github.com/robalobadob/landmark/internal/landmarks"
	"github.com/robalobadob/landmark/internal/session"
	"github.com/robalobadob/landmark/internal/store"
	"github.com/robalobadob/landmark/internal/users"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if !cfg.Production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	catalog, err := landmarks.Load(cfg.LandmarksFile, cfg.DailySalt)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load landmarks")
	}
	clock, err := daily.NewZoneClock(cfg.TimeZone)
	if err != nil {
		log.Fatal().Err(err).Str("zone", cfg.TimeZone).Msg("unknown time zone")
	}

	deps := httpserver.Deps{Config: cfg, Catalog: catalog, Clock: clock}
	opts := session.Options{Catalog: catalog, Clock: clock, ShareURL: cfg.ShareURL}

	if cfg.InMemory() {
		log.Warn().Msg("DB_PATH=memory: progress is lost on restart, accounts and tally disabled")
		deps.KV = store.NewMemory()
	} else {
		db := mustOpenDB(cfg.DBPath)
		defer db.Close()
		deps.KV = store.NewSQLite(db)
		deps.Tally = daily.NewStore(db)
		deps.Users = users.NewStore(db)
		opts.Tally = deps.Tally
	}
	opts.KV = deps.KV
	deps.Games = session.New(opts)

	srv := httpserver.New(deps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().
		Str("addr", cfg.Addr()).
		Int("landmarks", catalog.Len()).
		Str("today", clock.TodayKey()).
		Msg("starting landmark server")
	if err := srv.Start(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func mustOpenDB(path string) *sql.DB {
	db, err := database.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("open database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}
	return db
}
