package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/console"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func main() {
	serve := flag.Bool("serve", false, "run the HTTP session API instead of the console solver")
	answer := flag.String("answer", "", "simulate a solve against this answer")
	daily := flag.Bool("daily", false, "simulate a solve against today's daily answer")
	seedDB := flag.String("seed-db", "", "write the loaded dictionary into this SQLite file and exit")
	flag.Parse()

	_ = godotenv.Load()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx := context.Background()
	src := words.SourceFromEnv()
	dict, err := words.Load(ctx, src)
	if err != nil {
		log.Fatal().Err(err).Str("db", src.DBPath).Str("file", src.FilePath).Msg("failed to load dictionary")
	}
	log.Info().Int("words", dict.Len()).Msg("dictionary loaded")

	cfg, err := solver.NewConfig(dict)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build solver config")
	}

	switch {
	case *seedDB != "":
		runSeed(ctx, *seedDB, dict)
	case *serve:
		runServer(cfg)
	case *daily:
		ws := dict.Words()
		idx := game.DailyIndex(time.Now(), getEnv("DAILY_SALT", "local_dev_salt"), len(ws))
		runSimulate(cfg, ws[idx])
	case *answer != "":
		runSimulate(cfg, *answer)
	default:
		runConsole(cfg)
	}
}

func runSeed(ctx context.Context, path string, dict *words.Dictionary) {
	db, err := words.OpenDB(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("open database")
	}
	defer db.Close()
	n, err := words.SeedDB(ctx, db, dict)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("seed database")
	}
	log.Info().Int("inserted", n).Str("path", path).Msg("dictionary seeded")
}

func runServer(cfg *solver.Config) {
	srv := httpserver.New(cfg, store.NewMemoryStore(), httpserver.OptionsFromEnv())
	port := getEnv("PORT", "5176")
	log.Info().Str("port", port).Msg("starting go-solver")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func runSimulate(cfg *solver.Config, answer string) {
	tr, err := solver.Simulate(cfg, answer)
	if err != nil && tr == nil {
		log.Fatal().Err(err).Str("answer", answer).Msg("simulation failed")
	}
	for _, st := range tr.Steps {
		log.Info().Int("attempt", st.Attempt).Str("guess", st.Guess).
			Str("feedback", st.Feedback.String()).Int("candidates", st.Remaining).Msg("step")
	}
	ev := log.Info()
	if tr.Outcome != solver.Solved {
		ev = log.Warn()
	}
	ev.Str("answer", tr.Answer).Str("found", tr.Found).Str("outcome", tr.Outcome.String()).
		Int("attempts", len(tr.Steps)).Err(err).Msg("simulation finished")
}

func runConsole(cfg *solver.Config) {
	c := console.New(os.Stdin, os.Stdout)
	c.Color = os.Getenv("NO_COLOR") == ""
	err := c.Run(solver.NewSession(cfg), cfg.Dictionary)
	switch {
	case err == nil:
	case errors.Is(err, solver.ErrContradiction):
		log.Error().Err(err).Msg("contradictory feedback")
		os.Exit(2)
	default:
		log.Fatal().Err(err).Msg("console solver stopped")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
