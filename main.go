package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/bench"
	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

const usage = `usage: go-solver [command] [flags]

commands:
  serve               run the HTTP API (default)
  solve TARGET        solve one target and print every turn
  bench [-n 150] [-seed 21] [-workers N] [-save=true]
                      solve a seeded sample of targets and report the mean score
  token SUBJECT       print a bearer token for the bench routes
  hash PASSWORD       print a bcrypt hash for ADMIN_PASSWORD_HASH
`

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	cfg.Solver.Logger = log.Logger

	cmd, args := "serve", os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case "serve":
		err = serve(cfg)
	case "solve":
		err = solve(cfg, args)
	case "bench":
		err = runBench(ctx, cfg, args)
	case "token":
		err = token(cfg, args)
	case "hash":
		err = hash(args)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("failed")
	}
}

func serve(cfg config.Config) error {
	list, err := words.Load(cfg.WordsFile)
	if err != nil {
		return err
	}
	var rs *results.Store
	if db, err := results.Open(cfg.DBPath); err != nil {
		log.Warn().Err(err).Str("db", cfg.DBPath).Msg("results store disabled")
	} else {
		defer db.Close()
		rs = results.NewStore(db)
	}

	srv := httpserver.New(httpserver.Deps{
		Games:        store.NewMemoryStore(0),
		Words:        list,
		Results:      rs,
		Solver:       cfg.Solver,
		Seed:         cfg.Seed,
		BenchWorkers: cfg.BenchWorker,
		Auth: httpserver.AuthConfig{
			Secret:    cfg.JWTSecret,
			Expiry:    cfg.JWTExpiry,
			AdminUser: cfg.AdminUser,
			AdminHash: cfg.AdminHash,
			Secure:    cfg.CookieSecure,
		},
		DailySalt:    cfg.DailySalt,
		ClientOrigin: cfg.ClientOrigin,
	})
	if cfg.JWTSecret == config.DevSecret {
		log.Warn().Msg("JWT_SECRET not set, using the development secret")
	}
	log.Info().
		Str("port", cfg.Port).
		Int("words", list.Len()).
		Stringer("policy", cfg.Solver.Policy).
		Msg("starting go-solver")
	return srv.Start(":" + cfg.Port)
}

func solve(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	seed := fs.Int64("seed", cfg.Seed, "sampler seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("solve: want exactly one TARGET")
	}
	target, err := game.Encode(strings.ToUpper(fs.Arg(0)))
	if err != nil {
		return err
	}
	list, err := words.Load(cfg.WordsFile)
	if err != nil {
		return err
	}

	res, err := solver.Run(list.Words(), target, cfg.Solver, solver.NewRandSampler(*seed))
	for i, st := range res.Steps {
		fmt.Printf("%2d  %s  %s  pool=%-4d %s\n", i+1, st.Guess, st.Mask, st.PoolSize, st.Strategy)
	}
	if err != nil {
		return err
	}
	if res.Won {
		fmt.Printf("solved %s in %d\n", res.Target, res.Turns)
	} else {
		fmt.Printf("gave up on %s after %d\n", res.Target, res.Turns)
	}
	return nil
}

func runBench(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	n := fs.Int("n", httpserver.DefaultBenchCount, "number of targets")
	seed := fs.Int64("seed", cfg.Seed, "seed for target sampling and samplers")
	workers := fs.Int("workers", cfg.BenchWorker, "concurrent sessions")
	save := fs.Bool("save", true, "persist the run to DB_PATH")
	if err := fs.Parse(args); err != nil {
		return err
	}
	list, err := words.Load(cfg.WordsFile)
	if err != nil {
		return err
	}
	targets := list.Sample(*n, *seed)

	// Per-turn debug output would interleave with the bar.
	cfg.Solver.Logger = log.Logger.Level(zerolog.WarnLevel)

	bar := progressbar.NewOptions(len(targets),
		progressbar.OptionSetDescription("solving"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	sum, outcomes, err := bench.Run(ctx, list.Words(), targets, cfg.Solver, bench.Options{
		Workers:    *workers,
		Seed:       *seed,
		WordSource: list.Source,
		OnResult:   func(results.Outcome) { _ = bar.Add(1) },
	})
	_ = bar.Finish()
	if err != nil {
		return err
	}

	fmt.Printf("targets=%d mean=%.4f wins=%d failures=%d elapsed=%dms\n",
		sum.Targets, sum.Mean, sum.Wins, sum.Failures, sum.ElapsedMs)
	for turns := 1; turns <= cfg.Solver.MaxTurns; turns++ {
		if c := sum.Histogram[turns]; c > 0 {
			fmt.Printf("  %2d  %s %d\n", turns, strings.Repeat("#", (c*40+len(targets)-1)/len(targets)), c)
		}
	}

	if !*save {
		return nil
	}
	db, err := results.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := results.NewStore(db).SaveRun(ctx, sum.Run, outcomes); err != nil {
		return err
	}
	log.Info().Str("run", sum.ID).Str("db", cfg.DBPath).Msg("bench run saved")
	return nil
}

func token(cfg config.Config, args []string) error {
	if len(args) != 1 {
		return errors.New("token: want exactly one SUBJECT")
	}
	tok, exp, err := httpserver.SignToken(cfg.JWTSecret, args[0], cfg.JWTExpiry)
	if err != nil {
		return err
	}
	fmt.Println(tok)
	log.Info().Time("expires", exp).Msg("token issued")
	return nil
}

func hash(args []string) error {
	if len(args) != 1 {
		return errors.New("hash: want exactly one PASSWORD")
	}
	h, err := httpserver.HashPassword(args[0])
	if err != nil {
		return err
	}
	fmt.Println(h)
	return nil
}
