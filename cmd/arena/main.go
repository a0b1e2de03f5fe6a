package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/skirmish/internal/config"
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/db"
	"github.com/udisondev/skirmish/internal/game"
	"github.com/udisondev/skirmish/internal/game/combat"
	"github.com/udisondev/skirmish/internal/model"
	"github.com/udisondev/skirmish/internal/profile"
)

const (
	DefaultConfigPath = "config/arena.yaml"
	DefaultEnvPath    = ".env"
)

type flags struct {
	config   string
	player   string
	class    string
	location string
	auto     bool
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", DefaultConfigPath, "path to arena config")
	flag.StringVar(&f.player, "player", "", "player name (required)")
	flag.StringVar(&f.class, "class", "warrior", "hero class: "+classChoices())
	flag.StringVar(&f.location, "location", data.LocationMysticForest, "location: "+locationChoices())
	flag.BoolVar(&f.auto, "auto", false, "play every round without waiting for Enter")
	flag.Parse()

	if err := run(context.Background(), f); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, f flags) error {
	if f.player == "" {
		return errors.New("-player is required")
	}

	if err := config.LoadDotEnv(DefaultEnvPath); err != nil {
		return err
	}
	cfgPath := f.config
	if p := os.Getenv("SKIRMISH_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadArena(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(log)
	log.Info("arena starting", "store", cfg.Store.Backend, "log_level", cfg.LogLevel)

	store, closeStore, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		return err
	}
	defer closeStore()

	session := game.NewSession(
		profile.NewCache(store, log),
		cfg.Game,
		rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		log,
	)
	session.SetRoundObserver(func(r combat.Round) {
		stun := ""
		if r.EnemyStunned {
			stun = " (enemy stunned)"
		}
		fmt.Printf("round %d: hero %d hp, enemy %d hp%s\n", r.Number, r.HeroHealth, r.EnemyHealth, stun)
	})
	if !f.auto {
		session.SetPause(waitForEnter(os.Stdin, os.Stdout))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case sig := <-sigCh:
			log.Info("shutting down", "signal", sig)
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		defer cancel()

		res, err := session.Play(gctx, game.Request{
			Player:   f.player,
			Class:    f.class,
			Location: f.location,
		})
		if err != nil {
			return err
		}
		printResult(os.Stdout, res)
		return nil
	})

	return g.Wait()
}

// openStore builds the configured profile store. The returned func releases
// its resources.
func openStore(ctx context.Context, cfg config.Store, log *slog.Logger) (profile.Repository, func(), error) {
	switch strings.ToLower(cfg.Backend) {
	case config.BackendSQLite:
		sqlDB, err := db.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite: %w", err)
		}
		log.Info("sqlite store opened", "path", cfg.SQLitePath)
		return db.NewSQLiteProfileRepository(sqlDB, log), func() { _ = sqlDB.Close() }, nil

	case config.BackendPostgres:
		dsn := cfg.Database.DSN()
		database, err := db.New(ctx, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := db.RunMigrations(ctx, dsn); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}
		log.Info("database connected", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)
		return database.Profiles(log), database.Close, nil

	default:
		fs, err := profile.NewFileStore(cfg.FilePath, log)
		if err != nil {
			return nil, nil, fmt.Errorf("opening score file: %w", err)
		}
		log.Info("score file opened", "path", fs.Path())
		return fs, func() {}, nil
	}
}

// waitForEnter returns a pause hook that blocks until a line is read from in
// or ctx is done. Once in is exhausted every pause returns immediately.
func waitForEnter(in io.Reader, out io.Writer) func(ctx context.Context) error {
	var readErr error
	lines := make(chan struct{})
	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			if _, err := r.ReadString('\n'); err != nil {
				if !errors.Is(err, io.EOF) {
					readErr = err
				}
				return
			}
			lines <- struct{}{}
		}
	}()

	return func(ctx context.Context) error {
		fmt.Fprint(out, "Press Enter to continue...")
		select {
		case _, ok := <-lines:
			if !ok {
				return readErr
			}
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func classChoices() string {
	var names []string
	for _, c := range model.AllClasses() {
		names = append(names, strings.ToLower(c.String()))
	}
	return strings.Join(names, ", ")
}

func locationChoices() string {
	var keys []string
	for _, l := range data.AllLocations() {
		keys = append(keys, strconv.Quote(l.Key))
	}
	return strings.Join(keys, ", ")
}

func printResult(w io.Writer, res game.Result) {
	enemy := res.Enemy
	if res.Strong {
		enemy += " (strong)"
	}
	hero := fmt.Sprintf("%s the %s (%s, %s)", res.Hero, res.Class, res.Weapon, res.Armor)
	if res.Outcome.Victory {
		fmt.Fprintf(w, "%s defeated %s at %s in %d rounds\n", hero, enemy, res.Location, res.Outcome.Rounds)
	} else {
		fmt.Fprintf(w, "%s fell to %s at %s after %d rounds\n", hero, enemy, res.Location, res.Outcome.Rounds)
	}
	fmt.Fprintf(w, "score: %d (was %d)\n", res.Profile.Score, res.Previous.Score)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
