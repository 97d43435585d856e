package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wotr-planner/internal/clients/catalog"
	"github.com/KirkDiggler/wotr-planner/internal/config"
	"github.com/KirkDiggler/wotr-planner/internal/engine"
	"github.com/KirkDiggler/wotr-planner/internal/errors"
	"github.com/KirkDiggler/wotr-planner/internal/orchestrators/character"
	"github.com/KirkDiggler/wotr-planner/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/wotr-planner/internal/redis"
	characterrepo "github.com/KirkDiggler/wotr-planner/internal/repositories/character"
	"github.com/KirkDiggler/wotr-planner/internal/services/roster"
)

// app carries flag values and the lazily built dependencies shared by every
// subcommand
type app struct {
	envFile    string
	dataDir    string
	storage    string
	sqlitePath string
	redisAddr  string
	logLevel   string
	trace      bool

	cfg     *config.Config
	catalog *catalog.Catalog
	engine  engine.Engine
	bus     events.EventBus
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "planner",
		Short: "Character planner for Pathfinder: Wrath of the Righteous",
		Long: `Plan a character build: pick race, heritage, class, background, ability
scores, skill ranks and feats, and see every derived value the rules produce.
Choices the rules refuse are reported instead of applied.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", ".env", "env file read before the environment")
	pf.StringVar(&a.dataDir, "data-dir", "", "directory holding the JSON catalogs (WOTR_DATA_DIR)")
	pf.StringVar(&a.storage, "storage", "", "saved build storage: sqlite, redis or none (WOTR_STORAGE)")
	pf.StringVar(&a.sqlitePath, "sqlite-path", "", "SQLite database file (WOTR_SQLITE_PATH)")
	pf.StringVar(&a.redisAddr, "redis-addr", "", "Redis address (WOTR_REDIS_ADDR)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (WOTR_LOG_LEVEL)")
	pf.BoolVar(&a.trace, "trace", false, "print every character change notification")

	root.AddCommand(
		a.showCmd(),
		a.featsCmd(),
		a.heritagesCmd(),
		a.saveCmd(),
		a.loadCmd(),
		a.listCmd(),
		a.deleteCmd(),
	)

	return root
}

// setup loads configuration, applies flag overrides and installs the logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("storage") {
		cfg.Storage = config.Storage(a.storage)
	}
	if flags.Changed("sqlite-path") {
		cfg.SQLitePath = a.sqlitePath
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = a.redisAddr
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	a.bus = events.NewBus()
	if a.trace {
		out := cmd.ErrOrStderr()
		for _, eventType := range character.ChangeEvents {
			a.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
				fmt.Fprintf(out, "event %s on %s\n", e.Type(), e.Source().GetID())
				return nil
			})
		}
	}

	return nil
}

// rules loads the catalogs and the rules engine on first use
func (a *app) rules(ctx context.Context) error {
	if a.catalog != nil {
		return nil
	}

	cat, err := catalog.Load(ctx, a.cfg.DataDir)
	if err != nil {
		return errors.Wrap(err, "failed to load catalogs").WithMeta("data_dir", a.cfg.DataDir)
	}
	e, err := engine.New(&engine.Config{})
	if err != nil {
		return err
	}

	a.catalog = cat
	a.engine = e
	return nil
}

// repository opens the configured build store. The returned func releases it.
func (a *app) repository(ctx context.Context) (characterrepo.Repository, func(), error) {
	switch a.cfg.Storage {
	case config.StorageSQLite:
		repo, err := characterrepo.NewSQLite(ctx, &characterrepo.SQLiteConfig{Path: a.cfg.SQLitePath})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	case config.StorageRedis:
		client, err := redisclient.NewClient(a.cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create redis client")
		}
		repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil
	default:
		return nil, nil, errors.FailedPrecondition("storage is disabled; set --storage or WOTR_STORAGE")
	}
}

// roster wires the roster service over the configured store
func (a *app) roster(ctx context.Context) (roster.Service, func(), error) {
	if err := a.rules(ctx); err != nil {
		return nil, nil, err
	}
	repo, closeRepo, err := a.repository(ctx)
	if err != nil {
		return nil, nil, err
	}

	svc, err := roster.New(&roster.Config{
		Repository:   repo,
		Catalog:      a.catalog,
		Engine:       a.engine,
		EventBus:     a.bus,
		IDGenerator:  idgen.NewUUID("char"),
		DefaultRace:  a.cfg.DefaultRace,
		DefaultClass: a.cfg.DefaultClass,
	})
	if err != nil {
		closeRepo()
		return nil, nil, err
	}
	return svc, closeRepo, nil
}

// newCharacter builds an unsaved character with the configured baseline
func (a *app) newCharacter(ctx context.Context) (*character.Character, error) {
	if err := a.rules(ctx); err != nil {
		return nil, err
	}
	return character.New(&character.Config{
		Catalog:   a.catalog,
		Engine:    a.engine,
		EventBus:  a.bus,
		RaceName:  a.cfg.DefaultRace,
		ClassName: a.cfg.DefaultClass,
	})
}
