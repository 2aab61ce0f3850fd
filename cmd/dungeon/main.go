package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/dungeon/internal/config"
	"github.com/udisondev/dungeon/internal/db"
	"github.com/udisondev/dungeon/internal/game/quest"
	"github.com/udisondev/dungeon/internal/level"
	"github.com/udisondev/dungeon/internal/metrics"
	"github.com/udisondev/dungeon/internal/model"
	"github.com/udisondev/dungeon/levels"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("dungeon", flag.ContinueOnError)
	fs.SetOutput(out)
	cfgPath := fs.String("config", "", "config file (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	importMode := fs.Bool("import", false, "store the given level files in the database")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadDungeon(config.ResolvePath(*cfgPath))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	collectors, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	var repo *db.LevelRepository
	if cfg.Database.Enabled {
		version, err := db.RunMigrations(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		repo = database.Levels()
		slog.Info("level database connected",
			"host", cfg.Database.Host,
			"dbname", cfg.Database.DBName,
			"schema_version", version)
	}

	if *importMode {
		if repo == nil {
			return errors.New("-import requires database.enabled")
		}
		return importLevels(ctx, repo, fs.Args(), out)
	}

	var source level.Source = level.ChainSource{
		level.NewDirSource(cfg.LevelsDir),
		level.NewFSSource(levels.FS()),
	}
	watchDir := cfg.LevelsDir
	if repo != nil {
		source = repo
		watchDir = ""
	}

	show := newPresenter(logger)
	loader := level.NewLoader(
		level.WithHooks(show),
		level.WithStrictBounds(cfg.StrictBounds),
		level.WithMetrics(collectors),
		level.WithLogger(logger),
	)
	svc := level.NewService(source, loader, logger)

	names := fs.Args()
	if len(names) == 0 {
		lister, ok := source.(level.Lister)
		if !ok {
			return errors.New("no levels given")
		}
		if names, err = lister.List(ctx); err != nil {
			return fmt.Errorf("listing levels: %w", err)
		}
	}

	var failed int
	for _, name := range names {
		show.reset()
		lvl, err := svc.Load(ctx, name)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", name, err)
			failed++
			continue
		}
		report(out, lvl, show)
	}

	if !cfg.Watch {
		if failed > 0 {
			return fmt.Errorf("%d of %d levels failed to load", failed, len(names))
		}
		return nil
	}
	return serve(ctx, cfg.MetricsAddr, watchDir, svc, show, reg, out)
}

// serve keeps reloading changed levels in watchDir and exposing metrics until ctx is done.
// An empty watchDir or metricsAddr disables that part.
func serve(ctx context.Context, metricsAddr, watchDir string, svc *level.Service, show *presenter, reg *prometheus.Registry, out io.Writer) error {
	g, gctx := errgroup.WithContext(ctx)

	if watchDir != "" {
		if err := watchLevels(gctx, g, watchDir, svc, show, out); err != nil {
			return err
		}
	}

	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	if metricsAddr != "" {
		srv := &http.Server{
			Addr:              metricsAddr,
			Handler:           metricsMux(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			slog.Info("starting metrics server", "addr", metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func watchLevels(ctx context.Context, g *errgroup.Group, dir string, svc *level.Service, show *presenter, out io.Writer) error {
	w, err := level.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("watching levels: %w", err)
	}
	g.Go(func() error {
		defer w.Close()
		slog.Info("watching levels", "dir", dir)
		for {
			select {
			case <-ctx.Done():
				return nil
			case path, ok := <-w.Events:
				if !ok {
					return nil
				}
				show.reset()
				lvl, err := svc.Reload(ctx, filepath.Base(path))
				if err != nil {
					fmt.Fprintf(out, "%s: %v\n", filepath.Base(path), err)
					continue
				}
				report(out, lvl, show)
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				slog.Warn("level watcher error", "error", err)
			}
		}
	})
	return nil
}

func metricsMux(reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	return mux
}

func importLevels(ctx context.Context, repo *db.LevelRepository, paths []string, out io.Writer) error {
	if len(paths) == 0 {
		return errors.New("no level files given")
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		name := filepath.Base(path)
		// Only descriptions that would load are stored.
		if _, err := level.Parse(name, data); err != nil {
			return err
		}
		rev, changed, err := repo.Save(ctx, name, level.FormatOf(name), data)
		if err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
		status := "stored"
		if !changed {
			status = "unchanged"
		}
		fmt.Fprintf(out, "%s: %s (revision %d)\n", name, status, rev)
	}
	return nil
}

func report(out io.Writer, lvl *level.Level, show *presenter) {
	fmt.Fprintf(out, "%s: %dx%d, %d entities (%s)\n",
		lvl.Name, lvl.Dungeon.Width(), lvl.Dungeon.Height(), lvl.Dungeon.Count(), summarize(show.created))
	fmt.Fprintf(out, "  goal: %s\n", lvl.Goal.Description())
	if lvl.Complete() {
		fmt.Fprintln(out, "  status: complete")
		return
	}
	pending := quest.Pending(lvl.Goal, lvl.Dungeon)
	parts := make([]string, len(pending))
	for i, m := range pending {
		parts[i] = m.Description()
	}
	fmt.Fprintf(out, "  status: pending: %s\n", strings.Join(parts, "; "))
}

func summarize(created map[model.Kind]int) string {
	var parts []string
	for _, kind := range model.Kinds() {
		if n := created[kind]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", kind, n))
		}
	}
	return strings.Join(parts, " ")
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(name string) slog.Level {
	switch name {
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
