package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/dungeon/internal/level"
)

// ErrLevelNotFound is returned for names with no stored level.
// It matches level.ErrLevelNotFound.
var ErrLevelNotFound = fmt.Errorf("stored %w", level.ErrLevelNotFound)

// StoredLevel is one row of the levels table.
type StoredLevel struct {
	Name      string
	Format    level.Format
	Checksum  string
	Revision  int
	UpdatedAt time.Time
}

// LevelRepository stores raw level descriptions. It implements level.Source.
type LevelRepository struct {
	db *pgxpool.Pool
}

var (
	_ level.Source = (*LevelRepository)(nil)
	_ level.Lister = (*LevelRepository)(nil)
)

// NewLevelRepository creates a new LevelRepository.
func NewLevelRepository(db *pgxpool.Pool) *LevelRepository {
	return &LevelRepository{db: db}
}

// Save stores data under name. Unchanged content keeps its revision and reports changed=false.
func (r *LevelRepository) Save(ctx context.Context, name string, format level.Format, data []byte) (revision int, changed bool, err error) {
	sum := Checksum(data)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "level", name, "error", err)
		}
	}()

	var current string
	err = tx.QueryRow(ctx,
		`SELECT checksum, revision FROM levels WHERE name = $1 FOR UPDATE`, name,
	).Scan(&current, &revision)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		revision = 1
		_, err = tx.Exec(ctx,
			`INSERT INTO levels (name, format, data, checksum, revision) VALUES ($1, $2, $3, $4, $5)`,
			name, string(format), data, sum, revision)
		if err != nil {
			return 0, false, fmt.Errorf("inserting level %s: %w", name, err)
		}
	case err != nil:
		return 0, false, fmt.Errorf("querying level %s: %w", name, err)
	case current == sum:
		return revision, false, nil
	default:
		revision++
		_, err = tx.Exec(ctx,
			`UPDATE levels SET format = $2, data = $3, checksum = $4, revision = $5, updated_at = now()
			 WHERE name = $1`,
			name, string(format), data, sum, revision)
		if err != nil {
			return 0, false, fmt.Errorf("updating level %s: %w", name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, false, fmt.Errorf("commit transaction: %w", err)
	}
	slog.Info("level stored", "level", name, "revision", revision, "checksum", sum[:12])
	return revision, true, nil
}

// Read returns the stored description for name.
func (r *LevelRepository) Read(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM levels WHERE name = $1`, name).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("reading level %s: %w", name, ErrLevelNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", name, err)
	}
	return data, nil
}

// Stat returns metadata for name without the payload.
func (r *LevelRepository) Stat(ctx context.Context, name string) (StoredLevel, error) {
	var (
		sl     StoredLevel
		format string
	)
	err := r.db.QueryRow(ctx,
		`SELECT name, format, checksum, revision, updated_at FROM levels WHERE name = $1`, name,
	).Scan(&sl.Name, &format, &sl.Checksum, &sl.Revision, &sl.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return StoredLevel{}, fmt.Errorf("stat level %s: %w", name, ErrLevelNotFound)
	}
	if err != nil {
		return StoredLevel{}, fmt.Errorf("stat level %s: %w", name, err)
	}
	sl.Format = level.Format(format)
	return sl, nil
}

// List returns stored level names, sorted.
func (r *LevelRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT name FROM levels ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing levels: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scanning level names: %w", err)
	}
	return names, nil
}

// Delete removes name. Deleting a missing level returns ErrLevelNotFound.
func (r *LevelRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM levels WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deleting level %s: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleting level %s: %w", name, ErrLevelNotFound)
	}
	return nil
}
