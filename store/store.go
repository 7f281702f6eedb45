// Package store persists generator snapshots in SQLite. A snapshot is the
// config plus the generator state before the first draw, which is enough to
// rebuild a map even when it was seeded from the clock.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lixenwraith/roomgen/maze"
	"github.com/lixenwraith/roomgen/prng"
)

//go:embed schema.sql
var schema string

// ErrNotFound is returned when no snapshot has the requested name
var ErrNotFound = errors.New("snapshot not found")

type Snapshot struct {
	Name      string
	Config    maze.Config
	State     [2]uint64
	CreatedAt time.Time
}

// FromResult captures a generated map under name
func FromResult(name string, cfg maze.Config, res maze.Result) Snapshot {
	cfg.Seed = res.Seed
	return Snapshot{Name: name, Config: cfg, State: res.State}
}

// Replay regenerates the snapshot's map from its stored state
func (s Snapshot) Replay() maze.Result {
	return maze.GenerateWith(s.Config, prng.FromState(s.State[0], s.State[1]))
}

// Store persists snapshots in SQLite
type Store struct {
	sqlDB *sql.DB
}

// Open opens or creates the database at path and applies the schema
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save inserts or replaces a snapshot by name
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := strings.TrimSpace(snap.Name)
	if name == "" {
		return fmt.Errorf("snapshot name is required")
	}
	if err := snap.Config.Validate(); err != nil {
		return fmt.Errorf("snapshot %q: %w", name, err)
	}
	if snap.State[0] == 0 && snap.State[1] == 0 {
		return fmt.Errorf("snapshot %q: zero generator state", name)
	}
	createdAt := snap.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	cfg := snap.Config
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT OR REPLACE INTO snapshots (
		   name, seed, rooms_x, rooms_y, room_w, room_h,
		   coarse_loss, fine_loss, state0, state1, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		name, cfg.Seed, cfg.RoomsX, cfg.RoomsY, cfg.RoomW, cfg.RoomH,
		cfg.CoarseLoss, cfg.FineLoss,
		int64(snap.State[0]), int64(snap.State[1]),
		createdAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", name, err)
	}
	return nil
}

const selectColumns = `SELECT name, seed, rooms_x, rooms_y, room_w, room_h,
	coarse_loss, fine_loss, state0, state1, created_at FROM snapshots`

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (Snapshot, error) {
	var (
		snap      Snapshot
		s0, s1    int64
		createdAt int64
	)
	cfg := &snap.Config
	if err := row.Scan(&snap.Name, &cfg.Seed, &cfg.RoomsX, &cfg.RoomsY, &cfg.RoomW, &cfg.RoomH,
		&cfg.CoarseLoss, &cfg.FineLoss, &s0, &s1, &createdAt); err != nil {
		return Snapshot{}, err
	}
	snap.State = [2]uint64{uint64(s0), uint64(s1)}
	snap.CreatedAt = time.UnixMilli(createdAt).UTC()
	return snap, nil
}

// Load returns the snapshot stored under name
func (s *Store) Load(ctx context.Context, name string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, selectColumns+` WHERE name = ?`, strings.TrimSpace(name))
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("load %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load %q: %w", name, err)
	}
	return snap, nil
}

// Exists reports whether a snapshot is stored under name
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.Load(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// List returns all snapshots, newest first
func (s *Store) List(ctx context.Context) ([]Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, selectColumns+` ORDER BY created_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return out, nil
}

// Delete removes a snapshot. Missing names report ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM snapshots WHERE name = ?`, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %q: %w", name, ErrNotFound)
	}
	return nil
}
