package timeline

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
	"github.com/msto63/gregor/foundation/utils/filex"
	"github.com/msto63/gregor/pkg/core/logging"
	"github.com/msto63/gregor/pkg/core/version"
	"github.com/msto63/gregor/pkg/datetime"
)

// Config holds the SQLite store configuration
type Config struct {
	// Path of the database file; parent directories are created
	Path string

	// Clock stamps Created; nil means the process clock
	Clock datetime.ClockSource

	// Logger receives debug timings and failures; nil means a default logger
	Logger *logging.Logger
}

// DefaultConfig returns a configuration for the default database location
func DefaultConfig() Config {
	return Config{
		Path: filex.UserDataPath("gregor", "timeline.db"),
	}
}

// SQLiteStore implements Store on a SQLite database
type SQLiteStore struct {
	db    *sql.DB
	mu    sync.RWMutex
	clock datetime.ClockSource
	log   *logging.Logger
}

// NewSQLiteStore opens (and if needed creates) the database at cfg.Path
func NewSQLiteStore(cfg Config) (*SQLiteStore, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultConfig().Path
	}
	if cfg.Clock == nil {
		cfg.Clock = datetime.Clock()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.New("timeline")
	}

	if err := filex.EnsureParentDir(cfg.Path, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to open database").
			WithCode(mdwerror.CodeConnectionFailed).
			WithOperation("timeline.NewSQLiteStore").
			WithDetail("path", cfg.Path)
	}

	store := &SQLiteStore{db: db, clock: cfg.Clock, log: cfg.Logger}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	store.log.Debug("timeline opened", "path", cfg.Path)
	return store, nil
}

// initSchema creates the tables and records the schema version
func (s *SQLiteStore) initSchema() error {
	var current int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&current); err != nil {
		return dbError(err, "failed to read schema version", "timeline.initSchema")
	}
	if current > version.TimelineSchema {
		return mdwerror.Newf("database schema %d is newer than supported schema %d", current, version.TimelineSchema).
			WithCode(mdwerror.CodeDatabaseError).
			WithOperation("timeline.initSchema")
	}

	schema := `
	CREATE TABLE IF NOT EXISTS marks (
		id TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		at_ms INTEGER NOT NULL,
		tz_offset INTEGER NOT NULL DEFAULT 0,
		created_ms INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_marks_at ON marks(at_ms);
	CREATE INDEX IF NOT EXISTS idx_marks_label ON marks(label);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return dbError(err, "failed to create schema", "timeline.initSchema")
	}

	// PRAGMA does not accept bound parameters
	if _, err := s.db.Exec("PRAGMA user_version = " + strconv.Itoa(version.TimelineSchema)); err != nil {
		return dbError(err, "failed to write schema version", "timeline.initSchema")
	}
	return nil
}

// Add records a new mark with a random id
func (s *SQLiteStore) Add(ctx context.Context, label string, at datetime.Datetime) (*Mark, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, mdwerror.New("mark label must not be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timeline.Add")
	}

	timer := s.log.StartTimer("timeline.add").WithField("label", label)

	mark := &Mark{
		ID:      uuid.New().String(),
		Label:   label,
		At:      truncate(at),
		Created: truncate(datetime.NowFrom(s.clock, datetime.UTC)),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO marks (id, label, at_ms, tz_offset, created_ms)
		VALUES (?, ?, ?, ?, ?)
	`, mark.ID, mark.Label, mark.At, mark.At.Timezone().UTCOffset(), mark.Created)
	if err != nil {
		err = dbError(err, "failed to insert mark", "timeline.Add")
		timer.StopWithError(err)
		return nil, err
	}

	timer.Stop()
	return mark, nil
}

// Get returns the mark with the given id; a missing mark fails with
// CodeNotFound
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Mark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, label, at_ms, tz_offset, created_ms FROM marks WHERE id = ?
	`, id)

	mark, err := scanMark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id, "timeline.Get")
	}
	if err != nil {
		return nil, dbError(err, "failed to read mark", "timeline.Get")
	}
	return mark, nil
}

// List returns the marks passing filter, oldest first
func (s *SQLiteStore) List(ctx context.Context, filter Filter) ([]*Mark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timer := s.log.StartTimer("timeline.list")

	query := `SELECT id, label, at_ms, tz_offset, created_ms FROM marks WHERE 1=1`
	var args []interface{}

	if filter.Range != nil {
		query += " AND at_ms >= ? AND at_ms <= ?"
		args = append(args, ceilMs(filter.Range.Start()), filter.Range.End().UnixMilli())
	}
	if filter.LabelPrefix != "" {
		query += ` AND substr(label, 1, ?) = ?`
		args = append(args, len([]rune(filter.LabelPrefix)), filter.LabelPrefix)
	}

	query += " ORDER BY at_ms ASC, created_ms ASC, id ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		err = dbError(err, "failed to query marks", "timeline.List")
		timer.StopWithError(err)
		return nil, err
	}
	defer rows.Close()

	var marks []*Mark
	for rows.Next() {
		mark, err := scanMark(rows)
		if err != nil {
			err = dbError(err, "failed to scan mark", "timeline.List")
			timer.StopWithError(err)
			return nil, err
		}
		marks = append(marks, mark)
	}
	if err := rows.Err(); err != nil {
		err = dbError(err, "failed to iterate marks", "timeline.List")
		timer.StopWithError(err)
		return nil, err
	}

	timer.WithField("count", len(marks)).Stop()
	return marks, nil
}

// Delete removes the mark with the given id; a missing mark fails with
// CodeNotFound
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, "DELETE FROM marks WHERE id = ?", id)
	if err != nil {
		return dbError(err, "failed to delete mark", "timeline.Delete")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return dbError(err, "failed to delete mark", "timeline.Delete")
	}
	if affected == 0 {
		return notFound(id, "timeline.Delete")
	}

	s.log.Debug("mark deleted", "id", id)
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMark(row rowScanner) (*Mark, error) {
	var (
		mark   Mark
		offset int
	)
	if err := row.Scan(&mark.ID, &mark.Label, &mark.At, &offset, &mark.Created); err != nil {
		return nil, err
	}
	mark.At = mark.At.In(datetime.FixedZone(offset))
	return &mark, nil
}

func dbError(err error, message, operation string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation(operation)
}

func notFound(id, operation string) error {
	return mdwerror.Newf("mark %q not found", id).
		WithCode(mdwerror.CodeNotFound).
		WithOperation(operation).
		WithDetail("id", id)
}
