package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/skycircle/internal/domain"
	"github.com/bnema/skycircle/internal/ports"
	_ "modernc.org/sqlite"
)

const (
	historyDirMode = 0o700
	// timeLayout has fixed-width fractions so created_at sorts as text.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Store keeps analysis runs and their ranked accounts in SQLite.
type Store struct {
	db *sql.DB
}

var _ ports.RunHistory = (*Store)(nil)

// Open creates the database file and schema when missing.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("history path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), historyDirMode); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	// SQLite serializes writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		handle TEXT NOT NULL,
		did TEXT NOT NULL,
		period TEXT NOT NULL,
		revision TEXT,
		cache_hit BOOLEAN NOT NULL DEFAULT 0,
		weights TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_accounts (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		rank INTEGER NOT NULL,
		did TEXT NOT NULL,
		handle TEXT NOT NULL,
		display_name TEXT,
		avatar TEXT,
		score REAL NOT NULL,
		likes INTEGER NOT NULL,
		replies INTEGER NOT NULL,
		reposts INTEGER NOT NULL,
		mentions INTEGER NOT NULL,
		quotes INTEGER NOT NULL,
		PRIMARY KEY (run_id, rank)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate history database: %w", err)
	}
	return nil
}

func (s *Store) SaveRun(ctx context.Context, run domain.AnalysisRun) error {
	if run.ID == "" {
		return errors.New("analysis run id is required")
	}

	weights, err := json.Marshal(run.Weights)
	if err != nil {
		return fmt.Errorf("encode weights: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history transaction: %w", err)
	}

	if err := insertRun(ctx, tx, run, string(weights)); err != nil {
		return errors.Join(err, tx.Rollback())
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit analysis run: %w", err)
	}
	return nil
}

func insertRun(ctx context.Context, tx *sql.Tx, run domain.AnalysisRun, weights string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, handle, did, period, revision, cache_hit, weights, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Handle, run.DID, string(run.Period), run.Revision, run.CacheHit, weights,
		run.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("insert analysis run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_accounts (run_id, rank, did, handle, display_name, avatar, score,
			likes, replies, reposts, mentions, quotes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare ranked account insert: %w", err)
	}
	defer stmt.Close()

	for i, account := range run.Accounts {
		_, err := stmt.ExecContext(ctx, run.ID, i+1, account.DID, account.Handle, account.DisplayName,
			account.Avatar, account.Score, account.Counts.Likes, account.Counts.Replies,
			account.Counts.Reposts, account.Counts.Mentions, account.Counts.Quotes)
		if err != nil {
			return fmt.Errorf("insert ranked account %s: %w", account.DID, err)
		}
	}

	return nil
}

// GetRun loads a run with its ranked accounts in rank order.
func (s *Store) GetRun(ctx context.Context, id string) (domain.AnalysisRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, handle, did, period, revision, cache_hit, weights, created_at
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AnalysisRun{}, domain.ErrRunNotFound
	}
	if err != nil {
		return domain.AnalysisRun{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT did, handle, display_name, avatar, score, likes, replies, reposts, mentions, quotes
		FROM run_accounts WHERE run_id = ? ORDER BY rank
	`, id)
	if err != nil {
		return domain.AnalysisRun{}, fmt.Errorf("query ranked accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var account domain.RankedAccount
		var displayName, avatar sql.NullString
		if err := rows.Scan(&account.DID, &account.Handle, &displayName, &avatar, &account.Score,
			&account.Counts.Likes, &account.Counts.Replies, &account.Counts.Reposts,
			&account.Counts.Mentions, &account.Counts.Quotes); err != nil {
			return domain.AnalysisRun{}, fmt.Errorf("scan ranked account: %w", err)
		}
		account.DisplayName = displayName.String
		account.Avatar = avatar.String
		run.Accounts = append(run.Accounts, account)
	}
	if err := rows.Err(); err != nil {
		return domain.AnalysisRun{}, fmt.Errorf("read ranked accounts: %w", err)
	}

	return run, nil
}

// ListRuns returns run headers, newest first. Accounts are not loaded.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.AnalysisRun, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, handle, did, period, revision, cache_hit, weights, created_at
		FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query analysis runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.AnalysisRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read analysis runs: %w", err)
	}

	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (domain.AnalysisRun, error) {
	var run domain.AnalysisRun
	var period, weights, createdAt string
	var revision sql.NullString
	if err := row.Scan(&run.ID, &run.Handle, &run.DID, &period, &revision, &run.CacheHit, &weights, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AnalysisRun{}, err
		}
		return domain.AnalysisRun{}, fmt.Errorf("scan analysis run: %w", err)
	}

	run.Period = domain.Period(period)
	run.Revision = revision.String
	if err := json.Unmarshal([]byte(weights), &run.Weights); err != nil {
		return domain.AnalysisRun{}, fmt.Errorf("decode weights for run %s: %w", run.ID, err)
	}
	parsed, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return domain.AnalysisRun{}, fmt.Errorf("decode created_at for run %s: %w", run.ID, err)
	}
	run.CreatedAt = parsed

	return run, nil
}
