package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"tex/internal/domain"
)

// MySQLStore persists run records in a relational test_runs table.
type MySQLStore struct {
	db *sql.DB
}

// OpenMySQL connects with the given DSN and ensures the schema exists.
func OpenMySQL(dsn string) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	s := &MySQLStore{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *MySQLStore) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS test_runs (
		id CHAR(36) PRIMARY KEY,
		framework VARCHAR(16) NOT NULL,
		target_path TEXT NOT NULL,
		status VARCHAR(16) NOT NULL,
		output MEDIUMTEXT,
		exit_code INT NOT NULL DEFAULT 0,
		duration_ms BIGINT NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		completed_at DATETIME NULL
	)`)
	if err != nil {
		return fmt.Errorf("create test_runs table: %w", err)
	}
	return nil
}

// CreateRun inserts a record in running state before the process is spawned.
func (s *MySQLStore) CreateRun(id string, framework domain.Framework, targetPath string) error {
	_, err := s.db.Exec(
		`INSERT INTO test_runs (id, framework, target_path, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, string(framework), targetPath, string(domain.StatusRunning), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", id, err)
	}
	return nil
}

// CompleteRun moves a record to its terminal state. Returns false when no
// record with the id exists.
func (s *MySQLStore) CompleteRun(id string, c RunCompletion) (bool, error) {
	res, err := s.db.Exec(
		`UPDATE test_runs SET status = ?, output = ?, exit_code = ?, duration_ms = ?, completed_at = ? WHERE id = ?`,
		string(c.Status), c.Output, c.ExitCode, c.DurationMS, time.Now().UTC(), id,
	)
	if err != nil {
		return false, fmt.Errorf("complete run %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("complete run %s: %w", id, err)
	}
	return n > 0, nil
}

// ReconcileStale flips running records older than the cutoff to errored.
// A host crash between CreateRun and CompleteRun leaves such records behind;
// nothing else ever resolves them.
func (s *MySQLStore) ReconcileStale(olderThan time.Duration) (int64, error) {
	now := time.Now().UTC()
	res, err := s.db.Exec(
		`UPDATE test_runs SET status = ?, completed_at = ? WHERE status = ? AND created_at < ?`,
		string(domain.StatusErrored), now, string(domain.StatusRunning), now.Add(-olderThan),
	)
	if err != nil {
		return 0, fmt.Errorf("reconcile stale runs: %w", err)
	}
	return res.RowsAffected()
}

// Close releases the underlying connection pool.
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
