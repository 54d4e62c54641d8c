package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists the audit trail to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ingest_runs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			report_date     TEXT,
			records         INTEGER,
			clicks_url      TEXT,
			conversions_url TEXT,
			source          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ingest_ts ON ingest_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS record_edits (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			report_date   TEXT,
			creative_id   TEXT,
			spend         REAL,
			installs      INTEGER,
			registrations INTEGER,
			deposits      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_edits_ts ON record_edits(timestamp)`,

		`CREATE TABLE IF NOT EXISTS snapshot_deletes (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			report_date TEXT,
			records     INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_deletes_ts ON snapshot_deletes(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordIngest(evt *IngestEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO ingest_runs
		(timestamp, report_date, records, clicks_url, conversions_url, source)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Date, evt.Records,
		evt.ClicksURL, evt.ConversionsURL, evt.Source,
	)
	return err
}

func (r *SQLiteRecorder) RecordEdit(evt *EditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO record_edits
		(timestamp, report_date, creative_id, spend, installs, registrations, deposits)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Date, evt.CreativeID,
		evt.Spend, evt.Installs, evt.Registrations, evt.Deposits,
	)
	return err
}

func (r *SQLiteRecorder) RecordDelete(evt *DeleteEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO snapshot_deletes
		(timestamp, report_date, records)
		VALUES (?,?,?)`,
		time.Now().Unix(), evt.Date, evt.Records,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
