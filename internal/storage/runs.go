package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kinsyudev/dcentralabs-assignment/internal/simulator"
)

const schema = `
CREATE TABLE IF NOT EXISTS simulation_runs (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at    INTEGER NOT NULL,
	pair          TEXT NOT NULL,
	stop_reason   TEXT NOT NULL,
	rounds        INTEGER NOT NULL,
	total_input   REAL NOT NULL,
	total_bridged REAL NOT NULL,
	total_output  REAL NOT NULL,
	total_profit  REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS simulation_rounds (
	run_id    INTEGER NOT NULL REFERENCES simulation_runs(id),
	round_idx INTEGER NOT NULL,
	direction TEXT NOT NULL,
	input     REAL NOT NULL,
	bridged   REAL NOT NULL,
	output    REAL NOT NULL,
	profit    REAL NOT NULL,
	PRIMARY KEY (run_id, round_idx)
);`

// RunDB logs simulation runs and their per-round results to sqlite so
// repeated scans can be compared over time.
type RunDB struct {
	db *sql.DB
}

func NewRunDB(dbPath string) (*RunDB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open run db: %w", err)
	}

	// WAL keeps readers from blocking a writer mid-scan
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialise schema: %w", err)
	}

	return &RunDB{db: db}, nil
}

func (d *RunDB) Close() error {
	return d.db.Close()
}

// SaveRun stores a completed simulation and its rounds in one transaction,
// returning the new run id.
func (d *RunDB) SaveRun(pair string, res *simulator.Result) (int64, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	inserted, err := tx.Exec(`
		INSERT INTO simulation_runs
		(created_at, pair, stop_reason, rounds, total_input, total_bridged, total_output, total_profit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		time.Now().Unix(),
		pair,
		string(res.StopReason),
		len(res.Rounds),
		res.TotalInput,
		res.TotalBridged,
		res.TotalOutput,
		res.TotalProfit,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	runID, err := inserted.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO simulation_rounds
		(run_id, round_idx, direction, input, bridged, output, profit)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i, round := range res.Rounds {
		if _, err := stmt.Exec(
			runID,
			i,
			round.Direction.String(),
			round.Input,
			round.Bridged,
			round.Output,
			round.Profit,
		); err != nil {
			return 0, fmt.Errorf("insert round %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// Stats returns row counts for monitoring the run log.
func (d *RunDB) Stats() (map[string]int64, error) {
	stats := make(map[string]int64)

	var count int64
	if err := d.db.QueryRow("SELECT COUNT(*) FROM simulation_runs").Scan(&count); err != nil {
		return nil, err
	}
	stats["runs"] = count

	if err := d.db.QueryRow("SELECT COUNT(*) FROM simulation_rounds").Scan(&count); err != nil {
		return nil, err
	}
	stats["rounds"] = count

	return stats, nil
}
