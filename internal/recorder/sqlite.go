package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read
	// while the bot writes).
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
		`CREATE TABLE IF NOT EXISTS score_snapshots (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			score         REAL,
			rating        TEXT,
			factors       TEXT,
			overall_score REAL,
			market_timing TEXT,
			risk_level    TEXT,
			fed_impact    REAL,
			index_name    TEXT,
			index_price   REAL,
			index_rsi     REAL,
			summary       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_score_ts ON score_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS sector_history (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			sector        TEXT,
			avg_return_1d REAL,
			avg_return_1w REAL,
			avg_return_1m REAL,
			winners       INTEGER,
			losers        INTEGER,
			stock_count   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sector_ts ON sector_history(timestamp)`,

		`CREATE TABLE IF NOT EXISTS alerts (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			symbol     TEXT,
			rsi        REAL,
			price      REAL,
			event_type TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_ts ON alerts(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordCycle(snap *CycleSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()

	var price, rsi float64
	if snap.Technical != nil {
		price = snap.Technical.LastClose.Or(0)
		rsi = snap.Technical.RSI.Or(0)
	}

	_, err := r.db.Exec(`INSERT INTO score_snapshots
		(timestamp, score, rating, factors, overall_score, market_timing,
		 risk_level, fed_impact, index_name, index_price, index_rsi, summary)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		now, snap.Score.Score, string(snap.Score.Rating),
		strings.Join(snap.Score.Factors, "\n"),
		snap.Bundle.OverallScore, string(snap.Bundle.MarketTiming),
		string(snap.Bundle.RiskLevel), snap.Bundle.Fed.ImpactScore,
		snap.IndexName, price, rsi, snap.Bundle.Summary,
	)
	if err != nil {
		return err
	}

	for name, perf := range snap.Sectors {
		if _, err := r.db.Exec(`INSERT INTO sector_history
			(timestamp, sector, avg_return_1d, avg_return_1w, avg_return_1m, winners, losers, stock_count)
			VALUES (?,?,?,?,?,?,?,?)`,
			now, name, perf.AvgReturn1D, perf.AvgReturn1W, perf.AvgReturn1M,
			perf.Winners, perf.Losers, perf.StockCount,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAlert(evt *AlertEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO alerts
		(timestamp, symbol, rsi, price, event_type)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.Symbol, evt.RSI, evt.Price, evt.EventType,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
