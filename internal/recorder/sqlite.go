package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists assessment history to a SQLite database.
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

	// WAL mode so dashboard reads don't block scheduled writes.
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
		`CREATE TABLE IF NOT EXISTS assessments (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			coin_id         TEXT NOT NULL,
			total_score     INTEGER,
			risk_tier       TEXT,
			has_technical   INTEGER,
			recent_trend    TEXT,
			long_trend      TEXT,
			volatility_pct  REAL,
			volatility_tier TEXT,
			support         REAL,
			resistance      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_coin_ts ON assessments(coin_id, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAssessment(rec *AssessmentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO assessments
		(timestamp, coin_id, total_score, risk_tier, has_technical,
		 recent_trend, long_trend, volatility_pct, volatility_tier, support, resistance)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		rec.Timestamp, rec.CoinID, rec.TotalScore, rec.RiskTier, boolToInt(rec.HasTechnical),
		rec.RecentTrend, rec.LongTrend, rec.VolatilityPct, rec.VolatilityTier,
		rec.Support, rec.Resistance,
	)
	return err
}

func (r *SQLiteRecorder) RecentAssessments(coinID string, limit int) ([]AssessmentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(`SELECT timestamp, coin_id, total_score, risk_tier, has_technical,
		recent_trend, long_trend, volatility_pct, volatility_tier, support, resistance
		FROM assessments WHERE coin_id = ? ORDER BY timestamp DESC LIMIT ?`, coinID, limit)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var records []AssessmentRecord
	for rows.Next() {
		var rec AssessmentRecord
		var hasTechnical int
		if err := rows.Scan(&rec.Timestamp, &rec.CoinID, &rec.TotalScore, &rec.RiskTier, &hasTechnical,
			&rec.RecentTrend, &rec.LongTrend, &rec.VolatilityPct, &rec.VolatilityTier,
			&rec.Support, &rec.Resistance); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		rec.HasTechnical = hasTechnical != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
