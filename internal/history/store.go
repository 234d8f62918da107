// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists past search runs in a SQLite database so the
// assistant can show and re-open earlier research sessions.
// See docs/ARCHITECTURE § History.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/research-assistant/pkg/types"
)

const dbFile = "history.db"

// Store manages the search history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Record is one stored search run.
type Record struct {
	ID           string
	Query        string
	Language     types.Language
	Intent       types.Intent
	Category     types.Category
	Deep         bool
	TotalResults int
	SearchTime   int64
	CreatedAt    time.Time
}

// NewStore opens or creates the history database at dataDir/history.db,
// creating the schema when absent.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS searches (
			id TEXT PRIMARY KEY,
			query TEXT NOT NULL,
			language TEXT,
			intent TEXT,
			category TEXT,
			deep INTEGER NOT NULL DEFAULT 0,
			total_results INTEGER,
			search_time_ms INTEGER,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			search_id TEXT NOT NULL REFERENCES searches(id) ON DELETE CASCADE,
			rank INTEGER NOT NULL,
			title TEXT,
			url TEXT,
			domain TEXT,
			category TEXT,
			source_type TEXT,
			relevance_score INTEGER,
			credibility INTEGER,
			publish_date TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_search_id ON results(search_id)`,
		`CREATE INDEX IF NOT EXISTS idx_searches_created_at ON searches(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveSearch stores one run and its results in a transaction, returning
// the new record's id.
func (s *Store) SaveSearch(ctx context.Context, query string, deep bool, analysis types.QueryAnalysis, resp types.SearchResponse) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO searches (id, query, language, intent, category, deep, total_results, search_time_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, query, string(analysis.Language), string(analysis.Intent), string(analysis.Category),
		boolToInt(deep), resp.TotalResults, resp.SearchTime,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("inserting search: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO results (id, search_id, rank, title, url, domain, category, source_type, relevance_score, credibility, publish_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range resp.Results {
		_, err := stmt.ExecContext(ctx,
			r.ID, id, i+1, r.Title, r.URL, r.Domain,
			string(r.Category), string(r.SourceType),
			r.RelevanceScore, r.AuthorCredibility,
			r.PublishDate.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return "", fmt.Errorf("inserting result %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing: %w", err)
	}
	return id, nil
}

// Recent returns the newest runs, newest first. A non-positive n uses the
// store default.
func (s *Store) Recent(ctx context.Context, n int) ([]Record, error) {
	if n <= 0 {
		n = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, language, intent, category, deep, total_results, search_time_ms, created_at
		 FROM searches ORDER BY created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying searches: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec       Record
			lang      string
			intent    string
			category  string
			deep      int
			createdAt string
		)
		if err := rows.Scan(&rec.ID, &rec.Query, &lang, &intent, &category,
			&deep, &rec.TotalResults, &rec.SearchTime, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning search row: %w", err)
		}
		rec.Language = types.Language(lang)
		rec.Intent = types.Intent(intent)
		rec.Category = types.Category(category)
		rec.Deep = deep != 0
		if t, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			rec.CreatedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Results returns the stored results for one run, in rank order.
func (s *Store) Results(ctx context.Context, searchID string) ([]types.SearchResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, url, domain, category, source_type, relevance_score, credibility, publish_date
		 FROM results WHERE search_id = ? ORDER BY rank`, searchID)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []types.SearchResult
	for rows.Next() {
		var (
			r           types.SearchResult
			category    string
			sourceType  string
			publishDate string
		)
		if err := rows.Scan(&r.ID, &r.Title, &r.URL, &r.Domain, &category,
			&sourceType, &r.RelevanceScore, &r.AuthorCredibility, &publishDate); err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}
		r.Category = types.Category(category)
		r.SourceType = types.SourceType(sourceType)
		r.ScanStatus = types.ScanPending
		if t, parseErr := time.Parse(time.RFC3339, publishDate); parseErr == nil {
			r.PublishDate = t
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// FormatRecords writes history records as a table to w.
func FormatRecords(records []Record, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No saved searches.")
		return
	}
	fmt.Fprintf(w, "%-36s  %-40s  %-6s  %-8s  %s\n", "ID", "Query", "Deep", "Results", "When")
	fmt.Fprintln(w, strings.Repeat("-", 104))
	for _, rec := range records {
		q := rec.Query
		if len(q) > 40 {
			q = q[:37] + "..."
		}
		deep := ""
		if rec.Deep {
			deep = "yes"
		}
		fmt.Fprintf(w, "%-36s  %-40s  %-6s  %-8d  %s\n",
			rec.ID, q, deep, rec.TotalResults, rec.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
