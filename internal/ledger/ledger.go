// Copyright Punit Mishra, 2026. All rights reserved.

// Package ledger records which articles have been cross-posted where, so
// --daily-update can pick the newest unposted article and repeated runs
// do not double-post.
package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/punitmishra/publish-engine/pkg/types"
)

// Platform identifies a cross-posting target.
type Platform string

const (
	PlatformTwitter Platform = "twitter"
	PlatformMedium  Platform = "medium"
)

// Ledger is the SQLite publish log.
type Ledger struct {
	db *sql.DB
}

// Open opens (or creates) the ledger database at path, creating parent
// directories as needed.
func Open(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS posts (
			slug TEXT NOT NULL,
			platform TEXT NOT NULL,
			posted_at TEXT NOT NULL,
			remote_url TEXT,
			PRIMARY KEY (slug, platform)
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			detail TEXT,
			created_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := l.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a successful cross-post. Re-recording the same slug and
// platform overwrites the previous row.
func (l *Ledger) Record(slug string, platform Platform, remoteURL string) error {
	_, err := l.db.Exec(
		`INSERT INTO posts (slug, platform, posted_at, remote_url)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(slug, platform) DO UPDATE SET posted_at = excluded.posted_at, remote_url = excluded.remote_url`,
		slug, string(platform), time.Now().UTC().Format(time.RFC3339), remoteURL)
	if err != nil {
		return fmt.Errorf("recording post %s/%s: %w", slug, platform, err)
	}
	return nil
}

// IsPublished reports whether slug has a recorded post on platform.
func (l *Ledger) IsPublished(slug string, platform Platform) (bool, error) {
	var n int
	err := l.db.QueryRow(
		`SELECT COUNT(*) FROM posts WHERE slug = ? AND platform = ?`,
		slug, string(platform)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("querying ledger for %s/%s: %w", slug, platform, err)
	}
	return n > 0, nil
}

// LatestUnpublished returns the first article (assumed sorted
// newest-first) with no recorded post on platform, or nil when every
// article has been posted.
func (l *Ledger) LatestUnpublished(articles []types.Article, platform Platform) (*types.Article, error) {
	for i := range articles {
		published, err := l.IsPublished(articles[i].Slug, platform)
		if err != nil {
			return nil, err
		}
		if !published {
			return &articles[i], nil
		}
	}
	return nil, nil
}

// RecordEvent appends a free-form event row (e.g. a resume export),
// the publish-side stand-in for the site's download analytics.
func (l *Ledger) RecordEvent(kind, detail string) error {
	_, err := l.db.Exec(
		`INSERT INTO events (kind, detail, created_at) VALUES (?, ?, ?)`,
		kind, detail, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording event %s: %w", kind, err)
	}
	return nil
}
