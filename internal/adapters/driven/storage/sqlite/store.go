package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/algal/PersistableURL/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/algal/PersistableURL/internal/core/domain"
	"github.com/algal/PersistableURL/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.BookmarkStore = (*Store)(nil)

// Store is a SQLite-backed bookmark store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.persisturl/data/bookmarks.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".persisturl", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "bookmarks.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Save stores a bookmark.
func (s *Store) Save(ctx context.Context, bookmark domain.Bookmark) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO bookmarks (name, location, created_at) VALUES (?, ?, ?)",
		bookmark.Name, bookmark.Location, bookmark.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: bookmark %q", domain.ErrAlreadyExists, bookmark.Name)
		}
		return fmt.Errorf("saving bookmark: %w", err)
	}
	return nil
}

// Get retrieves a bookmark by name.
func (s *Store) Get(ctx context.Context, name string) (*domain.Bookmark, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT name, location, created_at FROM bookmarks WHERE name = ?", name,
	)

	var b domain.Bookmark
	var createdAt string
	if err := row.Scan(&b.Name, &b.Location, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: bookmark %q", domain.ErrNotFound, name)
		}
		return nil, fmt.Errorf("getting bookmark: %w", err)
	}
	b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &b, nil
}

// List returns all bookmarks ordered by name.
func (s *Store) List(ctx context.Context) ([]domain.Bookmark, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, location, created_at FROM bookmarks ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		var createdAt string
		if err := rows.Scan(&b.Name, &b.Location, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning bookmark: %w", err)
		}
		b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

// Delete removes a bookmark by name.
func (s *Store) Delete(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: bookmark %q", domain.ErrNotFound, name)
	}
	return nil
}

// migrate applies any unapplied .up.sql migrations in version order.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
