// Package sqlite implements store.Store against a SQLite database file,
// persisting the same ordered tag sequence the file codecs do.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"menagerie/internal/domain"

	_ "modernc.org/sqlite"
)

// Store persists entity tags in a SQLite database. The database is opened
// and closed within each Save or Load call; no handle outlives a call.
type Store struct {
	registry *domain.Registry
}

// New creates a SQLite-backed store for one variant registry.
func New(registry *domain.Registry) *Store {
	return &Store{registry: registry}
}

func open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS entities (
		position INTEGER PRIMARY KEY,
		tag TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// Save replaces the stored tag sequence with the entities' tags, preserving
// order, in a single transaction.
func (s *Store) Save(ctx context.Context, entities []domain.Entity, path string) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entities`); err != nil {
		return fmt.Errorf("failed to clear entities: %w", err)
	}

	for i, entity := range entities {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO entities (position, tag) VALUES (?, ?)`,
			i, string(entity.Tag()))
		if err != nil {
			return fmt.Errorf("failed to insert entity %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Load reads the stored tag sequence in position order and reconstructs the
// entities through the registry.
func (s *Store) Load(ctx context.Context, path string) ([]domain.Entity, error) {
	db, err := open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT tag FROM entities ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan entity: %w", err)
		}
		tags = append(tags, domain.Tag(tag))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entities: %w", err)
	}

	entities, err := s.registry.CreateAll(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct entities from %s: %w", path, err)
	}
	return entities, nil
}
