package store

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore persists the render log in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects, pings and ensures the frames table exists.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	_, err := ps.db.Exec(`
	CREATE TABLE IF NOT EXISTS frames (
		run TEXT NOT NULL,
		frame INTEGER NOT NULL,
		x DOUBLE PRECISION NOT NULL,
		y DOUBLE PRECISION NOT NULL,
		heading DOUBLE PRECISION NOT NULL,
		path TEXT NOT NULL,
		hits INTEGER NOT NULL,
		rendered_at TIMESTAMP WITH TIME ZONE NOT NULL,
		PRIMARY KEY (run, frame)
	)`)
	return err
}

// SaveFrame upserts rec keyed by run and frame index.
func (ps *PostgresStore) SaveFrame(rec FrameRecord) error {
	_, err := ps.db.Exec(`
	INSERT INTO frames (run, frame, x, y, heading, path, hits, rendered_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (run, frame) DO UPDATE SET
		x = EXCLUDED.x, y = EXCLUDED.y, heading = EXCLUDED.heading,
		path = EXCLUDED.path, hits = EXCLUDED.hits, rendered_at = EXCLUDED.rendered_at`,
		rec.Run, rec.Frame, rec.X, rec.Y, rec.Heading, rec.Path, rec.Hits, rec.RenderedAt)
	if err != nil {
		return fmt.Errorf("failed to save frame %d of %s: %w", rec.Frame, rec.Run, err)
	}
	return nil
}

// Frames returns the run's records ordered by frame index.
func (ps *PostgresStore) Frames(run string) ([]FrameRecord, error) {
	rows, err := ps.db.Query(`
	SELECT run, frame, x, y, heading, path, hits, rendered_at
	FROM frames WHERE run = $1 ORDER BY frame`, run)
	if err != nil {
		return nil, fmt.Errorf("failed to query frames of %s: %w", run, err)
	}
	defer rows.Close()

	var out []FrameRecord
	for rows.Next() {
		var rec FrameRecord
		if err := rows.Scan(&rec.Run, &rec.Frame, &rec.X, &rec.Y, &rec.Heading, &rec.Path, &rec.Hits, &rec.RenderedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, run)
	}
	return out, nil
}

// Close closes the database connection.
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
