package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mager/woodshed/config"
	"github.com/mager/woodshed/woodshed"
)

const (
	listSongsQuery = `
		SELECT id, title, achieved, target
		FROM speed_standards_songs
		ORDER BY title`

	updateSongQuery = `
		UPDATE speed_standards_songs
		SET achieved = $1, target = $2, updated_at = NOW()
		WHERE id = $3`

	insertSongQuery = `
		INSERT INTO speed_standards_songs (title, achieved, target)
		VALUES ($1, $2, $3)
		RETURNING id`
)

// SongStore reads and writes the speed standards repertoire.
type SongStore struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewSongStore(db *sqlx.DB, cfg config.Config) *SongStore {
	return &SongStore{db: db, timeout: cfg.QueryTimeout}
}

// List returns every song ordered by title.
func (s *SongStore) List(ctx context.Context) ([]woodshed.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	songs := []woodshed.Song{}
	if err := s.db.SelectContext(ctx, &songs, listSongsQuery); err != nil {
		return nil, fmt.Errorf("failed to list songs: %w", err)
	}
	return songs, nil
}

// UpdateProgress stores new tempos for a song and reports whether it exists.
func (s *SongStore) UpdateProgress(ctx context.Context, id int64, achieved, target float64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx, updateSongQuery, achieved, target, id)
	if err != nil {
		return false, fmt.Errorf("failed to update song %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// Add inserts a song and returns its id.
func (s *SongStore) Add(ctx context.Context, title string, achieved, target float64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var id int64
	if err := s.db.QueryRowxContext(ctx, insertSongQuery, title, achieved, target).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert song: %w", err)
	}
	return id, nil
}
