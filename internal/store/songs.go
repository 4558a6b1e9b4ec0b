package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Song is a catalogued song. Its recordings live in their own table,
// keyed by SongID.
type Song struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Lyrics string `json:"lyrics"`
}

// URL returns the song's page path.
func (s Song) URL() string {
	return fmt.Sprintf("/song/%d", s.ID)
}

// AddRecordingURL returns the path of the add-recording form.
func (s Song) AddRecordingURL() string {
	return fmt.Sprintf("/song/%d/addrec", s.ID)
}

// EditLyricsURL returns the path of the lyrics editor.
func (s Song) EditLyricsURL() string {
	return fmt.Sprintf("/song/%d/edit", s.ID)
}

// DeleteURL returns the path that deletes the song.
func (s Song) DeleteURL() string {
	return fmt.Sprintf("/song/%d/delete", s.ID)
}

// ListSongs returns every song ordered by title.
func (s *Store) ListSongs(ctx context.Context) ([]Song, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, lyrics
		FROM songs
		ORDER BY title
	`)
	if err != nil {
		return nil, fmt.Errorf("query songs: %w", err)
	}
	defer rows.Close()

	songs := []Song{}
	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Lyrics); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}

	return songs, nil
}

// GetSong returns a single song by ID.
func (s *Store) GetSong(ctx context.Context, id int64) (Song, error) {
	var song Song
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, lyrics
		FROM songs
		WHERE id = $1
	`, id).Scan(&song.ID, &song.Title, &song.Lyrics)
	if errors.Is(err, sql.ErrNoRows) {
		return Song{}, ErrNotFound
	}
	if err != nil {
		return Song{}, fmt.Errorf("get song: %w", err)
	}
	return song, nil
}

// CreateSong inserts a song and returns it with its assigned ID.
func (s *Store) CreateSong(ctx context.Context, title, lyrics string) (Song, error) {
	song := Song{Title: title, Lyrics: lyrics}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO songs (title, lyrics)
		VALUES ($1, $2)
		RETURNING id
	`, title, lyrics).Scan(&song.ID)
	if err != nil {
		return Song{}, fmt.Errorf("insert song: %w", err)
	}
	return song, nil
}

// UpdateLyrics replaces a song's lyrics. The empty string is a valid
// value.
func (s *Store) UpdateLyrics(ctx context.Context, id int64, lyrics string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE songs
		SET lyrics = $2
		WHERE id = $1
	`, id, lyrics)
	if err != nil {
		return fmt.Errorf("update lyrics: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSong removes a song. Its recordings go with it via the
// ON DELETE CASCADE on recordings.song_id.
func (s *Store) DeleteSong(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM songs
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
