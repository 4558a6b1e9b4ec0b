package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"songbook/internal/drivelink"
)

// Recording is one performance of a song. It belongs to exactly one
// song and is only ever addressed through that song's ID.
type Recording struct {
	ID        int64  `json:"id"`
	SongID    int64  `json:"songId"`
	AudioLink string `json:"audiolink"`
	Performer string `json:"performer"`
}

// DisplayTitle derives the recording's listing title from its parent
// song's title.
func (r Recording) DisplayTitle(songTitle string) string {
	if r.Performer != "" {
		return songTitle + " - " + r.Performer
	}
	return songTitle
}

// ResolvedAudioLink returns the audio link with Drive share links
// rewritten to their direct-download form.
func (r Recording) ResolvedAudioLink() string {
	return drivelink.Normalize(r.AudioLink)
}

// EditURL returns the path of the recording's edit form.
func (r Recording) EditURL() string {
	return fmt.Sprintf("/song/%d/rec/%d/edit", r.SongID, r.ID)
}

// DeleteURL returns the path that deletes the recording.
func (r Recording) DeleteURL() string {
	return fmt.Sprintf("/song/%d/rec/%d/delete", r.SongID, r.ID)
}

// ListRecordings returns a song's recordings ordered by performer.
func (s *Store) ListRecordings(ctx context.Context, songID int64) ([]Recording, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, song_id, audiolink, performer
		FROM recordings
		WHERE song_id = $1
		ORDER BY performer
	`, songID)
	if err != nil {
		return nil, fmt.Errorf("query recordings: %w", err)
	}
	defer rows.Close()

	recordings := []Recording{}
	for rows.Next() {
		var rec Recording
		if err := rows.Scan(&rec.ID, &rec.SongID, &rec.AudioLink, &rec.Performer); err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		recordings = append(recordings, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recordings: %w", err)
	}

	return recordings, nil
}

// GetRecording returns a recording scoped to its owning song. A
// recording reached through the wrong song ID is ErrNotFound.
func (s *Store) GetRecording(ctx context.Context, songID, id int64) (Recording, error) {
	var rec Recording
	err := s.db.QueryRowContext(ctx, `
		SELECT id, song_id, audiolink, performer
		FROM recordings
		WHERE id = $1 AND song_id = $2
	`, id, songID).Scan(&rec.ID, &rec.SongID, &rec.AudioLink, &rec.Performer)
	if errors.Is(err, sql.ErrNoRows) {
		return Recording{}, ErrNotFound
	}
	if err != nil {
		return Recording{}, fmt.Errorf("get recording: %w", err)
	}
	return rec, nil
}

// CreateRecording inserts a recording under the given song.
func (s *Store) CreateRecording(ctx context.Context, songID int64, audiolink, performer string) (Recording, error) {
	rec := Recording{SongID: songID, AudioLink: audiolink, Performer: performer}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO recordings (song_id, audiolink, performer)
		VALUES ($1, $2, $3)
		RETURNING id
	`, songID, audiolink, performer).Scan(&rec.ID)
	if err != nil {
		return Recording{}, fmt.Errorf("insert recording: %w", err)
	}
	return rec, nil
}

// UpdateRecording replaces both mutable fields of a recording.
func (s *Store) UpdateRecording(ctx context.Context, songID, id int64, audiolink, performer string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE recordings
		SET audiolink = $3, performer = $4
		WHERE id = $1 AND song_id = $2
	`, id, songID, audiolink, performer)
	if err != nil {
		return fmt.Errorf("update recording: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRecording removes a recording scoped to its owning song.
func (s *Store) DeleteRecording(ctx context.Context, songID, id int64) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM recordings
		WHERE id = $1 AND song_id = $2
	`, id, songID)
	if err != nil {
		return fmt.Errorf("delete recording: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
