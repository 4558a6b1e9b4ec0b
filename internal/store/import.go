package store

import (
	"context"
	"fmt"
)

// RecordingSeed is recording data arriving from a bulk import.
type RecordingSeed struct {
	AudioLink string
	Performer string
}

// SongSeed is song data arriving from a bulk import.
type SongSeed struct {
	Title      string
	Lyrics     string
	Recordings []RecordingSeed
}

// ImportSongs inserts every seed with its recordings in a single
// transaction and returns the new song IDs. Either the whole batch
// lands or none of it does.
func (s *Store) ImportSongs(ctx context.Context, seeds []SongSeed) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	ids := make([]int64, 0, len(seeds))
	for _, seed := range seeds {
		var songID int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO songs (title, lyrics)
			VALUES ($1, $2)
			RETURNING id
		`, seed.Title, seed.Lyrics).Scan(&songID); err != nil {
			return nil, fmt.Errorf("insert song %q: %w", seed.Title, err)
		}

		for _, rec := range seed.Recordings {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO recordings (song_id, audiolink, performer)
				VALUES ($1, $2, $3)
			`, songID, rec.AudioLink, rec.Performer); err != nil {
				return nil, fmt.Errorf("insert recording for %q: %w", seed.Title, err)
			}
		}

		ids = append(ids, songID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return ids, nil
}
