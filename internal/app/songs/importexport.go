package songs

import (
	"context"
	"encoding/json"
	"fmt"

	"songbook/internal/store"
)

// RecordingExport is the wire shape of one recording in the bulk
// import/export payload.
type RecordingExport struct {
	AudioLink string `json:"audiolink"`
	Performer string `json:"performer"`
}

// SongExport is the wire shape of one song in the bulk import/export
// payload.
type SongExport struct {
	Title      string            `json:"title"`
	Lyrics     string            `json:"lyrics"`
	Recordings []RecordingExport `json:"recordings"`
}

// Pointer fields so an absent key is distinguishable from an empty
// value when validating the payload.
type importRecording struct {
	AudioLink *string `json:"audiolink"`
	Performer *string `json:"performer"`
}

type importSong struct {
	Title      *string           `json:"title"`
	Lyrics     *string           `json:"lyrics"`
	Recordings []importRecording `json:"recordings"`
}

// Export serializes the whole catalogue: every song with its
// recordings, both in their query order.
func (s *Service) Export(ctx context.Context) ([]SongExport, error) {
	all, err := s.AllSongs(ctx, false)
	if err != nil {
		return nil, err
	}

	out := make([]SongExport, 0, len(all))
	for _, song := range all {
		recs, err := s.Recordings(ctx, song.ID, false)
		if err != nil {
			return nil, err
		}

		entry := SongExport{
			Title:      song.Title,
			Lyrics:     song.Lyrics,
			Recordings: make([]RecordingExport, 0, len(recs)),
		}
		for _, rec := range recs {
			entry.Recordings = append(entry.Recordings, RecordingExport{
				AudioLink: rec.AudioLink,
				Performer: rec.Performer,
			})
		}
		out = append(out, entry)
	}

	return out, nil
}

// Import reconstructs songs and recordings from a payload produced by
// Export. The whole batch is validated up front and persisted in one
// transaction; a malformed payload fails with a ParseError and nothing
// is written.
func (s *Service) Import(ctx context.Context, raw []byte) error {
	var payload []importSong
	if err := json.Unmarshal(raw, &payload); err != nil {
		return &ParseError{Reason: err.Error()}
	}

	seeds := make([]store.SongSeed, 0, len(payload))
	for i, entry := range payload {
		if entry.Title == nil || *entry.Title == "" {
			return &ParseError{Reason: fmt.Sprintf("song %d: title is missing or empty", i+1)}
		}

		seed := store.SongSeed{Title: *entry.Title}
		if entry.Lyrics != nil {
			seed.Lyrics = *entry.Lyrics
		}

		for j, rec := range entry.Recordings {
			if rec.AudioLink == nil {
				return &ParseError{Reason: fmt.Sprintf("song %d, recording %d: audiolink is missing", i+1, j+1)}
			}
			performer := ""
			if rec.Performer != nil {
				performer = *rec.Performer
			}
			seed.Recordings = append(seed.Recordings, store.RecordingSeed{
				AudioLink: *rec.AudioLink,
				Performer: performer,
			})
		}

		seeds = append(seeds, seed)
	}

	ids, err := s.storage.ImportSongs(ctx, seeds)
	if err != nil {
		return err
	}

	if _, err := s.AllSongs(ctx, true); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := s.Recordings(ctx, id, true); err != nil {
			return err
		}
	}
	return nil
}
