// Package songs implements the catalogue workflows: song and recording
// lifecycle, the cache-backed list queries, and bulk import/export.
package songs

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"songbook/internal/cache"
	"songbook/internal/store"
)

// ErrEmptyTitle rejects song creation without a title.
var ErrEmptyTitle = errors.New("song title must not be empty")

// ParseError describes why an import payload was rejected. The message
// is shown back to the user on the import form.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string { return e.Reason }

// Storage captures the persistence operations the service needs.
type Storage interface {
	ListSongs(ctx context.Context) ([]store.Song, error)
	GetSong(ctx context.Context, id int64) (store.Song, error)
	CreateSong(ctx context.Context, title, lyrics string) (store.Song, error)
	UpdateLyrics(ctx context.Context, id int64, lyrics string) error
	DeleteSong(ctx context.Context, id int64) error

	ListRecordings(ctx context.Context, songID int64) ([]store.Recording, error)
	GetRecording(ctx context.Context, songID, id int64) (store.Recording, error)
	CreateRecording(ctx context.Context, songID int64, audiolink, performer string) (store.Recording, error)
	UpdateRecording(ctx context.Context, songID, id int64, audiolink, performer string) error
	DeleteRecording(ctx context.Context, songID, id int64) error

	ImportSongs(ctx context.Context, seeds []store.SongSeed) ([]int64, error)
}

// Service exposes catalogue operations backed by a Storage and a
// read-through cache over the two list queries.
type Service struct {
	storage Storage
	cache   cache.Cache
}

// New constructs a Service.
func New(storage Storage, c cache.Cache) *Service {
	return &Service{storage: storage, cache: c}
}

// AllSongs returns every song ordered by title, from cache unless the
// entry is absent or refresh is set. Repopulation is synchronous: a
// store failure returns an error and leaves the cache untouched.
func (s *Service) AllSongs(ctx context.Context, refresh bool) ([]store.Song, error) {
	key := cache.AllSongsKey()
	if !refresh {
		if songs, ok := cachedList[store.Song](ctx, s.cache, key); ok {
			return songs, nil
		}
	}

	log.Debug().Str("key", key).Msg("db query")
	songs, err := s.storage.ListSongs(ctx)
	if err != nil {
		return nil, err
	}

	storeList(ctx, s.cache, key, songs)
	return songs, nil
}

// Recordings returns a song's recordings ordered by performer, with
// the same read-through discipline as AllSongs.
func (s *Service) Recordings(ctx context.Context, songID int64, refresh bool) ([]store.Recording, error) {
	key := cache.RecordingsKey(songID)
	if !refresh {
		if recs, ok := cachedList[store.Recording](ctx, s.cache, key); ok {
			return recs, nil
		}
	}

	log.Debug().Str("key", key).Msg("db query")
	recs, err := s.storage.ListRecordings(ctx, songID)
	if err != nil {
		return nil, err
	}

	storeList(ctx, s.cache, key, recs)
	return recs, nil
}

func cachedList[T any](ctx context.Context, c cache.Cache, key string) ([]T, bool) {
	raw, ok := c.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		// A corrupt entry falls through to repopulation.
		return nil, false
	}
	return list, true
}

func storeList[T any](ctx context.Context, c cache.Cache, key string, list []T) {
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	c.Set(ctx, key, raw)
}

// Get returns a single song.
func (s *Service) Get(ctx context.Context, id int64) (store.Song, error) {
	return s.storage.GetSong(ctx, id)
}

// GetRecording returns a recording scoped to its owning song.
func (s *Service) GetRecording(ctx context.Context, songID, recID int64) (store.Recording, error) {
	return s.storage.GetRecording(ctx, songID, recID)
}

// Create persists a new song, optionally with one initial recording,
// and refreshes the all-songs cache.
func (s *Service) Create(ctx context.Context, title, audiolink, performer string) (store.Song, error) {
	if title == "" {
		return store.Song{}, ErrEmptyTitle
	}

	song, err := s.storage.CreateSong(ctx, title, "")
	if err != nil {
		return store.Song{}, err
	}

	if audiolink != "" {
		if _, err := s.AddRecording(ctx, song.ID, audiolink, performer); err != nil {
			return store.Song{}, err
		}
	}

	if _, err := s.AllSongs(ctx, true); err != nil {
		return store.Song{}, err
	}
	return song, nil
}

// Delete removes a song and its recordings, refreshes the all-songs
// cache and drops the now-orphaned recordings entry.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.storage.DeleteSong(ctx, id); err != nil {
		return err
	}
	if _, err := s.AllSongs(ctx, true); err != nil {
		return err
	}
	s.cache.Delete(ctx, cache.RecordingsKey(id))
	return nil
}

// SetLyrics replaces a song's lyrics unconditionally. The cached song
// list carries lyrics, so it is refreshed too.
func (s *Service) SetLyrics(ctx context.Context, id int64, lyrics string) error {
	if err := s.storage.UpdateLyrics(ctx, id, lyrics); err != nil {
		return err
	}
	_, err := s.AllSongs(ctx, true)
	return err
}

// AddRecording creates a recording under the song and refreshes the
// song's recordings cache. Emptiness of the audio link is the caller's
// concern.
func (s *Service) AddRecording(ctx context.Context, songID int64, audiolink, performer string) (store.Recording, error) {
	rec, err := s.storage.CreateRecording(ctx, songID, audiolink, performer)
	if err != nil {
		return store.Recording{}, err
	}
	if _, err := s.Recordings(ctx, songID, true); err != nil {
		return store.Recording{}, err
	}
	return rec, nil
}

// UpdateRecording replaces both fields of a recording and refreshes
// the song's recordings cache.
func (s *Service) UpdateRecording(ctx context.Context, songID, recID int64, audiolink, performer string) error {
	if err := s.storage.UpdateRecording(ctx, songID, recID, audiolink, performer); err != nil {
		return err
	}
	_, err := s.Recordings(ctx, songID, true)
	return err
}

// DeleteRecording removes a recording and refreshes the song's
// recordings cache.
func (s *Service) DeleteRecording(ctx context.Context, songID, recID int64) error {
	if err := s.storage.DeleteRecording(ctx, songID, recID); err != nil {
		return err
	}
	_, err := s.Recordings(ctx, songID, true)
	return err
}
