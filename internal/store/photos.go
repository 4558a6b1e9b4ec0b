package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Photo is an uploaded blob addressed by its generated key, plus a
// record of who uploaded it.
type Photo struct {
	Key         string
	Uploader    string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

// CreatePhoto stores an uploaded photo under the given key.
func (s *Store) CreatePhoto(ctx context.Context, photo Photo) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO photos (key, uploader, content_type, data)
		VALUES ($1, $2, $3, $4)
	`, photo.Key, photo.Uploader, photo.ContentType, photo.Data)
	if err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}

// GetPhoto returns the photo stored under key.
func (s *Store) GetPhoto(ctx context.Context, key string) (Photo, error) {
	photo := Photo{Key: key}
	err := s.db.QueryRowContext(ctx, `
		SELECT uploader, content_type, data, created_at
		FROM photos
		WHERE key = $1
	`, key).Scan(&photo.Uploader, &photo.ContentType, &photo.Data, &photo.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Photo{}, ErrNotFound
	}
	if err != nil {
		return Photo{}, fmt.Errorf("get photo: %w", err)
	}
	return photo, nil
}
