// Package photos stores uploaded photos as blobs addressed by
// generated keys.
package photos

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"songbook/internal/store"
)

// ErrEmptyUpload rejects uploads without file content.
var ErrEmptyUpload = errors.New("uploaded file is empty")

// Storage captures the blob persistence the service needs.
type Storage interface {
	CreatePhoto(ctx context.Context, photo store.Photo) error
	GetPhoto(ctx context.Context, key string) (store.Photo, error)
}

// Service exposes photo upload and retrieval.
type Service struct {
	storage Storage
}

// New constructs a Service.
func New(storage Storage) *Service {
	return &Service{storage: storage}
}

// Upload stores the blob under a fresh key and returns that key.
func (s *Service) Upload(ctx context.Context, uploader, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyUpload
	}

	key := uuid.NewString()
	err := s.storage.CreatePhoto(ctx, store.Photo{
		Key:         key,
		Uploader:    uploader,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// Get returns the photo stored under key, or store.ErrNotFound.
func (s *Service) Get(ctx context.Context, key string) (store.Photo, error) {
	return s.storage.GetPhoto(ctx, key)
}
