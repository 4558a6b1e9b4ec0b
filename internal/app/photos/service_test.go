package photos

import (
	"context"
	"errors"
	"testing"

	"songbook/internal/store"
)

type fakeStorage struct {
	photos map[string]store.Photo
}

func (f *fakeStorage) CreatePhoto(_ context.Context, photo store.Photo) error {
	f.photos[photo.Key] = photo
	return nil
}

func (f *fakeStorage) GetPhoto(_ context.Context, key string) (store.Photo, error) {
	p, ok := f.photos[key]
	if !ok {
		return store.Photo{}, store.ErrNotFound
	}
	return p, nil
}

func TestUploadAndGet(t *testing.T) {
	ctx := context.Background()
	storage := &fakeStorage{photos: map[string]store.Photo{}}
	svc := New(storage)

	key, err := svc.Upload(ctx, "anon", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if key == "" {
		t.Fatal("expected a generated key")
	}

	photo, err := svc.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if photo.ContentType != "image/png" || photo.Uploader != "anon" || len(photo.Data) != 4 {
		t.Fatalf("got %+v", photo)
	}

	other, err := svc.Upload(ctx, "anon", "image/png", []byte{1})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if other == key {
		t.Fatal("keys must be unique per upload")
	}
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	storage := &fakeStorage{photos: map[string]store.Photo{}}
	svc := New(storage)

	_, err := svc.Upload(context.Background(), "anon", "image/png", nil)
	if !errors.Is(err, ErrEmptyUpload) {
		t.Fatalf("want ErrEmptyUpload, got %v", err)
	}
	if len(storage.photos) != 0 {
		t.Fatal("nothing should be persisted")
	}
}

func TestGetMissing(t *testing.T) {
	svc := New(&fakeStorage{photos: map[string]store.Photo{}})

	_, err := svc.Get(context.Background(), "no-such-key")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
