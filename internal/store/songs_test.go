package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListSongsOrdered(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	rows := sqlmock.NewRows([]string{"id", "title", "lyrics"}).
		AddRow(int64(2), "Dubinushka", "").
		AddRow(int64(1), "Katyusha", "Rastsvetali yabloni i grushi")

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY title")).WillReturnRows(rows)

	songs, err := s.ListSongs(context.Background())
	if err != nil {
		t.Fatalf("ListSongs: %v", err)
	}
	if len(songs) != 2 {
		t.Fatalf("got %d songs, want 2", len(songs))
	}
	if songs[0].Title != "Dubinushka" || songs[1].Title != "Katyusha" {
		t.Fatalf("unexpected order: %q, %q", songs[0].Title, songs[1].Title)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListSongsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY title")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "lyrics"}))

	songs, err := s.ListSongs(context.Background())
	if err != nil {
		t.Fatalf("ListSongs: %v", err)
	}
	if songs == nil || len(songs) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", songs)
	}
}

func TestCreateSong(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO songs")).
		WithArgs("Katyusha", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	song, err := s.CreateSong(context.Background(), "Katyusha", "")
	if err != nil {
		t.Fatalf("CreateSong: %v", err)
	}
	if song.ID != 7 || song.Title != "Katyusha" {
		t.Fatalf("got %+v", song)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetSongNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM songs")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "lyrics"}))

	_, err = s.GetSong(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpdateLyricsMissingSong(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE songs")).
		WithArgs(int64(99), "la la la").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = s.UpdateLyrics(context.Background(), 99, "la la la")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDeleteSong(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM songs")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.DeleteSong(context.Background(), 3); err != nil {
		t.Fatalf("DeleteSong: %v", err)
	}
}

func TestSongURLs(t *testing.T) {
	song := Song{ID: 12}
	if got := song.URL(); got != "/song/12" {
		t.Errorf("URL() = %q", got)
	}
	if got := song.AddRecordingURL(); got != "/song/12/addrec" {
		t.Errorf("AddRecordingURL() = %q", got)
	}
	if got := song.EditLyricsURL(); got != "/song/12/edit" {
		t.Errorf("EditLyricsURL() = %q", got)
	}
	if got := song.DeleteURL(); got != "/song/12/delete" {
		t.Errorf("DeleteURL() = %q", got)
	}
}
