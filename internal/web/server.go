// Package web serves the HTML surface of the song catalogue.
package web

import (
	"context"
	"html/template"
	"net/http"
	"regexp"
	"strconv"

	"songbook/internal/app/songs"
	"songbook/internal/store"
)

// SongService captures the catalogue operations the HTML handlers
// need.
type SongService interface {
	AllSongs(ctx context.Context, refresh bool) ([]store.Song, error)
	Get(ctx context.Context, id int64) (store.Song, error)
	Create(ctx context.Context, title, audiolink, performer string) (store.Song, error)
	Delete(ctx context.Context, id int64) error
	SetLyrics(ctx context.Context, id int64, lyrics string) error

	Recordings(ctx context.Context, songID int64, refresh bool) ([]store.Recording, error)
	GetRecording(ctx context.Context, songID, recID int64) (store.Recording, error)
	AddRecording(ctx context.Context, songID int64, audiolink, performer string) (store.Recording, error)
	UpdateRecording(ctx context.Context, songID, recID int64, audiolink, performer string) error
	DeleteRecording(ctx context.Context, songID, recID int64) error

	Export(ctx context.Context) ([]songs.SongExport, error)
	Import(ctx context.Context, raw []byte) error
}

// PhotoService captures the photo blob operations the handlers need.
type PhotoService interface {
	Upload(ctx context.Context, uploader, contentType string, data []byte) (string, error)
	Get(ctx context.Context, key string) (store.Photo, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	songs     SongService
	photos    PhotoService
	templates map[string]*template.Template
}

// New configures a Server with the given services.
func New(songSvc SongService, photoSvc PhotoService) (*Server, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Server{songs: songSvc, photos: photoSvc, templates: templates}, nil
}

// Routes exposes the HTML handlers.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /newsong", s.handleNewSongForm)
	mux.HandleFunc("POST /newsong", s.handleNewSong)

	mux.HandleFunc("GET /song/{id}", s.handleSongPage)
	mux.HandleFunc("GET /song/{id}/edit", s.handleEditLyricsForm)
	mux.HandleFunc("POST /song/{id}/edit", s.handleEditLyrics)
	mux.HandleFunc("POST /song/{id}/delete", s.handleDeleteSong)

	mux.HandleFunc("GET /song/{id}/addrec", s.handleAddRecordingForm)
	mux.HandleFunc("POST /song/{id}/addrec", s.handleAddRecording)
	mux.HandleFunc("GET /song/{id}/rec/{rid}/edit", s.handleEditRecordingForm)
	mux.HandleFunc("POST /song/{id}/rec/{rid}/edit", s.handleEditRecording)
	mux.HandleFunc("POST /song/{id}/rec/{rid}/delete", s.handleDeleteRecording)

	mux.HandleFunc("GET /export.json", s.handleExport)
	mux.HandleFunc("GET /import", s.handleImportForm)
	mux.HandleFunc("POST /import", s.handleImport)

	mux.HandleFunc("GET /upload", s.handleUploadForm)
	mux.HandleFunc("POST /upload_photo", s.handleUploadPhoto)
	mux.HandleFunc("GET /view_photo/{key}", s.handleViewPhoto)

	return mux
}

var idPattern = regexp.MustCompile(`^[0-9]+$`)

// pathID reads a numeric path segment. A segment that is not all
// digits never reaches ParseInt.
func pathID(r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	if !idPattern.MatchString(raw) {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}
