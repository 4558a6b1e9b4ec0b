package web

import (
	"errors"
	"net/http"

	"songbook/internal/store"
)

// Validation messages shown on the forms.
const (
	errEmptyTitle     = "Название не может быть пустым!"
	errEmptyAudioLink = "Линк не может быть пустым"
)

type songListData struct {
	Songs []store.Song
}

type songFormData struct {
	Title     string
	AudioLink string
	Performer string
	Error     string
}

type songPageData struct {
	Song       store.Song
	Recordings []store.Recording
	EditLyrics bool
}

type recordingFormData struct {
	Song      store.Song
	AudioLink string
	Performer string
	Error     string
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	all, err := s.songs.AllSongs(r.Context(), false)
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, http.StatusOK, "main", songListData{Songs: all})
}

func (s *Server) handleNewSongForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "newsong", songFormData{})
}

func (s *Server) handleNewSong(w http.ResponseWriter, r *http.Request) {
	title := r.FormValue("title")
	audiolink := r.FormValue("audiolink")
	performer := r.FormValue("performer")

	if title == "" {
		s.render(w, http.StatusOK, "newsong", songFormData{
			Title:     title,
			AudioLink: audiolink,
			Performer: performer,
			Error:     errEmptyTitle,
		})
		return
	}

	song, err := s.songs.Create(r.Context(), title, audiolink, performer)
	if err != nil {
		s.serverError(w, err)
		return
	}
	redirect(w, r, song.URL())
}

// loadSong resolves the {id} segment into a song, writing the 404
// itself when it cannot.
func (s *Server) loadSong(w http.ResponseWriter, r *http.Request) (store.Song, bool) {
	id, ok := pathID(r, "id")
	if !ok {
		notFound(w)
		return store.Song{}, false
	}

	song, err := s.songs.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w)
		return store.Song{}, false
	}
	if err != nil {
		s.serverError(w, err)
		return store.Song{}, false
	}
	return song, true
}

func (s *Server) renderSongPage(w http.ResponseWriter, r *http.Request, song store.Song, editLyrics bool) {
	recs, err := s.songs.Recordings(r.Context(), song.ID, false)
	if err != nil {
		s.serverError(w, err)
		return
	}
	s.render(w, http.StatusOK, "song", songPageData{
		Song:       song,
		Recordings: recs,
		EditLyrics: editLyrics,
	})
}

func (s *Server) handleSongPage(w http.ResponseWriter, r *http.Request) {
	song, ok := s.loadSong(w, r)
	if !ok {
		return
	}
	s.renderSongPage(w, r, song, false)
}

func (s *Server) handleEditLyricsForm(w http.ResponseWriter, r *http.Request) {
	song, ok := s.loadSong(w, r)
	if !ok {
		return
	}
	s.renderSongPage(w, r, song, true)
}

func (s *Server) handleEditLyrics(w http.ResponseWriter, r *http.Request) {
	song, ok := s.loadSong(w, r)
	if !ok {
		return
	}

	// No emptiness check: clearing the lyrics is allowed.
	if err := s.songs.SetLyrics(r.Context(), song.ID, r.FormValue("lyrics")); err != nil {
		s.serverError(w, err)
		return
	}
	redirect(w, r, song.URL())
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		notFound(w)
		return
	}

	err := s.songs.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	redirect(w, r, "/")
}

func (s *Server) handleAddRecordingForm(w http.ResponseWriter, r *http.Request) {
	song, ok := s.loadSong(w, r)
	if !ok {
		return
	}
	s.render(w, http.StatusOK, "recording", recordingFormData{Song: song})
}

func (s *Server) handleAddRecording(w http.ResponseWriter, r *http.Request) {
	song, ok := s.loadSong(w, r)
	if !ok {
		return
	}

	audiolink := r.FormValue("audiolink")
	performer := r.FormValue("performer")
	if audiolink == "" {
		s.render(w, http.StatusOK, "recording", recordingFormData{
			Song:      song,
			AudioLink: audiolink,
			Performer: performer,
			Error:     errEmptyAudioLink,
		})
		return
	}

	if _, err := s.songs.AddRecording(r.Context(), song.ID, audiolink, performer); err != nil {
		s.serverError(w, err)
		return
	}
	redirect(w, r, song.URL())
}

// loadRecording resolves the {rid} segment against the already-loaded
// song, writing the 404 itself when it cannot.
func (s *Server) loadRecording(w http.ResponseWriter, r *http.Request, song store.Song) (store.Recording, bool) {
	recID, ok := pathID(r, "rid")
	if !ok {
		notFound(w)
		return store.Recording{}, false
	}

	rec, err := s.songs.GetRecording(r.Context(), song.ID, recID)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w)
		return store.Recording{}, false
	}
	if err != nil {
		s.serverError(w, err)
		return store.Recording{}, false
	}
	return rec, true
}

func (s *Server) handleEditRecordingForm(w http.ResponseWriter, r *http.Request) {
	song, ok := s.loadSong(w, r)
	if !ok {
		return
	}
	rec, ok := s.loadRecording(w, r, song)
	if !ok {
		return
	}
	s.render(w, http.StatusOK, "recording", recordingFormData{
		Song:      song,
		AudioLink: rec.AudioLink,
		Performer: rec.Performer,
	})
}

func (s *Server) handleEditRecording(w http.ResponseWriter, r *http.Request) {
	song, ok := s.loadSong(w, r)
	if !ok {
		return
	}
	rec, ok := s.loadRecording(w, r, song)
	if !ok {
		return
	}

	audiolink := r.FormValue("audiolink")
	performer := r.FormValue("performer")
	if audiolink == "" {
		s.render(w, http.StatusOK, "recording", recordingFormData{
			Song:      song,
			AudioLink: audiolink,
			Performer: performer,
			Error:     errEmptyAudioLink,
		})
		return
	}

	if err := s.songs.UpdateRecording(r.Context(), song.ID, rec.ID, audiolink, performer); err != nil {
		s.serverError(w, err)
		return
	}
	redirect(w, r, song.URL())
}

func (s *Server) handleDeleteRecording(w http.ResponseWriter, r *http.Request) {
	song, ok := s.loadSong(w, r)
	if !ok {
		return
	}
	recID, ok := pathID(r, "rid")
	if !ok {
		notFound(w)
		return
	}

	err := s.songs.DeleteRecording(r.Context(), song.ID, recID)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}
	redirect(w, r, song.URL())
}
