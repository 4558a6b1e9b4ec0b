package web

import (
	"errors"
	"io"
	"net/http"

	"songbook/internal/store"
)

// maxUploadBytes caps the in-memory size of a photo upload.
const maxUploadBytes = 16 << 20

type uploadFormData struct {
	UploadURL string
}

func (s *Server) handleUploadForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "upload", uploadFormData{UploadURL: "/upload_photo"})
}

// handleUploadPhoto accepts one multipart file. Any failure along the
// way is a plain 500, matching the endpoint's contract.
func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.serverError(w, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.serverError(w, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.serverError(w, err)
		return
	}

	key, err := s.photos.Upload(r.Context(), r.FormValue("uploader"), header.Header.Get("Content-Type"), data)
	if err != nil {
		s.serverError(w, err)
		return
	}

	redirect(w, r, "/view_photo/"+key)
}

func (s *Server) handleViewPhoto(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	photo, err := s.photos.Get(r.Context(), key)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		s.serverError(w, err)
		return
	}

	contentType := photo.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(photo.Data)
}
