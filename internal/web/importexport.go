package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"songbook/internal/app/songs"
)

type importFormData struct {
	JSON  string
	Error string
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	exported, err := s.songs.Export(r.Context())
	if err != nil {
		s.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(exported); err != nil {
		s.serverError(w, err)
	}
}

func (s *Server) handleImportForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "import", importFormData{})
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("json")

	err := s.songs.Import(r.Context(), []byte(raw))
	if err != nil {
		var pe *songs.ParseError
		if errors.As(err, &pe) {
			s.render(w, http.StatusOK, "import", importFormData{
				JSON:  raw,
				Error: pe.Error(),
			})
			return
		}
		s.serverError(w, err)
		return
	}

	redirect(w, r, "/")
}
