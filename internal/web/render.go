package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"lyricsHTML": lyricsHTML,
}

// lyricsHTML escapes the lyrics and turns newlines into line breaks.
func lyricsHTML(lyrics string) template.HTML {
	escaped := template.HTMLEscapeString(lyrics)
	escaped = strings.ReplaceAll(escaped, "\r\n", "<br>")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return template.HTML(escaped)
}

// parseTemplates builds one template set per page, each sharing the
// base layout.
func parseTemplates() (map[string]*template.Template, error) {
	pages := []string{"main", "newsong", "song", "recording", "import", "upload"}

	out := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("base.html").
			Funcs(templateFuncs).
			ParseFS(templateFS, "templates/base.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		out[page] = t
	}
	return out, nil
}

// render executes the named page into a buffer first so a template
// failure becomes a clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := s.templates[page]
	if !ok {
		s.serverError(w, fmt.Errorf("unknown template %q", page))
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html", data); err != nil {
		s.serverError(w, fmt.Errorf("render %s: %w", page, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("request failed")
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, "Not Found", http.StatusNotFound)
}
