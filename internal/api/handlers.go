package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pressroom-io/pressroom/internal/document"
)

// documentJSON is the wire shape of a document. The legacy bag is exposed
// so external renderers can use migrated metadata this core does not
// interpret. Body is only included on single-document responses.
type documentJSON struct {
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Author      string            `json:"author,omitempty"`
	PublishedAt *time.Time        `json:"published_at,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Excerpt     string            `json:"excerpt,omitempty"`
	Legacy      map[string]string `json:"legacy_fields,omitempty"`
	Origin      string            `json:"origin"`
	Body        string            `json:"body,omitempty"`
}

func toJSON(d *document.Document, withBody bool) documentJSON {
	out := documentJSON{
		Slug:        d.Slug,
		Title:       d.Header.Title,
		Author:      d.Header.Author,
		PublishedAt: d.Header.PublishedAt,
		Tags:        d.Header.Tags,
		Excerpt:     d.Excerpt,
		Origin:      d.Origin,
	}
	if len(d.Header.Legacy) > 0 {
		out.Legacy = d.Header.Legacy
	}
	if withBody {
		out.Body = d.Body
	}
	return out
}

func toJSONList(docs []*document.Document) []documentJSON {
	out := make([]documentJSON, 0, len(docs))
	for _, d := range docs {
		out = append(out, toJSON(d, false))
	}
	return out
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	m := s.holder.Current()
	writeJSON(w, map[string]any{
		"run_id":    m.RunID(),
		"documents": toJSONList(m.AllDocumentsChronological()),
	})
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	m := s.holder.Current()
	doc, ok := m.DocumentBySlug(chi.URLParam(r, "slug"))
	if !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	writeJSON(w, toJSON(doc, true))
}

func (s *Server) handleRelated(w http.ResponseWriter, r *http.Request) {
	m := s.holder.Current()
	doc, ok := m.DocumentBySlug(chi.URLParam(r, "slug"))
	if !ok {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{
		"slug":    doc.Slug,
		"related": toJSONList(m.RelatedDocuments(doc.ID)),
	})
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"tags": s.holder.Current().Tags()})
}

func (s *Server) handleTag(w http.ResponseWriter, r *http.Request) {
	m := s.holder.Current()
	tag := chi.URLParam(r, "tag")
	docs := m.DocumentsByTag(tag)
	if len(docs) == 0 {
		jsonError(w, "tag not found", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{
		"tag":       tag,
		"documents": toJSONList(docs),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
