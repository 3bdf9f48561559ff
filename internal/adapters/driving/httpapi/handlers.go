package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/custodia-labs/rna-msa/internal/core/domain"
)

// MaxParseBody bounds the size of a POST /parse body.
const MaxParseBody = 32 << 20

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, "RNA Sequence API", map[string]any{
		"endpoints": map[string]string{
			"sequences":     "/family/{identifier}",
			"raw_sequences": "/family/{identifier}/raw",
			"families":      "/families",
			"parse":         "POST /parse",
			"health":        "/health",
		},
		"examples": map[string]string{
			"msa_format": "/family/RF03116",
			"raw_format": "/family/RF03116/raw",
		},
		"description": "API for RNA multiple sequence alignment data",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, "API is running", s.svc.Health(r.Context()))
}

func (s *Server) handleFamilies(w http.ResponseWriter, r *http.Request) {
	ids, err := s.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, fmt.Sprintf("%d families available", len(ids)), map[string]any{
		"families": ids,
		"count":    len(ids),
	})
}

func (s *Server) handleFamily(w http.ResponseWriter, r *http.Request) {
	opts, err := s.parseOptions(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	family, err := s.svc.Get(r.Context(), r.PathValue("identifier"), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if family.Document.Len() == 0 {
		writeError(w, http.StatusNotFound, MessageNoSequences)
		return
	}

	writeSuccess(w, MessageLoaded, NewFamilyPayload(family))
}

func (s *Server) handleFamilyRaw(w http.ResponseWriter, r *http.Request) {
	raw, err := s.svc.GetRaw(r.Context(), r.PathValue("identifier"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, raw)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	opts, err := s.parseOptions(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxParseBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("read body: %v", err))
		return
	}

	doc, err := s.svc.Parse(r.Context(), string(body), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, MessageLoaded, doc)
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, MessageNotFound)
}

// parseOptions applies ?features= and ?strict= over the server defaults.
func (s *Server) parseOptions(r *http.Request) (domain.ParseOptions, error) {
	opts := s.defaults
	q := r.URL.Query()
	for name, target := range map[string]*bool{"features": &opts.Features, "strict": &opts.Strict} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidInput, name, v)
		}
		*target = b
	}
	return opts, nil
}
