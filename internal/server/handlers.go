package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/staircast/staircast/pkg/buildinfo"
	"github.com/staircast/staircast/pkg/cache"
	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/library"
	"github.com/staircast/staircast/pkg/pipeline"
	"github.com/staircast/staircast/pkg/spec"
)

// renderContentTypes lists the formats served over HTTP. Binary mesh
// formats and PDF stay CLI-only.
var renderContentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// readSpec parses a staircase spec from the request body. The parse is
// strict: unknown fields are rejected and the spec comes back validated
// and normalized.
func (s *Server) readSpec(w http.ResponseWriter, r *http.Request) (spec.Staircase, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidSpec, err, "reading request body"))
		return spec.Staircase{}, false
	}
	sp, err := spec.Parse(body, ".json")
	if err != nil {
		writeError(w, err)
		return spec.Staircase{}, false
	}
	return sp, true
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	sp, ok := s.readSpec(w, r)
	if !ok {
		return
	}

	profile, err := s.runner.Compute(r.Context(), sp)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	contentType, ok := renderContentTypes[format]
	if !ok {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat,
			"format %q is not served over HTTP (svg, png, json)", format))
		return
	}

	sp, ok := s.readSpec(w, r)
	if !ok {
		return
	}

	opts := pipeline.Options{
		Spec:    &sp,
		Formats: []string{format},
		Theme:   r.URL.Query().Get("theme"),
		Title:   r.URL.Query().Get("title"),
	}
	if v := r.URL.Query().Get("dimensions"); v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, errors.New(errors.ErrCodeInvalidFormat,
				"dimensions must be a boolean, got %q", v))
			return
		}
		opts.NoDimensions = !show
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// designStore guards the design routes when no library backend is
// configured.
func (s *Server) designStore(w http.ResponseWriter) (library.Store, bool) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: "design library is not configured",
			Code:  string(errors.ErrCodeStore),
		})
		return nil, false
	}
	return s.store, true
}

func (s *Server) handleListDesigns(w http.ResponseWriter, r *http.Request) {
	store, ok := s.designStore(w)
	if !ok {
		return
	}

	designs, err := store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if designs == nil {
		designs = []*library.Design{}
	}
	writeJSON(w, http.StatusOK, designs)
}

type designRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Spec        spec.Staircase `json:"spec"`
}

func (s *Server) handleCreateDesign(w http.ResponseWriter, r *http.Request) {
	store, ok := s.designStore(w)
	if !ok {
		return
	}

	var req designRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	d, err := library.New(req.Name, req.Description, req.Spec)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := store.Put(r.Context(), d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleGetDesign(w http.ResponseWriter, r *http.Request) {
	store, ok := s.designStore(w)
	if !ok {
		return
	}

	d, err := store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// designPatch distinguishes absent fields from zero values so updates
// can be partial.
type designPatch struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Spec        *spec.Staircase `json:"spec"`
}

func (s *Server) handleUpdateDesign(w http.ResponseWriter, r *http.Request) {
	store, ok := s.designStore(w)
	if !ok {
		return
	}

	d, err := store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	var patch designPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, err)
		return
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			writeError(w, errors.New(errors.ErrCodeInvalidName, "design name cannot be empty"))
			return
		}
		d.Name = *patch.Name
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.Spec != nil {
		if err := patch.Spec.Validate(); err != nil {
			writeError(w, err)
			return
		}
		patch.Spec.Normalize()
		d.Spec = *patch.Spec
	}
	d.Touch()

	if err := store.Put(r.Context(), d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDesign(w http.ResponseWriter, r *http.Request) {
	store, ok := s.designStore(w)
	if !ok {
		return
	}

	if err := store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	store, ok := s.designStore(w)
	if !ok {
		return
	}

	d, err := store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	// Preview artifacts are cached per design.
	preview := &pipeline.Runner{
		Cache:  s.runner.Cache,
		Keyer:  cache.NewScopedKeyer(s.runner.Keyer, "design:"+d.ID+":"),
		Logger: s.runner.Logger,
	}
	result, err := preview.Execute(r.Context(), pipeline.Options{
		Spec:    &d.Spec,
		Formats: []string{pipeline.FormatSVG},
		Title:   d.Name,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[pipeline.FormatSVG])
}
