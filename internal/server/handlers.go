package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/honeycomb/pkg/buildinfo"
	"github.com/matzehuels/honeycomb/pkg/errors"
	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/observability"
	"github.com/matzehuels/honeycomb/pkg/pipeline"
	"github.com/matzehuels/honeycomb/pkg/preset"
	"github.com/matzehuels/honeycomb/pkg/settings"
)

// maxBodyBytes bounds preset request bodies.
const maxBodyBytes = 1 << 20

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type createPresetRequest struct {
	Name     string          `json:"name"`
	Settings json.RawMessage `json:"settings"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Current()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	s.serveLayout(w, r, opts)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	s.serveRender(w, r, opts)
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	all, err := s.Presets.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleCreatePreset(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}
	var req createPresetRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid JSON body"))
		return
	}

	// Fields missing from the request keep their defaults.
	st := settings.Default()
	if len(req.Settings) > 0 {
		if err := json.Unmarshal(req.Settings, &st); err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid settings"))
			return
		}
	}

	p, err := preset.New(req.Name, st)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.Presets.Save(r.Context(), p); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.Logger.Info("saved preset", "id", p.ID, "name", p.Name)
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	p, err := s.lookupPreset(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	id, err := presetID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.Presets.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePresetLayout(w http.ResponseWriter, r *http.Request) {
	p, err := s.lookupPreset(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.serveLayout(w, r, pipeline.OptionsFromSettings(p.Settings))
}

func (s *Server) handlePresetRender(w http.ResponseWriter, r *http.Request) {
	p, err := s.lookupPreset(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.serveRender(w, r, pipeline.OptionsFromSettings(p.Settings))
}

// serveLayout computes the layout for base overridden by the query.
func (s *Server) serveLayout(w http.ResponseWriter, r *http.Request, base pipeline.Options) {
	if err := applyQuery(&base, r.URL.Query()); err != nil {
		s.writeError(w, r, err)
		return
	}
	l, err := s.Runner.GenerateLayout(r.Context(), base)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := hexgrid.MarshalLayout(l)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeBytes(w, contentTypes[pipeline.FormatJSON], data)
}

// serveRender renders the {format} URL parameter for base overridden by the query.
func (s *Server) serveRender(w http.ResponseWriter, r *http.Request, base pipeline.Options) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := applyQuery(&base, r.URL.Query()); err != nil {
		s.writeError(w, r, err)
		return
	}
	base.Formats = []string{format}

	res, err := s.Runner.Execute(r.Context(), base)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeBytes(w, contentTypes[format], res.Artifacts[format])
}

func (s *Server) lookupPreset(r *http.Request) (*preset.Preset, error) {
	id, err := presetID(r)
	if err != nil {
		return nil, err
	}
	return s.Presets.Get(r.Context(), id)
}

func presetID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New(errors.ErrCodeInvalidInput, "invalid preset id %q", raw)
	}
	return id, nil
}

// writeError maps err to a status via its code. Internal errors are
// logged and reported without details.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)

	status := errors.HTTPStatus(err)
	code := string(errors.GetCode(err))
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		code, msg = string(errors.ErrCodeInternal), "internal error"
	}
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	writeAPIError(w, status, code, msg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Code: code, Message: message})
}

func writeBytes(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
