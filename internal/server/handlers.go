// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/crntk/analysis"
	"github.com/katalvlaran/crntk/internal/logging"
	"github.com/katalvlaran/crntk/network"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the body of /healthz.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	job, err := s.mgr.Submit(string(body))
	switch {
	case errors.Is(err, network.ErrSyntax):
		s.writeError(w, http.StatusBadRequest, err)
		return
	case errors.Is(err, analysis.ErrManagerClosed):
		s.writeError(w, http.StatusServiceUnavailable, err)
		return
	case err != nil:
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Location", "/v1/analyses/"+job.ID)
	s.writeJSON(w, http.StatusAccepted, job)
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.mgr.List())
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	job, err := s.mgr.Get(r.PathValue("id"))
	if err != nil {
		s.writeJobError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, job)
}

func (s *Server) cancel(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.mgr.Cancel(id); err != nil {
		s.writeJobError(w, err)
		return
	}
	job, err := s.mgr.Get(id)
	if err != nil {
		s.writeJobError(w, err)
		return
	}
	s.writeJSON(w, http.StatusAccepted, job)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}
	code := http.StatusOK
	if len(s.checks) > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resp.Components = make(map[string]string, len(s.checks))
		for name, check := range s.checks {
			if err := check(ctx); err != nil {
				resp.Components[name] = err.Error()
				resp.Status = "degraded"
				code = http.StatusServiceUnavailable
				continue
			}
			resp.Components[name] = "ok"
		}
	}
	s.writeJSON(w, code, resp)
}

func (s *Server) writeJobError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analysis.ErrJobNotFound):
		s.writeError(w, http.StatusNotFound, err)
	case errors.Is(err, analysis.ErrJobFinished):
		s.writeError(w, http.StatusConflict, err)
	default:
		s.writeError(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("write response", logging.Err(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, err error) {
	s.writeJSON(w, code, ErrorResponse{Code: http.StatusText(code), Message: err.Error()})
}
