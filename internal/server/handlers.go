package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/wayfinder/pkg/buildinfo"
	"github.com/matzehuels/wayfinder/pkg/definition"
	"github.com/matzehuels/wayfinder/pkg/errors"
	"github.com/matzehuels/wayfinder/pkg/history"
	"github.com/matzehuels/wayfinder/pkg/solve"
)

// inlineName names a request definition that carries no name of its own.
const inlineName = "inline"

// SolveRequest is the body of POST /v1/solve and POST /v1/compare. Exactly
// one of Definition and Builtin must be set.
type SolveRequest struct {
	Definition *definition.Definition `json:"definition,omitempty"`
	Builtin    string                 `json:"builtin,omitempty"`
	Options    solve.Options          `json:"options"`
}

// SolveResponse is the body returned by POST /v1/solve.
type SolveResponse struct {
	RunID  string        `json:"run_id,omitempty"`
	Cached bool          `json:"cached"`
	Report *solve.Report `json:"report"`
}

// CompareResponse is the body returned by POST /v1/compare.
type CompareResponse struct {
	Reports []*solve.Report `json:"reports"`
}

// RunsResponse is the body returned by GET /v1/runs.
type RunsResponse struct {
	Runs []*history.Run `json:"runs"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// HandleHealth handles GET /healthz.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// HandleSolve handles POST /v1/solve.
//
// The run is recorded in the history store; a failed save is logged and
// does not fail the request.
func (s *Server) HandleSolve(w http.ResponseWriter, r *http.Request) {
	def, opts, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rep, cached, err := s.runner.Solve(r.Context(), def, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := SolveResponse{Cached: cached, Report: rep}
	run := history.NewRun(def, rep)
	if err := s.store.Save(r.Context(), run); err != nil {
		s.logger.Warn("failed to record run", "error", err, "request_id", middleware.GetReqID(r.Context()))
	} else {
		resp.RunID = run.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleCompare handles POST /v1/compare. Options.Strategy is ignored.
func (s *Server) HandleCompare(w http.ResponseWriter, r *http.Request) {
	def, opts, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	reports, err := s.runner.Compare(r.Context(), def, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CompareResponse{Reports: reports})
}

// HandleListRuns handles GET /v1/runs?limit=N.
func (s *Server) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid limit: %q", v))
			return
		}
		limit = n
	}

	runs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeStorage, err, "list runs"))
		return
	}
	if runs == nil {
		runs = []*history.Run{}
	}
	writeJSON(w, http.StatusOK, RunsResponse{Runs: runs})
}

// HandleGetRun handles GET /v1/runs/{id}.
func (s *Server) HandleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateRunID(id); err != nil {
		s.writeError(w, r, err)
		return
	}

	run, err := s.store.Get(r.Context(), id)
	if stderrors.Is(err, history.ErrNotFound) {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeRunNotFound, err, "run %s not found", id))
		return
	}
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeStorage, err, "get run"))
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// decodeRequest reads a SolveRequest and resolves its definition. Request
// limits never exceed the server's.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (*definition.Definition, solve.Options, error) {
	var req SolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, solve.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}

	var def *definition.Definition
	switch {
	case req.Definition != nil && req.Builtin != "":
		return nil, solve.Options{}, errors.New(errors.ErrCodeInvalidInput, "set either definition or builtin, not both")
	case req.Builtin != "":
		d, ok := definition.Builtin(req.Builtin)
		if !ok {
			return nil, solve.Options{}, errors.New(errors.ErrCodeNotFound, "unknown builtin %q (available: %s)",
				req.Builtin, strings.Join(definition.Builtins(), ", "))
		}
		def = d
	case req.Definition != nil:
		def = req.Definition
		if def.Name == "" {
			def.Name = inlineName
		}
	default:
		return nil, solve.Options{}, errors.New(errors.ErrCodeInvalidInput, "definition or builtin is required")
	}

	opts := req.Options
	if opts.Timeout <= 0 || opts.Timeout > s.cfg.SolveTimeout {
		opts.Timeout = s.cfg.SolveTimeout
	}
	if opts.MaxIterations <= 0 || opts.MaxIterations > s.cfg.MaxIterations {
		opts.MaxIterations = s.cfg.MaxIterations
	}
	opts.Logger = s.logger
	return def, opts, nil
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	c := string(code)
	switch {
	case strings.HasPrefix(c, "INVALID_"), code == errors.ErrCodeUnsupportedKind:
		return http.StatusBadRequest
	case strings.HasSuffix(c, "NOT_FOUND"):
		return http.StatusNotFound
	case code == errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
	} else {
		msg = err.Error()
		s.logger.Debug("request rejected", "code", code, "error", err)
	}
	writeJSON(w, status, ErrorResponse{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, `{"code":%q,"message":"encode response"}`, errors.ErrCodeInternal)
	}
}
