package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/stackbox/pkg/buildinfo"
	"github.com/matzehuels/stackbox/pkg/errors"
	"github.com/matzehuels/stackbox/pkg/pipeline"
	"github.com/matzehuels/stackbox/pkg/render/sink"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz",
	pipeline.FormatTree: "image/svg+xml",
}

type checkResponse struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Cached bool `json:"cached"`
}

type errorResponse struct {
	Error   errors.Code `json:"error"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	src, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	size, hit, err := s.runner.CheckWithCacheInfo(r.Context(), src, pipeline.Options{})
	if err != nil {
		s.writeError(w, err)
		return
	}
	setCacheHeader(w, hit)
	writeJSON(w, http.StatusOK, checkResponse{Width: size.X, Height: size.Y, Cached: hit})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	src, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts, err := parseOptions(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	snap, hit, err := s.runner.LayoutWithCacheInfo(r.Context(), src, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	var jopts []sink.JSONOption
	if opts.ShowHidden {
		jopts = append(jopts, sink.WithJSONHidden())
	}
	data, err := sink.RenderJSON(snap, jopts...)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "encode layout"))
		return
	}
	setCacheHeader(w, hit)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	src, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts, err := parseOptions(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts.Formats = []string{format}
	artifacts, hit, err := s.runner.RenderWithCacheInfo(r.Context(), src, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	setCacheHeader(w, hit)
	w.Header().Set("Content-Type", contentTypes[format])
	_, _ = w.Write(artifacts[format])
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	src, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read document")
	}
	if len(src) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty document")
	}
	return src, nil
}

// parseOptions reads the layout and render options from the query string.
func parseOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	var opts pipeline.Options
	var err error
	if opts.Width, err = intParam(q.Get("width")); err != nil {
		return opts, err
	}
	if opts.Height, err = intParam(q.Get("height")); err != nil {
		return opts, err
	}
	if v := q.Get("scale"); v != "" {
		if opts.Scale, err = strconv.ParseFloat(v, 64); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "scale must be a number (got %q)", v)
		}
	}
	opts.Palette = q.Get("palette")
	opts.Title = q.Get("title")
	opts.NoLabels = q.Get("labels") == "false"
	opts.ShowHidden = q.Get("hidden") == "true"
	opts.Detailed = q.Get("detailed") == "true"
	opts.Refresh = q.Get("refresh") == "true"
	return opts, nil
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "expected an integer (got %q)", v)
	}
	return n, nil
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(errors.GetCode(err))
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Error: code, Message: errors.UserMessage(err)})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidID:
		return http.StatusBadRequest
	case errors.ErrCodeInvalidDocument, errors.ErrCodeInvalidMode,
		errors.ErrCodeDuplicateChild, errors.ErrCodeUnknownChild:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, `{"error":"INTERNAL_ERROR"}`)
	}
}
