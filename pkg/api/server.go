/*
Copyright © 2025 Dataloop AI
SPDX-License-Identifier: Apache-2.0
*/

// Package api exposes the config pipeline over HTTP. It is a thin layer
// over pkg/server: it registers the validate and encode routes and
// delegates lifecycle, middleware, and metrics to the server package.
//
// Endpoints:
//   - POST /v1/validate - run field validation, return the full violation report
//   - POST /v1/encode   - run the whole pipeline, return the base64 artifact
//   - GET  /health, /ready, /metrics - system endpoints
package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dataloop-ai/computectl/pkg/defaults"
	"github.com/dataloop-ai/computectl/pkg/pipeline"
	"github.com/dataloop-ai/computectl/pkg/serializer"
	"github.com/dataloop-ai/computectl/pkg/server"
	"github.com/dataloop-ai/computectl/pkg/validator"
)

// maxBodyBytes bounds request bodies; config documents are small.
const maxBodyBytes = 1 << 20

// Handler serves the pipeline endpoints.
type Handler struct {
	pipeline *pipeline.Pipeline
}

// NewHandler creates a Handler with a default pipeline.
func NewHandler() *Handler {
	return &Handler{pipeline: pipeline.New()}
}

// EncodeResponse is the success body of POST /v1/encode.
type EncodeResponse struct {
	Config string `json:"config"`
}

// HandleValidate runs field validation and returns the accumulated
// result. A config with violations is still a 200: the report itself is
// the product, mirroring the validate CLI command.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.readBody(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ValidateHandlerTimeout)
	defer cancel()

	result, err := h.pipeline.Validate(ctx, raw)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, server.ErrCodeInvalidRequest,
			err.Error(), false, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandleEncode runs the full pipeline and returns the artifact. Invalid
// configs get a 422 carrying every violation.
func (h *Handler) HandleEncode(w http.ResponseWriter, r *http.Request) {
	raw, ok := h.readBody(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ValidateHandlerTimeout)
	defer cancel()

	artifact, err := h.pipeline.Run(ctx, raw)
	if err != nil {
		var vErr *validator.ConfigValidationError
		if errors.As(err, &vErr) {
			server.WriteError(w, r, http.StatusUnprocessableEntity, server.ErrCodeInvalidConfig,
				"config validation failed", false, map[string]any{
					"violations": vErr.Violations,
				})
			return
		}
		server.WriteError(w, r, http.StatusUnprocessableEntity, server.ErrCodeInvalidConfig,
			err.Error(), false, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, EncodeResponse{Config: artifact.Encoded})
}

// readBody enforces the POST method and reads the request body. A false
// return means the error response was already written.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if r.Method != http.MethodPost {
		server.WriteError(w, r, http.StatusMethodNotAllowed, server.ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return nil, false
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, server.ErrCodeInvalidRequest,
			"failed to read request body", false, nil)
		return nil, false
	}
	return raw, true
}

// Serve starts the validation service and blocks until the context is
// cancelled.
func Serve(ctx context.Context, name, version string) error {
	h := NewHandler()

	cfg := server.NewConfig()
	cfg.Name = name
	cfg.Version = version
	cfg.Handlers = map[string]http.HandlerFunc{
		"/v1/validate": h.HandleValidate,
		"/v1/encode":   h.HandleEncode,
	}

	s := server.NewServer(cfg)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}
