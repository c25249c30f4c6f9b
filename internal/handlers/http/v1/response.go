package v1

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/muutmoku/ao-build-share/internal/entities/build"
	"github.com/muutmoku/ao-build-share/internal/errors"
)

// maxBodySize caps JSON request bodies
const maxBodySize = 1 << 20

// BuildResponse is returned by every build endpoint
type BuildResponse struct {
	Query string      `json:"query"`
	State build.State `json:"state"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	payload, err := sonic.Marshal(body)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode response", "path", r.URL.Path, "error", err)
		http.Error(w, `{"error":{"code":"INTERNAL","message":"failed to encode response"}}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload) // nolint:errcheck // client went away
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "error", err)
	}

	writeJSON(w, r, status, ErrorResponse{Error: ErrorBody{
		Code:    code.String(),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	}})
}

func readJSON(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request body")
	}
	if len(body) > maxBodySize {
		return errors.InvalidArgument("request body too large")
	}
	if err := sonic.Unmarshal(body, dst); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed JSON body")
	}
	return nil
}
