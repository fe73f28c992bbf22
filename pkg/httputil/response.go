// Package httputil provides helpers for writing JSON HTTP responses.
package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/logger"
)

// Response is the standard envelope for all JSON responses.
type Response struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
	Meta  *Meta      `json:"meta,omitempty"`
}

// ErrorBody carries machine-readable error information.
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Meta carries pagination information for list responses.
type Meta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// WriteJSON writes data wrapped in the standard envelope with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, Response{Data: data})
}

// WriteList writes a list response with pagination metadata.
func WriteList(w http.ResponseWriter, status int, data any, meta Meta) {
	writeEnvelope(w, status, Response{Data: data, Meta: &meta})
}

// WriteError writes an error response, mapping err to an AppError.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errors.AsAppError(err)

	if appErr.StatusCode >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
		)
	}

	writeEnvelope(w, appErr.StatusCode, Response{
		Error: &ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
			Fields:  appErr.Fields,
		},
	})
}

// WriteNoContent writes a 204 response with no body.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.NewInvalidInput("invalid request body")
	}
	return nil
}

func writeEnvelope(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
