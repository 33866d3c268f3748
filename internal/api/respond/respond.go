// Package respond writes uniform JSON responses.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type successBody struct {
	Data any `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
}

// OK writes a 200 response with the given payload.
func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, successBody{Data: data})
}

// Created writes a 201 response with the given payload.
func Created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, successBody{Data: data})
}

// Fail writes an error response with the given status code.
func Fail(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response body")
	}
}
