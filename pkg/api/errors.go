package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/hadesxkore/bhss-distribution/pkg/distribution"
	"github.com/hadesxkore/bhss-distribution/pkg/store"
)

// errorResponse is the JSON envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

// writeParseError maps the import failure taxonomy onto HTTP statuses.
// All four taxonomy members are user-facing 422s; anything else (a
// corrupt workbook, an I/O failure) is a 400.
func writeParseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, distribution.ErrTemplateMismatch):
		writeError(w, http.StatusUnprocessableEntity, "template_mismatch", err.Error())
	case errors.Is(err, distribution.ErrWorksheetNotFound):
		writeError(w, http.StatusUnprocessableEntity, "worksheet_not_found", err.Error())
	case errors.Is(err, distribution.ErrEmptyResult):
		writeError(w, http.StatusUnprocessableEntity, "empty_result", err.Error())
	case errors.Is(err, distribution.ErrNoWorksheets):
		writeError(w, http.StatusUnprocessableEntity, "no_worksheets", err.Error())
	default:
		writeError(w, http.StatusBadRequest, "invalid_workbook", err.Error())
	}
}

// writeStoreError maps store failures onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrBatchNotFound):
		writeError(w, http.StatusNotFound, "batch_not_found", err.Error())
	case errors.Is(err, store.ErrRowNotFound):
		writeError(w, http.StatusNotFound, "row_not_found", err.Error())
	default:
		log.Printf("store error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}
