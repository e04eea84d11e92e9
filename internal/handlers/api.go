package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/suyash01/splitease/internal/settlement"
	"go.uber.org/zap"
)

type settleRequest struct {
	Input string `json:"input"`
}

type errorResponse struct {
	Error string               `json:"error"`
	Kind  settlement.ErrorKind `json:"kind,omitempty"`
	Line  *int                 `json:"line,omitempty"`
}

// HandleAPISettle is the JSON counterpart of HandleSettle.
func HandleAPISettle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "input too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res, err := settlement.Settle(req.Input)
	if err != nil {
		var perr *settlement.ParseError
		if !errors.As(err, &perr) {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		line := perr.Line
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: perr.Kind, Line: &line})
		return
	}

	writeJSON(w, http.StatusOK, res.Summary())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}
