package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/beerstock/internal/service"
	"go.uber.org/zap"
)

var errorStatus = []struct {
	target error
	status int
}{
	{service.ErrBeerAlreadyRegistered, http.StatusBadRequest},
	{service.ErrBeerNotFound, http.StatusNotFound},
	{service.ErrStockExceeded, http.StatusBadRequest},
	{service.ErrStockInsufficient, http.StatusBadRequest},
	{service.ErrInvalidQuantity, http.StatusBadRequest},
}

// statusFor maps a service error to the HTTP status it is answered with.
func statusFor(err error) int {
	for _, e := range errorStatus {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, msg string) {
	if err := writeJSON(w, status, ErrorResponse{Error: msg}); err != nil {
		logger.Error("failed to write error response", zap.Error(err))
	}
}

// writeServiceError answers err with its mapped status. Unexpected errors are
// logged and their text is not sent to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("unexpected service error", zap.Error(err))
		writeError(w, status, "internal server error")
		return
	}
	writeError(w, status, err.Error())
}
