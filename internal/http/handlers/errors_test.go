package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/rogerio-castellano/beerstock/internal/service"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"already registered", service.ErrBeerAlreadyRegistered, http.StatusBadRequest},
		{"not found", service.ErrBeerNotFound, http.StatusNotFound},
		{"stock exceeded", &service.StockExceededError{ID: 1, Quantity: 5, Max: 10}, http.StatusBadRequest},
		{"stock insufficient", &service.StockInsufficientError{ID: 1, Quantity: 5, Stock: 1}, http.StatusBadRequest},
		{"invalid quantity", fmt.Errorf("adjust: %w", service.ErrInvalidQuantity), http.StatusBadRequest},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(tt.err); got != tt.want {
				t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
