package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/beerstock/internal/models"
	"go.uber.org/zap"
)

func toBeerResponse(b models.Beer) BeerResponse {
	return BeerResponse{
		ID:       b.ID,
		Name:     b.Name,
		Brand:    b.Brand,
		Max:      b.Max,
		Quantity: b.Quantity,
		Type:     string(b.Type),
	}
}

// CreateBeerHandler godoc
// @Summary Register a new beer
// @Tags beers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param beer body BeerRequest true "Beer to register"
// @Success 201 {object} BeerResponse
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/beers [post]
func CreateBeerHandler(w http.ResponseWriter, r *http.Request) {
	var req BeerRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateBeer(req); len(errs) > 0 {
		respond(w, http.StatusBadRequest, ValidationErrorsResponse{Errors: errs})
		return
	}

	created, err := beerService.Create(r.Context(), models.Beer{
		Name:     req.Name,
		Brand:    req.Brand,
		Max:      *req.Max,
		Quantity: *req.Quantity,
		Type:     models.BeerType(req.Type),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond(w, http.StatusCreated, toBeerResponse(created))
}

// GetBeerByNameHandler godoc
// @Summary Get a beer by its name
// @Tags beers
// @Produce json
// @Param name path string true "Beer name"
// @Success 200 {object} BeerResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/beers/{name} [get]
func GetBeerByNameHandler(w http.ResponseWriter, r *http.Request) {
	beer, err := beerService.FindByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, toBeerResponse(beer))
}

// ListBeersHandler godoc
// @Summary List all beers
// @Tags beers
// @Produce json
// @Success 200 {array} BeerResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/beers [get]
func ListBeersHandler(w http.ResponseWriter, r *http.Request) {
	beers, err := beerService.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := make([]BeerResponse, len(beers))
	for i, b := range beers {
		response[i] = toBeerResponse(b)
	}
	respond(w, http.StatusOK, response)
}

// DeleteBeerHandler godoc
// @Summary Delete a beer
// @Tags beers
// @Security BearerAuth
// @Param id path int true "Beer ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/beers/{id} [delete]
func DeleteBeerHandler(w http.ResponseWriter, r *http.Request) {
	id, err := beerIDParam(r)
	if err != nil {
		http.Error(w, "invalid beer ID", http.StatusBadRequest)
		return
	}

	if err := beerService.DeleteByID(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	if err := movementRepo.DeleteByBeerID(r.Context(), id); err != nil {
		logger.Warn("failed to delete movements of removed beer", zap.Int64("beer_id", id), zap.Error(err))
	}
	w.WriteHeader(http.StatusNoContent)
}

// IncrementBeerHandler godoc
// @Summary Increase the stock of a beer
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Beer ID"
// @Param quantity body QuantityRequest true "Amount to add (1..100)"
// @Success 200 {object} BeerResponse
// @Failure 400 {object} ErrorResponse "Invalid input or stock exceeded"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/beers/{id}/increment [patch]
func IncrementBeerHandler(w http.ResponseWriter, r *http.Request) {
	adjustStock(w, r, 1)
}

// DecrementBeerHandler godoc
// @Summary Decrease the stock of a beer
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Beer ID"
// @Param quantity body QuantityRequest true "Amount to remove (1..100)"
// @Success 200 {object} BeerResponse
// @Failure 400 {object} ErrorResponse "Invalid input or insufficient stock"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/beers/{id}/decrement [patch]
func DecrementBeerHandler(w http.ResponseWriter, r *http.Request) {
	adjustStock(w, r, -1)
}

// adjustStock runs an increment (sign 1) or decrement (sign -1) and logs the
// movement once the new quantity is stored.
func adjustStock(w http.ResponseWriter, r *http.Request, sign int) {
	id, err := beerIDParam(r)
	if err != nil {
		http.Error(w, "invalid beer ID", http.StatusBadRequest)
		return
	}

	var req QuantityRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateQuantity(req); len(errs) > 0 {
		respond(w, http.StatusBadRequest, ValidationErrorsResponse{Errors: errs})
		return
	}

	var beer models.Beer
	if sign > 0 {
		beer, err = beerService.Increment(r.Context(), id, *req.Quantity)
	} else {
		beer, err = beerService.Decrement(r.Context(), id, *req.Quantity)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	delta := sign * *req.Quantity
	if err := movementRepo.Log(r.Context(), id, delta); err != nil {
		logger.Error("failed to log movement", zap.Int64("beer_id", id), zap.Error(err))
	}

	respond(w, http.StatusOK, toBeerResponse(beer))
}
