package handlers

import (
	"encoding/csv"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rogerio-castellano/beerstock/internal/models"
	"github.com/rogerio-castellano/beerstock/internal/repo"
	"go.uber.org/zap"
)

// queryTime parses an RFC3339 query parameter. Query decoding turns the '+'
// of a numeric offset into a space, so it is put back before parsing.
func queryTime(q url.Values, key string) (*time.Time, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}
	if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
		s = s[:len(s)-6] + "+" + s[len(s)-5:]
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func queryInt(q url.Values, key string) (*int, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

const (
	defaultPageSize = 100
	maxPageSize     = 100
)

func parseMovementFilter(q url.Values) (repo.MovementFilter, string) {
	var mf repo.MovementFilter
	var err error

	if mf.Since, err = queryTime(q, "since"); err != nil {
		return mf, "invalid since date format"
	}
	if mf.Until, err = queryTime(q, "until"); err != nil {
		return mf, "invalid until date format"
	}
	if mf.Limit, err = queryInt(q, "limit"); err != nil {
		return mf, "invalid limit format"
	}
	if mf.Limit != nil && *mf.Limit <= 0 {
		return mf, "limit must be greater than zero"
	}
	if mf.Offset, err = queryInt(q, "offset"); err != nil {
		return mf, "invalid offset format"
	}
	if mf.Offset != nil && *mf.Offset < 0 {
		return mf, "offset must be zero or positive"
	}
	return mf, ""
}

// GetMovementsHandler godoc
// @Summary Get the stock movements of a beer
// @Tags movements
// @Produce json
// @Param id path int true "Beer ID"
// @Param since query string false "Filter movements from this timestamp (RFC3339)"
// @Param until query string false "Filter movements until this timestamp (RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/beers/{id}/movements [get]
func GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := beerIDParam(r)
	if err != nil {
		http.Error(w, "invalid beer ID", http.StatusBadRequest)
		return
	}

	mf, msg := parseMovementFilter(r.URL.Query())
	if msg != "" {
		logger.Debug("bad movement filter", zap.String("query", r.URL.RawQuery), zap.String("reason", msg))
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	limit := defaultPageSize
	if mf.Limit != nil {
		limit = min(*mf.Limit, maxPageSize)
	}
	mf.Limit = &limit

	if _, err := beerService.FindByID(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	movements, total, err := movementRepo.GetByBeerID(r.Context(), id, mf)
	if err != nil {
		logger.Error("could not retrieve movements", zap.Int64("beer_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not retrieve movements")
		return
	}

	response := MovementsSearchResult{
		Data: make([]MovementResponse, len(movements)),
		Meta: Meta{TotalCount: total},
	}
	for i, m := range movements {
		response.Data[i] = toMovementResponse(m)
	}
	respond(w, http.StatusOK, response)
}

// ExportMovementsHandler godoc
// @Summary Export the stock movements of a beer
// @Tags movements
// @Produce text/csv,application/json
// @Param id path int true "Beer ID"
// @Param format query string true "Export format (csv or json)"
// @Param since query string false "Filter from timestamp (RFC3339)"
// @Param until query string false "Filter until timestamp (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/beers/{id}/movements/export [get]
func ExportMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := beerIDParam(r)
	if err != nil {
		http.Error(w, "invalid beer ID", http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	mf, msg := parseMovementFilter(q)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	// export is never paginated
	mf.Offset, mf.Limit = nil, nil

	if _, err := beerService.FindByID(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	movements, _, err := movementRepo.GetByBeerID(r.Context(), id, mf)
	if err != nil {
		logger.Error("could not export movements", zap.Int64("beer_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not retrieve movements")
		return
	}

	switch format {
	case "json":
		data := make([]MovementResponse, len(movements))
		for i, m := range movements {
			data[i] = toMovementResponse(m)
		}
		respond(w, http.StatusOK, data, http.Header{
			"Content-Disposition": {`attachment; filename="movements.json"`},
		})

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="movements.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "beer_id", "delta", "created_at"})
		for _, m := range movements {
			_ = csvWriter.Write([]string{
				strconv.FormatInt(m.ID, 10),
				strconv.FormatInt(m.BeerID, 10),
				strconv.Itoa(m.Delta),
				m.CreatedAt,
			})
		}
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			logger.Error("failed to write csv export", zap.Error(err))
		}
	}
}

func toMovementResponse(m models.Movement) MovementResponse {
	return MovementResponse{
		ID:        m.ID,
		BeerID:    m.BeerID,
		Delta:     m.Delta,
		CreatedAt: m.CreatedAt,
	}
}
