package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/beerstock/internal/models"
	"github.com/rogerio-castellano/beerstock/internal/service"
	"go.uber.org/zap"
)

var importColumns = []string{"name", "brand", "max", "quantity", "type"}

type csvRow struct {
	Line   int
	Fields map[string]string
}

func parseCSV(file io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range importColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", col)
		}
	}

	var rows []csvRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		fields := make(map[string]string, len(importColumns))
		for _, col := range importColumns {
			fields[col] = strings.TrimSpace(record[index[col]])
		}
		rows = append(rows, csvRow{Line: line, Fields: fields})
	}
	return rows, nil
}

// toBeerRequest builds the same request the JSON endpoint would decode, so
// both paths share one set of validation rules.
func (row csvRow) toBeerRequest() (BeerRequest, error) {
	req := BeerRequest{
		Name:  row.Fields["name"],
		Brand: row.Fields["brand"],
		Type:  strings.ToUpper(row.Fields["type"]),
	}

	maxVal, err := strconv.Atoi(row.Fields["max"])
	if err != nil {
		return req, errors.New("max must be an integer")
	}
	quantity, err := strconv.Atoi(row.Fields["quantity"])
	if err != nil {
		return req, errors.New("quantity must be an integer")
	}
	req.Max, req.Quantity = &maxVal, &quantity
	return req, nil
}

func rowError(line int, format string, args ...any) BeerValidationError {
	return BeerValidationError{
		Field:       fmt.Sprintf("row %d", line),
		Description: fmt.Sprintf(format, args...),
	}
}

// ImportBeersHandler godoc
// @Summary Import beers via CSV
// @Description The CSV header must contain name,brand,max,quantity,type. Invalid or duplicated rows are reported and skipped.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportBeersResult
// @Failure 400 {string} string "Invalid file"
// @Router /api/v1/beers/import [post]
func ImportBeersHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ImportBeersResult{Errors: []BeerValidationError{}}
	for _, row := range rows {
		req, err := row.toBeerRequest()
		if err != nil {
			result.Errors = append(result.Errors, rowError(row.Line, "%v", err))
			continue
		}

		if errs := validateBeer(req); len(errs) > 0 {
			for _, e := range errs {
				result.Errors = append(result.Errors, rowError(row.Line, "%s", e.Description))
			}
			continue
		}

		_, err = beerService.Create(r.Context(), models.Beer{
			Name:     req.Name,
			Brand:    req.Brand,
			Max:      *req.Max,
			Quantity: *req.Quantity,
			Type:     models.BeerType(req.Type),
		})
		if err != nil {
			if errors.Is(err, service.ErrBeerAlreadyRegistered) {
				result.Errors = append(result.Errors, rowError(row.Line, "%v", err))
				continue
			}
			logger.Error("import failed", zap.Int("line", row.Line), zap.Error(err))
			result.Errors = append(result.Errors, rowError(row.Line, "could not import beer %q", req.Name))
			continue
		}
		result.ImportedBeersCount++
	}

	logger.Info("beers imported", zap.Int("imported", result.ImportedBeersCount), zap.Int("rejected", len(rows)-result.ImportedBeersCount))
	respond(w, http.StatusOK, result)
}
