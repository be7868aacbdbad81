package repo

import "context"

type MostMovedBeer struct {
	Name          string `json:"name"`
	MovementCount int    `json:"movement_count"`
}

// Metrics summarises the stock for the dashboard endpoint.
type Metrics struct {
	TotalBeers     int           `json:"total_beers"`
	TotalMovements int           `json:"total_movements"`
	OutOfStock     int           `json:"out_of_stock"`
	AtCapacity     int           `json:"at_capacity"`
	MostMovedBeer  MostMovedBeer `json:"most_moved_beer"`
}

type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context) (Metrics, error)
}
