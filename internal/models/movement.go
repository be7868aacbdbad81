package models

// Movement is a logged stock adjustment. Delta is positive for increments
// and negative for decrements.
type Movement struct {
	ID        int64  `json:"id"`
	BeerID    int64  `json:"beer_id"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}
