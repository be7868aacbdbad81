package service

import (
	"errors"
	"fmt"
)

var (
	ErrBeerAlreadyRegistered = errors.New("beer already registered")
	ErrBeerNotFound          = errors.New("beer not found")
	ErrStockExceeded         = errors.New("stock exceeded")
	ErrStockInsufficient     = errors.New("stock insufficient")
	ErrInvalidQuantity       = errors.New("invalid quantity")
)

type alreadyRegisteredError struct {
	name string
}

func (e *alreadyRegisteredError) Error() string {
	return fmt.Sprintf("Beer with name %s already registered in the system.", e.name)
}

func (e *alreadyRegisteredError) Unwrap() error { return ErrBeerAlreadyRegistered }

type notFoundError struct {
	field string
	value any
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("Beer with %s %v not found in the system.", e.field, e.value)
}

func (e *notFoundError) Unwrap() error { return ErrBeerNotFound }

type invalidQuantityError struct {
	op       string
	quantity int
}

func (e *invalidQuantityError) Error() string {
	return fmt.Sprintf("Quantity to %s must be positive, got %d", e.op, e.quantity)
}

func (e *invalidQuantityError) Unwrap() error { return ErrInvalidQuantity }

// StockExceededError reports an increment that would push quantity above max.
type StockExceededError struct {
	ID       int64
	Quantity int
	Max      int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("Beers informed quantity %d to increment exceeded the maximum stock capacity %d for beer with ID: %d", e.Quantity, e.Max, e.ID)
}

func (e *StockExceededError) Unwrap() error { return ErrStockExceeded }

// StockInsufficientError reports a decrement that would take quantity below zero.
type StockInsufficientError struct {
	ID       int64
	Quantity int
	Stock    int
}

func (e *StockInsufficientError) Error() string {
	return fmt.Sprintf("Insufficient Stock for decrement %d from beer with ID: %d. Current Stock: %d", e.Quantity, e.ID, e.Stock)
}

func (e *StockInsufficientError) Unwrap() error { return ErrStockInsufficient }
