package errors

import "errors"

var (
	ErrRestaurantNotFound     = errors.New("restaurant not found")
	ErrInvalidRating          = errors.New("rating must be a finite number between 0 and 5")
	ErrInvalidRestaurantInput = errors.New("restaurant input is invalid")
)
