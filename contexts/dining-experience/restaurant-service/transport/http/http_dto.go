package http

import "time"

// RestaurantDTO is the wire form of a venue.
type RestaurantDTO struct {
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	AverageBill  string    `json:"average_bill"`
	Rating       float64   `json:"rating"`
	Rated        bool      `json:"rated"`
	Stars        int       `json:"stars"`
	RatingCount  int64     `json:"rating_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListRestaurantsResponse wraps the catalog.
type ListRestaurantsResponse struct {
	Restaurants []RestaurantDTO `json:"restaurants"`
}

// RateRestaurantRequest records one guest rating.
type RateRestaurantRequest struct {
	Rating string `json:"rating"`
}

// BillQuoteResponse is the token quote for a venue's average bill.
type BillQuoteResponse struct {
	RestaurantID   string `json:"restaurant_id"`
	AverageBill    string `json:"average_bill"`
	TokenCount     int64  `json:"token_count"`
	ChangeDue      string `json:"change_due"`
	RealAmountPaid string `json:"real_amount_paid"`
}

// ErrorResponse is the transport error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
