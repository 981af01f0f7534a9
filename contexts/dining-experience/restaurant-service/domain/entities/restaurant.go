package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"tokentab/contexts/dining-experience/restaurant-service/domain/valueobjects"
)

// Restaurant is a venue with a typical bill and a running guest
// rating. AverageBill feeds the token conversion quote.
type Restaurant struct {
	RestaurantID string
	Name         string
	AverageBill  decimal.Decimal
	Rating       valueobjects.Rating
	RatingCount  int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
