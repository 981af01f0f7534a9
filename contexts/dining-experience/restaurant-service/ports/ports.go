package ports

import (
	"context"
	"time"

	"tokentab/contexts/dining-experience/restaurant-service/domain/entities"
	"tokentab/contexts/dining-experience/restaurant-service/domain/valueobjects"
)

type Clock interface {
	Now() time.Time
}

// Repository persists restaurants. UpdateRating replaces the running
// average and count in one call.
type Repository interface {
	ListRestaurants(ctx context.Context) ([]entities.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID string) (entities.Restaurant, error)
	UpdateRating(ctx context.Context, restaurantID string, rating valueobjects.Rating, ratingCount int64, updatedAt time.Time) error
}
