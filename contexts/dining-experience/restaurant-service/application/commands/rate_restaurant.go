package commands

import (
	"context"
	"log/slog"
	"time"

	"tokentab/contexts/dining-experience/restaurant-service/application"
	"tokentab/contexts/dining-experience/restaurant-service/domain/entities"
	"tokentab/contexts/dining-experience/restaurant-service/domain/valueobjects"
	"tokentab/contexts/dining-experience/restaurant-service/ports"
)

// RateRestaurantCommand records one guest rating.
type RateRestaurantCommand struct {
	RestaurantID string
	Rating       valueobjects.Rating
}

// RateRestaurantUseCase folds a new rating into the running average.
type RateRestaurantUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u RateRestaurantUseCase) Execute(ctx context.Context, command RateRestaurantCommand) (entities.Restaurant, error) {
	restaurant, err := u.Repository.GetRestaurant(ctx, command.RestaurantID)
	if err != nil {
		return entities.Restaurant{}, err
	}

	count := restaurant.RatingCount
	var average float64
	if restaurant.Rating.IsRated() {
		average = restaurant.Rating.Value()
	} else {
		count = 0
	}
	average = (average*float64(count) + command.Rating.Value()) / float64(count+1)

	rating, err := valueobjects.NewRating(average)
	if err != nil {
		return entities.Restaurant{}, err
	}

	updatedAt := u.now()
	if err := u.Repository.UpdateRating(ctx, restaurant.RestaurantID, rating, count+1, updatedAt); err != nil {
		return entities.Restaurant{}, err
	}

	restaurant.Rating = rating
	restaurant.RatingCount = count + 1
	restaurant.UpdatedAt = updatedAt

	application.ResolveLogger(u.Logger).Info("restaurant rated",
		"event", "restaurant_rated",
		"module", "dining-experience/restaurant-service",
		"layer", "application",
		"restaurant_id", restaurant.RestaurantID,
		"rating", rating.Value(),
		"rating_count", restaurant.RatingCount,
	)
	return restaurant, nil
}

func (u RateRestaurantUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
