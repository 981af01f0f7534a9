package http

import (
	"context"
	"log/slog"

	"tokentab/contexts/dining-experience/restaurant-service/application/commands"
	"tokentab/contexts/dining-experience/restaurant-service/application/queries"
	"tokentab/contexts/dining-experience/restaurant-service/domain/entities"
	"tokentab/contexts/dining-experience/restaurant-service/domain/valueobjects"
	transport "tokentab/contexts/dining-experience/restaurant-service/transport/http"
)

// Handler exposes restaurant use cases to the HTTP layer.
type Handler struct {
	ListRestaurants queries.ListRestaurantsUseCase
	GetRestaurant   queries.GetRestaurantUseCase
	RateRestaurant  commands.RateRestaurantUseCase
	Logger          *slog.Logger
}

func (h Handler) ListRestaurantsHandler(ctx context.Context) (transport.ListRestaurantsResponse, error) {
	restaurants, err := h.ListRestaurants.Execute(ctx)
	if err != nil {
		return transport.ListRestaurantsResponse{}, err
	}

	dtos := make([]transport.RestaurantDTO, 0, len(restaurants))
	for _, restaurant := range restaurants {
		dtos = append(dtos, toRestaurantDTO(restaurant))
	}
	return transport.ListRestaurantsResponse{Restaurants: dtos}, nil
}

func (h Handler) GetRestaurantHandler(ctx context.Context, restaurantID string) (transport.RestaurantDTO, error) {
	restaurant, err := h.GetRestaurant.Execute(ctx, restaurantID)
	if err != nil {
		return transport.RestaurantDTO{}, err
	}
	return toRestaurantDTO(restaurant), nil
}

func (h Handler) RateRestaurantHandler(ctx context.Context, restaurantID string, request transport.RateRestaurantRequest) (transport.RestaurantDTO, error) {
	rating, err := valueobjects.RatingFromString(request.Rating)
	if err != nil {
		return transport.RestaurantDTO{}, err
	}

	restaurant, err := h.RateRestaurant.Execute(ctx, commands.RateRestaurantCommand{
		RestaurantID: restaurantID,
		Rating:       rating,
	})
	if err != nil {
		return transport.RestaurantDTO{}, err
	}
	return toRestaurantDTO(restaurant), nil
}

func toRestaurantDTO(restaurant entities.Restaurant) transport.RestaurantDTO {
	return transport.RestaurantDTO{
		RestaurantID: restaurant.RestaurantID,
		Name:         restaurant.Name,
		AverageBill:  restaurant.AverageBill.StringFixed(2),
		Rating:       restaurant.Rating.Value(),
		Rated:        restaurant.Rating.IsRated(),
		Stars:        restaurant.Rating.Stars(),
		RatingCount:  restaurant.RatingCount,
		CreatedAt:    restaurant.CreatedAt,
		UpdatedAt:    restaurant.UpdatedAt,
	}
}
