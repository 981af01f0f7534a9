package queries

import (
	"context"
	"log/slog"

	"tokentab/contexts/dining-experience/restaurant-service/domain/entities"
	"tokentab/contexts/dining-experience/restaurant-service/ports"
)

type GetRestaurantUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u GetRestaurantUseCase) Execute(ctx context.Context, restaurantID string) (entities.Restaurant, error) {
	return u.Repository.GetRestaurant(ctx, restaurantID)
}
