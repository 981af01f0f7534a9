package queries

import (
	"context"
	"log/slog"

	"tokentab/contexts/dining-experience/restaurant-service/domain/entities"
	"tokentab/contexts/dining-experience/restaurant-service/ports"
)

type ListRestaurantsUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u ListRestaurantsUseCase) Execute(ctx context.Context) ([]entities.Restaurant, error) {
	return u.Repository.ListRestaurants(ctx)
}
