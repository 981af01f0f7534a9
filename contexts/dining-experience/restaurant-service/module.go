package restaurantservice

import (
	"log/slog"

	httpadapter "tokentab/contexts/dining-experience/restaurant-service/adapters/http"
	"tokentab/contexts/dining-experience/restaurant-service/adapters/memory"
	"tokentab/contexts/dining-experience/restaurant-service/application"
	"tokentab/contexts/dining-experience/restaurant-service/application/commands"
	"tokentab/contexts/dining-experience/restaurant-service/application/queries"
	"tokentab/contexts/dining-experience/restaurant-service/ports"
)

// Module wires the restaurant service. GetRestaurant is exposed so
// the HTTP server can compose bill quotes with the conversion engine.
type Module struct {
	Handler         httpadapter.Handler
	ListRestaurants queries.ListRestaurantsUseCase
	GetRestaurant   queries.GetRestaurantUseCase
	RateRestaurant  commands.RateRestaurantUseCase
}

// Dependencies lists the ports the module needs from the outside.
type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	logger := application.ResolveLogger(deps.Logger)

	listRestaurants := queries.ListRestaurantsUseCase{
		Repository: deps.Repository,
		Logger:     logger,
	}
	getRestaurant := queries.GetRestaurantUseCase{
		Repository: deps.Repository,
		Logger:     logger,
	}
	rateRestaurant := commands.RateRestaurantUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			ListRestaurants: listRestaurants,
			GetRestaurant:   getRestaurant,
			RateRestaurant:  rateRestaurant,
			Logger:          logger,
		},
		ListRestaurants: listRestaurants,
		GetRestaurant:   getRestaurant,
		RateRestaurant:  rateRestaurant,
	}
}

// NewInMemoryModule builds the module on a seeded memory store.
func NewInMemoryModule(logger *slog.Logger) (Module, *memory.Store) {
	store := memory.NewSeededStore()
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		Logger:     logger,
	})
	return module, store
}
