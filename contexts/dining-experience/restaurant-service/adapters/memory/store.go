package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"tokentab/contexts/dining-experience/restaurant-service/domain/entities"
	domainerrors "tokentab/contexts/dining-experience/restaurant-service/domain/errors"
	"tokentab/contexts/dining-experience/restaurant-service/domain/valueobjects"
)

// Store keeps restaurants in memory for tests and local runs.
type Store struct {
	mu          sync.RWMutex
	restaurants map[string]entities.Restaurant
}

func NewStore() *Store {
	return &Store{restaurants: make(map[string]entities.Restaurant)}
}

// NewSeededStore returns a store with a small fixed catalog.
func NewSeededStore() *Store {
	store := NewStore()
	now := time.Now().UTC()
	seed := []entities.Restaurant{
		{
			RestaurantID: "restaurant-bistro-1",
			Name:         "Token Bistro",
			AverageBill:  decimal.RequireFromString("32.40"),
			Rating:       valueobjects.Unrated(),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			RestaurantID: "restaurant-noodle-1",
			Name:         "Ledger Noodles",
			AverageBill:  decimal.RequireFromString("18.75"),
			Rating:       valueobjects.Unrated(),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for _, restaurant := range seed {
		store.SeedRestaurant(restaurant)
	}
	return store
}

func (s *Store) SeedRestaurant(restaurant entities.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants[restaurant.RestaurantID] = restaurant
}

func (s *Store) ListRestaurants(_ context.Context) ([]entities.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	restaurants := make([]entities.Restaurant, 0, len(s.restaurants))
	for _, restaurant := range s.restaurants {
		restaurants = append(restaurants, restaurant)
	}
	sort.Slice(restaurants, func(i, j int) bool {
		return restaurants[i].Name < restaurants[j].Name
	})
	return restaurants, nil
}

func (s *Store) GetRestaurant(_ context.Context, restaurantID string) (entities.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	restaurant, ok := s.restaurants[restaurantID]
	if !ok {
		return entities.Restaurant{}, domainerrors.ErrRestaurantNotFound
	}
	return restaurant, nil
}

func (s *Store) UpdateRating(_ context.Context, restaurantID string, rating valueobjects.Rating, ratingCount int64, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	restaurant, ok := s.restaurants[restaurantID]
	if !ok {
		return domainerrors.ErrRestaurantNotFound
	}
	restaurant.Rating = rating
	restaurant.RatingCount = ratingCount
	restaurant.UpdatedAt = updatedAt
	s.restaurants[restaurantID] = restaurant
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}
