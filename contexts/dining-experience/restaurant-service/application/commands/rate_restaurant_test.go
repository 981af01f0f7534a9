package commands

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tokentab/contexts/dining-experience/restaurant-service/adapters/memory"
	"tokentab/contexts/dining-experience/restaurant-service/domain/entities"
	domainerrors "tokentab/contexts/dining-experience/restaurant-service/domain/errors"
	"tokentab/contexts/dining-experience/restaurant-service/domain/valueobjects"
)

func newRateFixture() (RateRestaurantUseCase, *memory.Store) {
	store := memory.NewStore()
	store.SeedRestaurant(entities.Restaurant{
		RestaurantID: "restaurant-1",
		Name:         "Token Bistro",
		AverageBill:  decimal.RequireFromString("32.40"),
		Rating:       valueobjects.Unrated(),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	return RateRestaurantUseCase{Repository: store, Clock: store}, store
}

func mustRating(t *testing.T, value float64) valueobjects.Rating {
	t.Helper()
	rating, err := valueobjects.NewRating(value)
	if err != nil {
		t.Fatalf("NewRating(%v) returned error: %v", value, err)
	}
	return rating
}

func TestFirstRatingReplacesUnrated(t *testing.T) {
	useCase, _ := newRateFixture()

	restaurant, err := useCase.Execute(context.Background(), RateRestaurantCommand{
		RestaurantID: "restaurant-1",
		Rating:       mustRating(t, 4),
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !restaurant.Rating.IsRated() || restaurant.Rating.Value() != 4 {
		t.Fatalf("expected first rating to become the average, got %+v", restaurant.Rating)
	}
	if restaurant.RatingCount != 1 {
		t.Fatalf("expected rating count 1, got %d", restaurant.RatingCount)
	}
}

func TestRatingFoldsIntoRunningAverage(t *testing.T) {
	useCase, _ := newRateFixture()

	for _, value := range []float64{4, 2, 3} {
		if _, err := useCase.Execute(context.Background(), RateRestaurantCommand{
			RestaurantID: "restaurant-1",
			Rating:       mustRating(t, value),
		}); err != nil {
			t.Fatalf("rating %v failed: %v", value, err)
		}
	}

	restaurant, err := useCase.Repository.GetRestaurant(context.Background(), "restaurant-1")
	if err != nil {
		t.Fatalf("GetRestaurant returned error: %v", err)
	}
	if restaurant.RatingCount != 3 {
		t.Fatalf("expected rating count 3, got %d", restaurant.RatingCount)
	}
	if math.Abs(restaurant.Rating.Value()-3) > 0.001 {
		t.Fatalf("expected average 3, got %v", restaurant.Rating.Value())
	}
}

func TestRatingUnknownRestaurant(t *testing.T) {
	useCase, _ := newRateFixture()

	_, err := useCase.Execute(context.Background(), RateRestaurantCommand{
		RestaurantID: "restaurant-missing",
		Rating:       mustRating(t, 4),
	})
	if !errors.Is(err, domainerrors.ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}
