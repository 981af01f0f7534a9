package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tokentab/contexts/dining-experience/restaurant-service/domain/entities"
	domainerrors "tokentab/contexts/dining-experience/restaurant-service/domain/errors"
	"tokentab/contexts/dining-experience/restaurant-service/domain/valueobjects"
)

type restaurantModel struct {
	RestaurantID string          `gorm:"column:restaurant_id;primaryKey"`
	Name         string          `gorm:"column:name;not null"`
	AverageBill  decimal.Decimal `gorm:"column:average_bill;type:numeric(12,2);not null"`
	RatingValue  float64         `gorm:"column:rating_value;not null"`
	Rated        bool            `gorm:"column:rated;not null"`
	RatingCount  int64           `gorm:"column:rating_count;not null"`
	CreatedAt    time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;not null"`
}

func (restaurantModel) TableName() string { return "restaurants" }

func (m restaurantModel) toEntity() (entities.Restaurant, error) {
	rating := valueobjects.Unrated()
	if m.Rated {
		var err error
		rating, err = valueobjects.NewRating(m.RatingValue)
		if err != nil {
			return entities.Restaurant{}, err
		}
	}
	return entities.Restaurant{
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		AverageBill:  m.AverageBill,
		Rating:       rating,
		RatingCount:  m.RatingCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// Repository persists restaurants in Postgres via gorm.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListRestaurants(ctx context.Context) ([]entities.Restaurant, error) {
	var rows []restaurantModel
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	restaurants := make([]entities.Restaurant, 0, len(rows))
	for _, row := range rows {
		restaurant, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}
	return restaurants, nil
}

func (r *Repository) GetRestaurant(ctx context.Context, restaurantID string) (entities.Restaurant, error) {
	var row restaurantModel
	err := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Restaurant{}, domainerrors.ErrRestaurantNotFound
	}
	if err != nil {
		return entities.Restaurant{}, err
	}
	return row.toEntity()
}

func (r *Repository) UpdateRating(ctx context.Context, restaurantID string, rating valueobjects.Rating, ratingCount int64, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&restaurantModel{}).
		Where("restaurant_id = ?", restaurantID).
		Updates(map[string]any{
			"rating_value": rating.Value(),
			"rated":        rating.IsRated(),
			"rating_count": ratingCount,
			"updated_at":   updatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRestaurantNotFound
	}
	return nil
}
