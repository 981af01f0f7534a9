package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"tokentab/contexts/finance-core/token-conversion-engine/domain/entities"
	domainerrors "tokentab/contexts/finance-core/token-conversion-engine/domain/errors"
	"tokentab/contexts/finance-core/token-conversion-engine/domain/services"
)

type Service struct {
	Logger *slog.Logger
}

// ConvertPrice converts one bill price into the token calculation. The
// arithmetic itself lives in the domain layer; this method only adds
// diagnostics for callers that want them.
func (s Service) ConvertPrice(ctx context.Context, price decimal.Decimal) (entities.TokenCalculation, error) {
	calculation, err := services.Convert(price)
	if err != nil {
		return entities.TokenCalculation{}, err
	}

	resolveLogger(s.Logger).Debug("price converted",
		"event", "token_price_converted",
		"module", "finance-core/token-conversion-engine",
		"layer", "application",
		"price", price.String(),
		"token_count", calculation.TokenCount,
	)
	return calculation, nil
}

// ParsePrice turns transport input into a price. Anything that is not a
// finite decimal (including NaN-style garbage) fails with ErrInvalidPrice
// before the engine runs.
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, domainerrors.ErrInvalidPrice
	}
	return price, nil
}
