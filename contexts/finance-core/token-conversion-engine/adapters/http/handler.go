package httpadapter

import (
	"context"
	"log/slog"

	"tokentab/contexts/finance-core/token-conversion-engine/application"
	httptransport "tokentab/contexts/finance-core/token-conversion-engine/transport/http"
)

// Handler maps HTTP DTOs to the conversion application service.
type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ConvertPriceHandler(
	ctx context.Context,
	request httptransport.ConvertPriceRequest,
) (httptransport.ConvertPriceResponse, error) {
	price, err := application.ParsePrice(request.Price)
	if err != nil {
		return httptransport.ConvertPriceResponse{}, err
	}

	calculation, err := h.Service.ConvertPrice(ctx, price)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("http price conversion rejected",
				"event", "token_http_convert_rejected",
				"module", "finance-core/token-conversion-engine",
				"layer", "transport",
				"price", request.Price,
				"error", err.Error(),
			)
		}
		return httptransport.ConvertPriceResponse{}, err
	}

	return httptransport.ConvertPriceResponse{
		TokenCount:     calculation.TokenCount,
		ChangeDue:      calculation.ChangeDue.StringFixed(2),
		RealAmountPaid: calculation.RealAmountPaid.StringFixed(2),
	}, nil
}
