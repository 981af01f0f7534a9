package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	restauranterrors "tokentab/contexts/dining-experience/restaurant-service/domain/errors"
	restauranthttp "tokentab/contexts/dining-experience/restaurant-service/transport/http"
)

func (s *Server) handleListRestaurants(w http.ResponseWriter, r *http.Request) {
	resp, err := s.restaurants.Handler.ListRestaurantsHandler(r.Context())
	if err != nil {
		writeRestaurantDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetRestaurant(w http.ResponseWriter, r *http.Request) {
	resp, err := s.restaurants.Handler.GetRestaurantHandler(r.Context(), r.PathValue("restaurant_id"))
	if err != nil {
		writeRestaurantDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleBillQuote converts a venue's average bill into tokens by
// composing the restaurant catalog with the conversion engine.
func (s *Server) handleBillQuote(w http.ResponseWriter, r *http.Request) {
	restaurant, err := s.restaurants.GetRestaurant.Execute(r.Context(), r.PathValue("restaurant_id"))
	if err != nil {
		writeRestaurantDomainError(w, err)
		return
	}

	calculation, err := s.conversion.Service.ConvertPrice(r.Context(), restaurant.AverageBill)
	if err != nil {
		writeRestaurantDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, restauranthttp.BillQuoteResponse{
		RestaurantID:   restaurant.RestaurantID,
		AverageBill:    restaurant.AverageBill.StringFixed(2),
		TokenCount:     calculation.TokenCount,
		ChangeDue:      calculation.ChangeDue.StringFixed(2),
		RealAmountPaid: calculation.RealAmountPaid.StringFixed(2),
	})
}

func (s *Server) handleRateRestaurant(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireSession(w, r); !ok {
		return
	}

	var req restauranthttp.RateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRestaurantError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.restaurants.Handler.RateRestaurantHandler(r.Context(), r.PathValue("restaurant_id"), req)
	if err != nil {
		writeRestaurantDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeRestaurantDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, restauranterrors.ErrRestaurantNotFound):
		writeRestaurantError(w, http.StatusNotFound, "restaurant_not_found", err.Error())
	case errors.Is(err, restauranterrors.ErrInvalidRating),
		errors.Is(err, restauranterrors.ErrInvalidRestaurantInput):
		writeRestaurantError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeRestaurantError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRestaurantError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, restauranthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
