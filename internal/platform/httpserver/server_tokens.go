package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	conversionerrors "tokentab/contexts/finance-core/token-conversion-engine/domain/errors"
	conversionhttp "tokentab/contexts/finance-core/token-conversion-engine/transport/http"
)

func (s *Server) handleConvertPrice(w http.ResponseWriter, r *http.Request) {
	var req conversionhttp.ConvertPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeConversionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.conversion.Handler.ConvertPriceHandler(r.Context(), req)
	if err != nil {
		writeConversionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeConversionDomainError(w http.ResponseWriter, err error) {
	if errors.Is(err, conversionerrors.ErrInvalidPrice) {
		writeConversionError(w, http.StatusBadRequest, "invalid_price", err.Error())
		return
	}
	writeConversionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

func writeConversionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, conversionhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
