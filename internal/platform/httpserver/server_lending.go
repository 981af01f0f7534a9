package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	lendingerrors "tokentab/contexts/finance-core/lending-ledger-service/domain/errors"
	lendinghttp "tokentab/contexts/finance-core/lending-ledger-service/transport/http"
	authzerrors "tokentab/contexts/identity-access/authorization-service/domain/errors"
)

func (s *Server) handleListOwnRecords(w http.ResponseWriter, r *http.Request) {
	session, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	resp, err := s.lending.Handler.ListRecordsHandler(r.Context(), session.UserID, session.Role, session.UserID)
	if err != nil {
		writeLendingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListUserRecords(w http.ResponseWriter, r *http.Request) {
	session, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	ownerUserID := r.PathValue("user_id")
	resp, err := s.lending.Handler.ListRecordsHandler(r.Context(), session.UserID, session.Role, ownerUserID)
	if err != nil {
		writeLendingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	session, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	var req lendinghttp.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLendingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.lending.Handler.CreateRecordHandler(r.Context(), session.UserID, session.Role, req)
	if err != nil {
		writeLendingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLendTokens(w http.ResponseWriter, r *http.Request) {
	session, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	var req lendinghttp.TokenAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLendingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.lending.Handler.LendTokensHandler(r.Context(), session.UserID, session.Role, r.PathValue("record_id"), req)
	if err != nil {
		writeLendingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSettleTokens(w http.ResponseWriter, r *http.Request) {
	session, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	var req lendinghttp.TokenAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLendingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.lending.Handler.SettleTokensHandler(r.Context(), session.UserID, session.Role, r.PathValue("record_id"), req)
	if err != nil {
		writeLendingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAcceptRecord(w http.ResponseWriter, r *http.Request) {
	session, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	resp, err := s.lending.Handler.AcceptRecordHandler(r.Context(), session.UserID, session.Role, r.PathValue("record_id"))
	if err != nil {
		writeLendingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeLendingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authzerrors.ErrUnauthorized):
		writeLendingError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, authzerrors.ErrForbidden):
		writeLendingError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, lendingerrors.ErrRecordNotFound):
		writeLendingError(w, http.StatusNotFound, "record_not_found", err.Error())
	case errors.Is(err, lendingerrors.ErrInvalidRecordInput),
		errors.Is(err, lendingerrors.ErrInvalidTokenAmount):
		writeLendingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, lendingerrors.ErrRecordAlreadyAccepted),
		errors.Is(err, lendingerrors.ErrConcurrentUpdate),
		errors.Is(err, lendingerrors.ErrBalanceExceedsTotal):
		writeLendingError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeLendingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeLendingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, lendinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
