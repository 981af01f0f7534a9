package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"tokentab/contexts/identity-access/authentication-service/domain/entities"
	autherrors "tokentab/contexts/identity-access/authentication-service/domain/errors"
	authhttp "tokentab/contexts/identity-access/authentication-service/transport/http"
)

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req authhttp.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.authentication.Handler.SignInHandler(r.Context(), req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if err := s.authentication.Handler.SignOutHandler(r.Context(), token); err != nil {
		writeAuthDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCurrentSession(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	resp, found, err := s.authentication.Handler.CurrentSessionHandler(r.Context(), token)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	if !found {
		writeAuthError(w, http.StatusUnauthorized, "unauthorized", "no valid session")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// requireSession resolves the acting identity from the bearer token.
// It writes the 401 itself and reports success via ok.
func (s *Server) requireSession(w http.ResponseWriter, r *http.Request) (entities.UserSession, bool) {
	session, err := s.authentication.RequireAuthentication.Execute(r.Context(), bearerToken(r))
	if err != nil {
		if errors.Is(err, autherrors.ErrUnauthorized) {
			writeAuthError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		} else {
			writeAuthError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return entities.UserSession{}, false
	}
	return session, true
}

func writeAuthDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, autherrors.ErrInvalidEmail):
		writeAuthError(w, http.StatusBadRequest, "invalid_email", err.Error())
	case errors.Is(err, autherrors.ErrInvalidCredentials):
		writeAuthError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, autherrors.ErrUnauthorized):
		writeAuthError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	default:
		writeAuthError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAuthError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, authhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
