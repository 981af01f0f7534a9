package httptransport

import "time"

// CheckAccessRequest asks "may the acting session perform this check
// against the given resource owner". The actor comes from the session,
// never from the body.
type CheckAccessRequest struct {
	OwnerUserID string `json:"owner_user_id"`
	Check       string `json:"check"`
}

type CheckAccessResponse struct {
	ActorUserID string    `json:"actor_user_id"`
	OwnerUserID string    `json:"owner_user_id"`
	Check       string    `json:"check"`
	Effect      string    `json:"effect"`
	Reason      string    `json:"reason"`
	CheckedAt   time.Time `json:"checked_at"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
