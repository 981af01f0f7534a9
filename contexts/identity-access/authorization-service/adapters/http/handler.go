package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	"tokentab/contexts/identity-access/authorization-service/application/queries"
	"tokentab/contexts/identity-access/authorization-service/domain/entities"
	domainerrors "tokentab/contexts/identity-access/authorization-service/domain/errors"
	httptransport "tokentab/contexts/identity-access/authorization-service/transport/http"
)

// Handler maps HTTP DTOs to the rule engine use-case.
type Handler struct {
	CheckAccess queries.CheckAccessUseCase
	Logger      *slog.Logger
}

func (h Handler) CheckAccessHandler(
	ctx context.Context,
	actorUserID string,
	role string,
	request httptransport.CheckAccessRequest,
) (httptransport.CheckAccessResponse, error) {
	check := entities.CheckKind(strings.TrimSpace(request.Check))
	switch check {
	case entities.CheckOwnership, entities.CheckAdminOnly, entities.CheckResourceAccess:
	default:
		return httptransport.CheckAccessResponse{}, domainerrors.ErrInvalidCheck
	}

	decision := h.CheckAccess.Evaluate(ctx, queries.AccessQuery{
		ActorID: actorUserID,
		Role:    entities.Role(role),
		OwnerID: strings.TrimSpace(request.OwnerUserID),
		Check:   check,
	})
	return httptransport.CheckAccessResponse{
		ActorUserID: decision.ActorID,
		OwnerUserID: decision.OwnerID,
		Check:       string(decision.Check),
		Effect:      string(decision.Effect),
		Reason:      decision.Reason,
		CheckedAt:   decision.CheckedAt,
	}, nil
}
