package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"fantasy-auction/internal/auctionerrors"
	"fantasy-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrTournamentNotFound):
		return http.StatusNotFound, "tournament not found"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrTeamNotFound):
		return http.StatusNotFound, "team not found"
	case errors.Is(err, auctionerrors.ErrSquadNotFound):
		return http.StatusNotFound, "squad not found"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "only the tournament admin may do this"
	case errors.Is(err, auctionerrors.ErrAlreadyJoined):
		return http.StatusConflict, "already joined"
	case errors.Is(err, auctionerrors.ErrNotHighest):
		return http.StatusConflict, "bid must exceed current highest"
	case errors.Is(err, auctionerrors.ErrTournamentFull):
		return http.StatusBadRequest, "tournament is full"
	case errors.Is(err, auctionerrors.ErrTooFewParticipants):
		return http.StatusBadRequest, "not enough participants"
	case errors.Is(err, auctionerrors.ErrAuctionNotActive):
		return http.StatusBadRequest, "auction not active"
	case errors.Is(err, auctionerrors.ErrNotPending):
		return http.StatusBadRequest, "auction already started"
	case errors.Is(err, auctionerrors.ErrRoundExpired):
		return http.StatusBadRequest, "bidding time expired"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid below minimum"
	case errors.Is(err, auctionerrors.ErrOverBudget):
		return http.StatusBadRequest, "insufficient budget"
	case errors.Is(err, auctionerrors.ErrNoTeams):
		return http.StatusBadRequest, "no teams for this competition"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrInternalState):
		return http.StatusInternalServerError, "inconsistent auction state"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
