package auctionerrors

import "errors"

// Not-found errors
var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrSquadNotFound      = errors.New("squad not found")
	ErrNoBids             = errors.New("no bids found for team")
)

// Lifecycle and permission errors
var (
	ErrForbidden        = errors.New("only the tournament admin may do this")
	ErrAuctionNotActive = errors.New("auction is not active")
	ErrNotPending       = errors.New("auction has already started")
	ErrRoundExpired     = errors.New("bidding time expired")
)

// Bid validation errors
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrBidTooLow    = errors.New("bid amount below minimum")
	ErrOverBudget   = errors.New("insufficient remaining budget")
	ErrNotHighest   = errors.New("bid must exceed current highest")
)

// Join errors
var (
	ErrAlreadyJoined  = errors.New("user already joined tournament")
	ErrTournamentFull = errors.New("tournament is full")
)

// Capacity errors
var (
	ErrTooFewParticipants = errors.New("not enough participants to start auction")
	ErrNoTeams            = errors.New("no teams available for this competition")
)

// ErrInternalState marks a corrupted tournament (empty queue during advance,
// current team missing from its own queue). Callers should surface it, not
// retry.
var ErrInternalState = errors.New("inconsistent auction state")
