// Package scheduler progresses auctions whose round deadlines have passed.
// The auction engine itself is reactive; this is the periodic caller that
// nudges it.
package scheduler

import (
	"context"
	"errors"
	"time"

	auction "fantasy-auction/internal/auctionService"
	"fantasy-auction/internal/auctionerrors"
	"fantasy-auction/internal/models"
	"fantasy-auction/utils"
)

// AuctionAdvancer is the slice of the auction service the sweeper needs.
type AuctionAdvancer interface {
	ListTournaments() ([]models.Tournament, error)
	AdvanceTeam(tournamentID string) (auction.AdvanceResult, error)
}

// Sweeper periodically advances every active tournament whose bidding
// deadline has expired.
type Sweeper struct {
	service  AuctionAdvancer
	interval time.Duration
	now      func() time.Time
}

// NewSweeper creates a sweeper ticking at the given interval.
func NewSweeper(service AuctionAdvancer, interval time.Duration) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: interval,
		now:      time.Now,
	}
}

// Run sweeps until the context is cancelled. Call from a goroutine.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep advances every tournament with an expired round. Failures on one
// tournament never stop the sweep of the others.
func (s *Sweeper) Sweep() {
	tournaments, err := s.service.ListTournaments()
	if err != nil {
		utils.Error("sweeper: failed to list tournaments", map[string]any{"error": err.Error()})
		return
	}

	now := s.now()
	for _, tournament := range tournaments {
		if tournament.Status != models.StatusAuctionActive || tournament.BidEndTime == nil {
			continue
		}
		if !now.After(*tournament.BidEndTime) {
			continue
		}

		result, err := s.service.AdvanceTeam(tournament.TournamentID)
		if err != nil {
			// A concurrent explicit advance may have beaten us to it.
			if errors.Is(err, auctionerrors.ErrAuctionNotActive) {
				continue
			}
			utils.Error("sweeper: failed to advance tournament", map[string]any{
				"tournament_id": tournament.TournamentID,
				"error":         err.Error(),
			})
			continue
		}

		utils.Info("sweeper: advanced expired round", map[string]any{
			"tournament_id": tournament.TournamentID,
			"next_team_id":  result.NextTeamID,
			"completed":     result.Completed,
		})
	}
}
