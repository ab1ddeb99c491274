package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	auction "fantasy-auction/internal/auctionService"
	"fantasy-auction/internal/auctionerrors"
	"fantasy-auction/internal/models"

	"github.com/stretchr/testify/require"
)

type fakeAdvancer struct {
	mu          sync.Mutex
	tournaments []models.Tournament
	listErr     error
	advanceErr  map[string]error
	advanced    []string
}

func (f *fakeAdvancer) ListTournaments() ([]models.Tournament, error) {
	return f.tournaments, f.listErr
}

func (f *fakeAdvancer) AdvanceTeam(tournamentID string) (auction.AdvanceResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.advanceErr[tournamentID]; err != nil {
		return auction.AdvanceResult{}, err
	}
	f.advanced = append(f.advanced, tournamentID)
	return auction.AdvanceResult{NextTeamID: "next"}, nil
}

func timePtr(t time.Time) *time.Time { return &t }

func TestSweep(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		tournaments  []models.Tournament
		advanceErr   map[string]error
		wantAdvanced []string
	}{
		{
			name: "advances only expired active tournaments",
			tournaments: []models.Tournament{
				{TournamentID: "expired", Status: models.StatusAuctionActive, BidEndTime: timePtr(now.Add(-time.Second))},
				{TournamentID: "running", Status: models.StatusAuctionActive, BidEndTime: timePtr(now.Add(time.Minute))},
				{TournamentID: "pending", Status: models.StatusPending},
				{TournamentID: "done", Status: models.StatusCompleted},
			},
			wantAdvanced: []string{"expired"},
		},
		{
			name: "deadline exactly now is not yet expired",
			tournaments: []models.Tournament{
				{TournamentID: "boundary", Status: models.StatusAuctionActive, BidEndTime: timePtr(now)},
			},
			wantAdvanced: nil,
		},
		{
			name: "one failure does not stop the sweep",
			tournaments: []models.Tournament{
				{TournamentID: "broken", Status: models.StatusAuctionActive, BidEndTime: timePtr(now.Add(-time.Second))},
				{TournamentID: "fine", Status: models.StatusAuctionActive, BidEndTime: timePtr(now.Add(-time.Second))},
			},
			advanceErr:   map[string]error{"broken": errors.New("boom")},
			wantAdvanced: []string{"fine"},
		},
		{
			name: "races with explicit advance are tolerated",
			tournaments: []models.Tournament{
				{TournamentID: "raced", Status: models.StatusAuctionActive, BidEndTime: timePtr(now.Add(-time.Second))},
			},
			advanceErr:   map[string]error{"raced": auctionerrors.ErrAuctionNotActive},
			wantAdvanced: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			advancer := &fakeAdvancer{
				tournaments: tt.tournaments,
				advanceErr:  tt.advanceErr,
			}
			sweeper := NewSweeper(advancer, time.Second)
			sweeper.now = func() time.Time { return now }

			sweeper.Sweep()
			require.Equal(t, tt.wantAdvanced, advancer.advanced)
		})
	}
}

func TestSweepListFailure(t *testing.T) {
	t.Parallel()

	advancer := &fakeAdvancer{listErr: errors.New("store down")}
	sweeper := NewSweeper(advancer, time.Second)

	sweeper.Sweep()
	require.Empty(t, advancer.advanced)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	advancer := &fakeAdvancer{}
	sweeper := NewSweeper(advancer, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}
