package repository

import (
	"fmt"
	"sort"
	"sync"

	"fantasy-auction/internal/auctionerrors"
	model "fantasy-auction/internal/models"
)

// AuctionDB defines the document-store interface for the auction system.
// Each entity is a flat record keyed by its generated identifier; referential
// integrity is the service layer's job, not the store's.
type AuctionDB interface {
	CreateUser(user model.User) error
	GetUser(userID string) (model.User, error)
	GetUserByEmail(email string) (model.User, error)

	AddTeam(team model.Team) error
	GetTeam(teamID string) (model.Team, error)
	GetTeamsByCompetition(competition model.CompetitionType) ([]model.Team, error)
	ListTeams() ([]model.Team, error)

	CreateTournament(tournament model.Tournament) error
	GetTournament(tournamentID string) (model.Tournament, error)
	GetTournamentByJoinCode(joinCode string) (model.Tournament, error)
	ListTournaments() ([]model.Tournament, error)
	UpdateTournament(tournament model.Tournament) error

	CreateSquad(squad model.Squad) error
	GetSquad(tournamentID, userID string) (model.Squad, error)
	GetSquadsByTournament(tournamentID string) ([]model.Squad, error)
	UpdateSquad(squad model.Squad) error

	RecordBid(bid model.Bid) error
	GetBidsByTournament(tournamentID string) ([]model.Bid, error)
	GetBidsForTeam(tournamentID, teamID string) ([]model.Bid, error)
	GetLeadingBid(tournamentID, teamID string) (model.Bid, error)

	RecordChatMessage(message model.ChatMessage) error
	GetChatMessages(tournamentID string) ([]model.ChatMessage, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu           sync.RWMutex
	users        map[string]model.User       // key: userID
	usersByEmail map[string]string           // key: email -> userID
	teams        map[string]model.Team       // key: teamID
	teamOrder    []string                    // insertion order of teamIDs
	tournaments  map[string]model.Tournament // key: tournamentID
	squads       map[string]model.Squad      // key: tournamentID + "/" + userID
	bids         map[string][]model.Bid      // key: tournamentID, submission order
	chat         map[string][]model.ChatMessage
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:        make(map[string]model.User),
		usersByEmail: make(map[string]string),
		teams:        make(map[string]model.Team),
		tournaments:  make(map[string]model.Tournament),
		squads:       make(map[string]model.Squad),
		bids:         make(map[string][]model.Bid),
		chat:         make(map[string][]model.ChatMessage),
	}
}

func squadKey(tournamentID, userID string) string {
	return tournamentID + "/" + userID
}

// copyTournament clones the slices so callers never alias stored state.
func copyTournament(t model.Tournament) model.Tournament {
	t.Participants = append([]string(nil), t.Participants...)
	t.Teams = append([]string(nil), t.Teams...)
	return t
}

func copySquad(s model.Squad) model.Squad {
	s.Teams = append([]string(nil), s.Teams...)
	return s
}

// CreateUser stores a user record
func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.UserID] = user
	r.usersByEmail[user.Email] = user.UserID
	return nil
}

// GetUser returns the user with the given ID
func (r *MemoryRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByEmail returns the user registered under the given email
func (r *MemoryRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.usersByEmail[email]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	return r.users[userID], nil
}

// AddTeam adds a catalog team to the repository
func (r *MemoryRepo) AddTeam(team model.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.teams[team.TeamID]; !ok {
		r.teamOrder = append(r.teamOrder, team.TeamID)
	}
	r.teams[team.TeamID] = team
	return nil
}

// GetTeam returns the team with the given ID
func (r *MemoryRepo) GetTeam(teamID string) (model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.teams[teamID]
	if !ok {
		return model.Team{}, fmt.Errorf("get team %s: %w", teamID, auctionerrors.ErrTeamNotFound)
	}
	return team, nil
}

// GetTeamsByCompetition returns all teams in a competition, in seed order
func (r *MemoryRepo) GetTeamsByCompetition(competition model.CompetitionType) ([]model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]model.Team, 0)
	for _, id := range r.teamOrder {
		if team := r.teams[id]; team.Competition == competition {
			teams = append(teams, team)
		}
	}
	return teams, nil
}

// ListTeams returns every catalog team in seed order
func (r *MemoryRepo) ListTeams() ([]model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]model.Team, 0, len(r.teamOrder))
	for _, id := range r.teamOrder {
		teams = append(teams, r.teams[id])
	}
	return teams, nil
}

// CreateTournament stores a new tournament record
func (r *MemoryRepo) CreateTournament(tournament model.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tournaments[tournament.TournamentID]; ok {
		return fmt.Errorf("create tournament %s: already exists", tournament.TournamentID)
	}
	r.tournaments[tournament.TournamentID] = copyTournament(tournament)
	return nil
}

// GetTournament returns the tournament with the given ID
func (r *MemoryRepo) GetTournament(tournamentID string) (model.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tournament, ok := r.tournaments[tournamentID]
	if !ok {
		return model.Tournament{}, fmt.Errorf("get tournament %s: %w", tournamentID, auctionerrors.ErrTournamentNotFound)
	}
	return copyTournament(tournament), nil
}

// GetTournamentByJoinCode resolves a join code to its tournament. Codes are
// stored uppercase; callers normalize before lookup.
func (r *MemoryRepo) GetTournamentByJoinCode(joinCode string) (model.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, tournament := range r.tournaments {
		if tournament.JoinCode == joinCode {
			return copyTournament(tournament), nil
		}
	}
	return model.Tournament{}, fmt.Errorf("get tournament by join code %s: %w", joinCode, auctionerrors.ErrTournamentNotFound)
}

// ListTournaments returns all tournaments ordered by creation time
func (r *MemoryRepo) ListTournaments() ([]model.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tournaments := make([]model.Tournament, 0, len(r.tournaments))
	for _, tournament := range r.tournaments {
		tournaments = append(tournaments, copyTournament(tournament))
	}
	sort.Slice(tournaments, func(i, j int) bool {
		if tournaments[i].CreatedAt.Equal(tournaments[j].CreatedAt) {
			return tournaments[i].TournamentID < tournaments[j].TournamentID
		}
		return tournaments[i].CreatedAt.Before(tournaments[j].CreatedAt)
	})
	return tournaments, nil
}

// UpdateTournament replaces a stored tournament record
func (r *MemoryRepo) UpdateTournament(tournament model.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tournaments[tournament.TournamentID]; !ok {
		return fmt.Errorf("update tournament %s: %w", tournament.TournamentID, auctionerrors.ErrTournamentNotFound)
	}
	r.tournaments[tournament.TournamentID] = copyTournament(tournament)
	return nil
}

// CreateSquad stores a new squad for a (tournament, user) pair
func (r *MemoryRepo) CreateSquad(squad model.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := squadKey(squad.TournamentID, squad.UserID)
	if _, ok := r.squads[key]; ok {
		return fmt.Errorf("create squad for user %s in tournament %s: %w",
			squad.UserID, squad.TournamentID, auctionerrors.ErrAlreadyJoined)
	}
	r.squads[key] = copySquad(squad)
	return nil
}

// GetSquad returns a user's squad within a tournament
func (r *MemoryRepo) GetSquad(tournamentID, userID string) (model.Squad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	squad, ok := r.squads[squadKey(tournamentID, userID)]
	if !ok {
		return model.Squad{}, fmt.Errorf("get squad for user %s in tournament %s: %w",
			userID, tournamentID, auctionerrors.ErrSquadNotFound)
	}
	return copySquad(squad), nil
}

// GetSquadsByTournament returns every squad in a tournament
func (r *MemoryRepo) GetSquadsByTournament(tournamentID string) ([]model.Squad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	squads := make([]model.Squad, 0)
	for _, squad := range r.squads {
		if squad.TournamentID == tournamentID {
			squads = append(squads, copySquad(squad))
		}
	}
	sort.Slice(squads, func(i, j int) bool { return squads[i].UserID < squads[j].UserID })
	return squads, nil
}

// UpdateSquad replaces a stored squad record
func (r *MemoryRepo) UpdateSquad(squad model.Squad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := squadKey(squad.TournamentID, squad.UserID)
	if _, ok := r.squads[key]; !ok {
		return fmt.Errorf("update squad for user %s in tournament %s: %w",
			squad.UserID, squad.TournamentID, auctionerrors.ErrSquadNotFound)
	}
	r.squads[key] = copySquad(squad)
	return nil
}

// RecordBid appends a bid to a tournament's ledger. Bids are never mutated
// or deleted afterwards.
func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tournaments[bid.TournamentID]; !ok {
		return fmt.Errorf("record bid for tournament %s: %w", bid.TournamentID, auctionerrors.ErrTournamentNotFound)
	}
	r.bids[bid.TournamentID] = append(r.bids[bid.TournamentID], bid)
	return nil
}

// GetBidsByTournament returns all bids in a tournament in submission order
func (r *MemoryRepo) GetBidsByTournament(tournamentID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Bid(nil), r.bids[tournamentID]...), nil
}

// GetBidsForTeam returns all bids placed on one team within a tournament
func (r *MemoryRepo) GetBidsForTeam(tournamentID, teamID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, bid := range r.bids[tournamentID] {
		if bid.TeamID == teamID {
			bids = append(bids, bid)
		}
	}
	return bids, nil
}

// GetLeadingBid returns the highest bid for a team, earliest bid winning a
// tie on amount.
func (r *MemoryRepo) GetLeadingBid(tournamentID, teamID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var leading model.Bid
	found := false
	for _, bid := range r.bids[tournamentID] {
		if bid.TeamID != teamID {
			continue
		}
		if !found || bid.Amount > leading.Amount ||
			(bid.Amount == leading.Amount && bid.CreatedAt.Before(leading.CreatedAt)) {
			leading = bid
			found = true
		}
	}
	if !found {
		return model.Bid{}, fmt.Errorf("get leading bid for team %s in tournament %s: %w",
			teamID, tournamentID, auctionerrors.ErrNoBids)
	}
	return leading, nil
}

// RecordChatMessage appends a chat message to a tournament's history
func (r *MemoryRepo) RecordChatMessage(message model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tournaments[message.TournamentID]; !ok {
		return fmt.Errorf("record chat message for tournament %s: %w",
			message.TournamentID, auctionerrors.ErrTournamentNotFound)
	}
	r.chat[message.TournamentID] = append(r.chat[message.TournamentID], message)
	return nil
}

// GetChatMessages returns a tournament's chat history in send order
func (r *MemoryRepo) GetChatMessages(tournamentID string) ([]model.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.ChatMessage(nil), r.chat[tournamentID]...), nil
}
