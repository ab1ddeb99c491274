package auction

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"time"

	"fantasy-auction/internal/auctionerrors"
	"fantasy-auction/internal/events"
	"fantasy-auction/internal/models"
	"fantasy-auction/internal/repository"
	"fantasy-auction/utils"
)

// Config holds the auction engine's tunables. Zero fields fall back to the
// defaults in DefaultConfig.
type Config struct {
	RoundDuration     time.Duration
	MinParticipants   int
	MaxParticipants   int
	DefaultBudget     int64
	DefaultMinimumBid int64
	JoinCodeAttempts  int
}

// DefaultConfig returns the standard engine configuration: 2-minute rounds,
// at least 2 and at most 8 participants, £500m budgets and £1m minimum bids.
func DefaultConfig() Config {
	return Config{
		RoundDuration:     2 * time.Minute,
		MinParticipants:   2,
		MaxParticipants:   8,
		DefaultBudget:     500_000_000,
		DefaultMinimumBid: 1_000_000,
		JoinCodeAttempts:  20,
	}
}

// AuctionService owns tournament lifecycle, bidding and round advancement.
// Every state transition for a tournament runs under that tournament's lock,
// so concurrent bids are linearized; tournaments are independent of each
// other.
type AuctionService struct {
	repo   repository.AuctionDB
	events events.Publisher
	cfg    Config
	now    func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex // key: tournamentID
}

// NewAuctionService creates a new AuctionService instance. The publisher may
// be nil, in which case events are not emitted.
func NewAuctionService(repo repository.AuctionDB, publisher events.Publisher, cfg Config) *AuctionService {
	def := DefaultConfig()
	if cfg.RoundDuration <= 0 {
		cfg.RoundDuration = def.RoundDuration
	}
	if cfg.MinParticipants <= 0 {
		cfg.MinParticipants = def.MinParticipants
	}
	if cfg.MaxParticipants <= 0 {
		cfg.MaxParticipants = def.MaxParticipants
	}
	if cfg.DefaultBudget <= 0 {
		cfg.DefaultBudget = def.DefaultBudget
	}
	if cfg.DefaultMinimumBid <= 0 {
		cfg.DefaultMinimumBid = def.DefaultMinimumBid
	}
	if cfg.JoinCodeAttempts <= 0 {
		cfg.JoinCodeAttempts = def.JoinCodeAttempts
	}
	return &AuctionService{
		repo:   repo,
		events: publisher,
		cfg:    cfg,
		now:    time.Now,
		locks:  make(map[string]*sync.Mutex),
	}
}

// lockTournament returns the mutex serializing all writes to one tournament,
// creating it on first use.
func (s *AuctionService) lockTournament(tournamentID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[tournamentID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[tournamentID] = lock
	}
	return lock
}

func (s *AuctionService) publish(tournamentID string, event any) {
	if s.events != nil {
		s.events.Publish(tournamentID, event)
	}
}

// CreateUser registers a user, or returns the existing record when the email
// is already known.
func (s *AuctionService) CreateUser(username, email string) (models.User, error) {
	if username == "" || email == "" {
		return models.User{}, fmt.Errorf("service: %w - missing username or email", auctionerrors.ErrInvalidInput)
	}

	if existing, err := s.repo.GetUserByEmail(email); err == nil {
		return existing, nil
	}

	user := models.User{
		UserID:    utils.GenerateID(),
		Username:  username,
		Email:     email,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateUser(user); err != nil {
		return models.User{}, fmt.Errorf("service: failed to create user: %w", err)
	}
	return user, nil
}

// GetUser returns the user with the given ID
func (s *AuctionService) GetUser(userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidInput)
	}
	user, err := s.repo.GetUser(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// CreateTournamentParams are the admin-supplied settings for a new tournament.
type CreateTournamentParams struct {
	Name         string
	AdminID      string
	Competition  models.CompetitionType
	TeamsPerUser int
	MinimumBid   int64
	EntryFee     int64
}

// CreateTournament seeds a tournament's team queue from the catalog,
// generates a unique join code and auto-enrolls the admin with a fresh squad.
func (s *AuctionService) CreateTournament(p CreateTournamentParams) (models.Tournament, error) {
	if p.Name == "" || p.AdminID == "" || p.TeamsPerUser < 1 {
		return models.Tournament{}, fmt.Errorf("service: %w - missing tournament name, admin or squad size", auctionerrors.ErrInvalidInput)
	}

	teams, err := s.repo.GetTeamsByCompetition(p.Competition)
	if err != nil {
		return models.Tournament{}, fmt.Errorf("service: failed to load catalog for %s: %w", p.Competition, err)
	}
	if len(teams) == 0 {
		return models.Tournament{}, fmt.Errorf("service: %w - competition %s", auctionerrors.ErrNoTeams, p.Competition)
	}
	teamIDs := make([]string, len(teams))
	for i, team := range teams {
		teamIDs[i] = team.TeamID
	}

	joinCode, err := s.generateJoinCode()
	if err != nil {
		return models.Tournament{}, err
	}

	minimumBid := p.MinimumBid
	if minimumBid <= 0 {
		minimumBid = s.cfg.DefaultMinimumBid
	}

	tournament := models.Tournament{
		TournamentID:  utils.GenerateID(),
		Name:          p.Name,
		AdminID:       p.AdminID,
		Competition:   p.Competition,
		Status:        models.StatusPending,
		JoinCode:      joinCode,
		BudgetPerUser: s.cfg.DefaultBudget,
		TeamsPerUser:  p.TeamsPerUser,
		MinimumBid:    minimumBid,
		EntryFee:      p.EntryFee,
		Participants:  []string{p.AdminID},
		Teams:         teamIDs,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repo.CreateTournament(tournament); err != nil {
		return models.Tournament{}, fmt.Errorf("service: failed to create tournament: %w", err)
	}

	adminSquad := models.Squad{
		SquadID:      utils.GenerateID(),
		TournamentID: tournament.TournamentID,
		UserID:       p.AdminID,
		Teams:        []string{},
	}
	if err := s.repo.CreateSquad(adminSquad); err != nil {
		return models.Tournament{}, fmt.Errorf("service: failed to create admin squad: %w", err)
	}

	return tournament, nil
}

// generateJoinCode draws random codes until one is unused. The keyspace is
// ~2x10^9, so collisions are rare; the attempt cap keeps a corrupted store
// from looping forever.
func (s *AuctionService) generateJoinCode() (string, error) {
	for attempt := 0; attempt < s.cfg.JoinCodeAttempts; attempt++ {
		code := utils.GenerateJoinCode()
		_, err := s.repo.GetTournamentByJoinCode(code)
		if errors.Is(err, auctionerrors.ErrTournamentNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("service: failed to check join code: %w", err)
		}
	}
	return "", fmt.Errorf("service: no unique join code after %d attempts", s.cfg.JoinCodeAttempts)
}

// JoinTournament adds a user to a tournament and creates their squad.
func (s *AuctionService) JoinTournament(tournamentID, userID string) (models.Tournament, error) {
	if tournamentID == "" || userID == "" {
		return models.Tournament{}, fmt.Errorf("service: %w - missing tournament or user ID", auctionerrors.ErrInvalidInput)
	}

	lock := s.lockTournament(tournamentID)
	lock.Lock()
	defer lock.Unlock()

	tournament, err := s.repo.GetTournament(tournamentID)
	if err != nil {
		return models.Tournament{}, fmt.Errorf("service: failed to join tournament: %w", err)
	}
	return s.join(tournament, userID)
}

// JoinByCode resolves a join code (case-insensitive) and joins the user to
// the matching tournament.
func (s *AuctionService) JoinByCode(joinCode, userID string) (models.Tournament, error) {
	if joinCode == "" || userID == "" {
		return models.Tournament{}, fmt.Errorf("service: %w - missing join code or user ID", auctionerrors.ErrInvalidInput)
	}

	code := strings.ToUpper(strings.TrimSpace(joinCode))
	tournament, err := s.repo.GetTournamentByJoinCode(code)
	if err != nil {
		return models.Tournament{}, fmt.Errorf("service: failed to resolve join code: %w", err)
	}

	lock := s.lockTournament(tournament.TournamentID)
	lock.Lock()
	defer lock.Unlock()

	// Refetch under the lock; the code lookup raced other joins.
	tournament, err = s.repo.GetTournament(tournament.TournamentID)
	if err != nil {
		return models.Tournament{}, fmt.Errorf("service: failed to join tournament: %w", err)
	}
	return s.join(tournament, userID)
}

// join applies the shared join flow. Caller holds the tournament lock.
func (s *AuctionService) join(tournament models.Tournament, userID string) (models.Tournament, error) {
	if slices.Contains(tournament.Participants, userID) {
		return models.Tournament{}, fmt.Errorf("service: user %s: %w", userID, auctionerrors.ErrAlreadyJoined)
	}
	if len(tournament.Participants) >= s.cfg.MaxParticipants {
		return models.Tournament{}, fmt.Errorf("service: %w - limit %d", auctionerrors.ErrTournamentFull, s.cfg.MaxParticipants)
	}

	tournament.Participants = append(tournament.Participants, userID)
	tournament.PrizePool += tournament.EntryFee
	if err := s.repo.UpdateTournament(tournament); err != nil {
		return models.Tournament{}, fmt.Errorf("service: failed to update tournament: %w", err)
	}

	squad := models.Squad{
		SquadID:      utils.GenerateID(),
		TournamentID: tournament.TournamentID,
		UserID:       userID,
		Teams:        []string{},
	}
	if err := s.repo.CreateSquad(squad); err != nil {
		return models.Tournament{}, fmt.Errorf("service: failed to create squad: %w", err)
	}
	return tournament, nil
}

// StartAuction shuffles the team queue, opens the first round and announces
// it. Only the tournament admin may start, and only from pending.
func (s *AuctionService) StartAuction(tournamentID, adminID string) (models.Tournament, error) {
	if tournamentID == "" || adminID == "" {
		return models.Tournament{}, fmt.Errorf("service: %w - missing tournament or admin ID", auctionerrors.ErrInvalidInput)
	}

	lock := s.lockTournament(tournamentID)
	lock.Lock()
	defer lock.Unlock()

	tournament, err := s.repo.GetTournament(tournamentID)
	if err != nil {
		return models.Tournament{}, fmt.Errorf("service: failed to start auction: %w", err)
	}
	if tournament.AdminID != adminID {
		return models.Tournament{}, fmt.Errorf("service: user %s: %w", adminID, auctionerrors.ErrForbidden)
	}
	if tournament.Status != models.StatusPending {
		return models.Tournament{}, fmt.Errorf("service: status %s: %w", tournament.Status, auctionerrors.ErrNotPending)
	}
	if len(tournament.Participants) < s.cfg.MinParticipants {
		return models.Tournament{}, fmt.Errorf("service: %w - need at least %d", auctionerrors.ErrTooFewParticipants, s.cfg.MinParticipants)
	}
	if len(tournament.Teams) == 0 {
		return models.Tournament{}, fmt.Errorf("service: %w - empty team queue", auctionerrors.ErrInternalState)
	}

	rand.Shuffle(len(tournament.Teams), func(i, j int) {
		tournament.Teams[i], tournament.Teams[j] = tournament.Teams[j], tournament.Teams[i]
	})
	tournament.Status = models.StatusAuctionActive
	tournament.CurrentTeamID = tournament.Teams[0]
	bidEndTime := s.now().UTC().Add(s.cfg.RoundDuration)
	tournament.BidEndTime = &bidEndTime

	if err := s.repo.UpdateTournament(tournament); err != nil {
		return models.Tournament{}, fmt.Errorf("service: failed to start auction: %w", err)
	}

	s.publish(tournament.TournamentID, events.NewAuctionStarted(tournament.CurrentTeamID, bidEndTime))
	return tournament, nil
}

// PlaceBid validates and records a bid on the team currently under auction.
// Validation order: tournament exists, auction active, round not expired,
// amount at or above minimum, bidder has a squad, amount within the budget
// cap, amount strictly above the current leader.
func (s *AuctionService) PlaceBid(tournamentID, userID string, amount int64) (models.Bid, error) {
	if tournamentID == "" || userID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing tournament or user ID", auctionerrors.ErrInvalidInput)
	}

	lock := s.lockTournament(tournamentID)
	lock.Lock()
	defer lock.Unlock()

	tournament, err := s.repo.GetTournament(tournamentID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid: %w", err)
	}
	if tournament.Status != models.StatusAuctionActive {
		return models.Bid{}, fmt.Errorf("service: status %s: %w", tournament.Status, auctionerrors.ErrAuctionNotActive)
	}
	if tournament.BidEndTime == nil || tournament.CurrentTeamID == "" {
		return models.Bid{}, fmt.Errorf("service: active auction without a current round: %w", auctionerrors.ErrInternalState)
	}
	if s.now().After(*tournament.BidEndTime) {
		return models.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrRoundExpired)
	}
	if amount < tournament.MinimumBid {
		return models.Bid{}, fmt.Errorf("service: %w - minimum is %d", auctionerrors.ErrBidTooLow, tournament.MinimumBid)
	}

	squad, err := s.repo.GetSquad(tournamentID, userID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid: %w", err)
	}

	maxBid, err := s.maxAllowableBid(tournament, squad)
	if err != nil {
		return models.Bid{}, err
	}
	if amount > maxBid {
		return models.Bid{}, fmt.Errorf("service: %w - cap is %d", auctionerrors.ErrOverBudget, maxBid)
	}

	leading, err := s.repo.GetLeadingBid(tournamentID, tournament.CurrentTeamID)
	if err == nil {
		if amount <= leading.Amount {
			return models.Bid{}, fmt.Errorf("service: %w - current highest is %d", auctionerrors.ErrNotHighest, leading.Amount)
		}
	} else if !errors.Is(err, auctionerrors.ErrNoBids) {
		return models.Bid{}, fmt.Errorf("service: failed to check leading bid: %w", err)
	}

	bid := models.Bid{
		BidID:        utils.GenerateID(),
		TournamentID: tournamentID,
		UserID:       userID,
		TeamID:       tournament.CurrentTeamID,
		Amount:       amount,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.RecordBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid: %w", err)
	}

	username := "Unknown"
	if user, err := s.repo.GetUser(userID); err == nil {
		username = user.Username
	}
	s.publish(tournamentID, events.NewNewBid(bid.TeamID, bid.Amount, username))

	return bid, nil
}

// maxAllowableBid caps a bid so the bidder can still pay the minimum bid for
// every squad slot they are required to fill afterwards. With one slot left
// the whole remaining budget is in play.
func (s *AuctionService) maxAllowableBid(tournament models.Tournament, squad models.Squad) (int64, error) {
	remainingBudget := tournament.BudgetPerUser - squad.TotalSpent
	remainingSlots := tournament.TeamsPerUser - len(squad.Teams)
	if remainingSlots < 1 {
		return 0, fmt.Errorf("service: %w - squad already full", auctionerrors.ErrOverBudget)
	}
	if remainingSlots > 1 {
		return remainingBudget - int64(remainingSlots-1)*tournament.MinimumBid, nil
	}
	return remainingBudget, nil
}

// AdvanceResult reports what an AdvanceTeam call did.
type AdvanceResult struct {
	Completed  bool
	NextTeamID string
	BidEndTime *time.Time
	WinningBid *models.Bid // settled bid for the outgoing round, if any
}

// AdvanceTeam closes the current round and moves the auction forward. The
// outgoing round settles first: its leading bid, if any, converts into squad
// ownership exactly once. A round with no bids sends its team to the back of
// the queue for a later pass. Wrapping past the end of the queue after a
// bid-receiving round completes the auction once every team has drawn at
// least one bid.
func (s *AuctionService) AdvanceTeam(tournamentID string) (AdvanceResult, error) {
	if tournamentID == "" {
		return AdvanceResult{}, fmt.Errorf("service: %w - empty tournament ID", auctionerrors.ErrInvalidInput)
	}

	lock := s.lockTournament(tournamentID)
	lock.Lock()
	defer lock.Unlock()

	tournament, err := s.repo.GetTournament(tournamentID)
	if err != nil {
		return AdvanceResult{}, fmt.Errorf("service: failed to advance: %w", err)
	}
	if tournament.Status != models.StatusAuctionActive {
		return AdvanceResult{}, fmt.Errorf("service: status %s: %w", tournament.Status, auctionerrors.ErrAuctionNotActive)
	}
	if len(tournament.Teams) == 0 {
		return AdvanceResult{}, fmt.Errorf("service: %w - empty team queue", auctionerrors.ErrInternalState)
	}

	index := slices.Index(tournament.Teams, tournament.CurrentTeamID)
	if index < 0 {
		return AdvanceResult{}, fmt.Errorf("service: %w - current team %s not in queue",
			auctionerrors.ErrInternalState, tournament.CurrentTeamID)
	}

	outgoing := tournament.CurrentTeamID
	winner, hadBids, err := s.closeRound(tournament, outgoing)
	if err != nil {
		return AdvanceResult{}, err
	}

	if !hadBids {
		// Deferred re-auction: the team gets another chance at the back of
		// the queue instead of going unsold.
		tournament.Teams = append(slices.Delete(tournament.Teams, index, index+1), outgoing)
		index = len(tournament.Teams) - 1
	}

	next := (index + 1) % len(tournament.Teams)
	if next == 0 && hadBids {
		every, err := s.everyTeamHasBids(tournament)
		if err != nil {
			return AdvanceResult{}, err
		}
		if every {
			tournament.Status = models.StatusCompleted
			tournament.CurrentTeamID = ""
			tournament.BidEndTime = nil
			if err := s.repo.UpdateTournament(tournament); err != nil {
				return AdvanceResult{}, fmt.Errorf("service: failed to complete auction: %w", err)
			}
			s.publish(tournamentID, events.NewAuctionCompleted(tournamentID))
			return AdvanceResult{Completed: true, WinningBid: winner}, nil
		}
	}

	tournament.CurrentTeamID = tournament.Teams[next]
	bidEndTime := s.now().UTC().Add(s.cfg.RoundDuration)
	tournament.BidEndTime = &bidEndTime
	if err := s.repo.UpdateTournament(tournament); err != nil {
		return AdvanceResult{}, fmt.Errorf("service: failed to advance: %w", err)
	}

	s.publish(tournamentID, events.NewNextTeam(tournament.CurrentTeamID, bidEndTime))
	return AdvanceResult{NextTeamID: tournament.CurrentTeamID, BidEndTime: &bidEndTime, WinningBid: winner}, nil
}

// closeRound settles the outgoing round: the leading bid, if one exists and
// the team is not already owned, moves the team and its price into the
// leader's squad. Returns the settled bid (nil when nothing settled) and
// whether the round drew any bids at all.
func (s *AuctionService) closeRound(tournament models.Tournament, teamID string) (*models.Bid, bool, error) {
	leading, err := s.repo.GetLeadingBid(tournament.TournamentID, teamID)
	if errors.Is(err, auctionerrors.ErrNoBids) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("service: failed to close round: %w", err)
	}

	squads, err := s.repo.GetSquadsByTournament(tournament.TournamentID)
	if err != nil {
		return nil, true, fmt.Errorf("service: failed to close round: %w", err)
	}
	for _, squad := range squads {
		if slices.Contains(squad.Teams, teamID) {
			// Settled in an earlier pass; a round closes at most once.
			return nil, true, nil
		}
	}

	squad, err := s.repo.GetSquad(tournament.TournamentID, leading.UserID)
	if err != nil {
		return nil, true, fmt.Errorf("service: leader %s has no squad: %w", leading.UserID, auctionerrors.ErrInternalState)
	}
	squad.Teams = append(squad.Teams, teamID)
	squad.TotalSpent += leading.Amount
	if err := s.repo.UpdateSquad(squad); err != nil {
		return nil, true, fmt.Errorf("service: failed to settle round: %w", err)
	}

	s.publish(tournament.TournamentID, events.NewTeamWon(teamID, leading.UserID, leading.Amount))
	return &leading, true, nil
}

// everyTeamHasBids reports whether each team in the queue has drawn at least
// one bid, scanning the ledger once.
func (s *AuctionService) everyTeamHasBids(tournament models.Tournament) (bool, error) {
	bids, err := s.repo.GetBidsByTournament(tournament.TournamentID)
	if err != nil {
		return false, fmt.Errorf("service: failed to scan bid ledger: %w", err)
	}
	bidOn := make(map[string]bool, len(bids))
	for _, bid := range bids {
		bidOn[bid.TeamID] = true
	}
	for _, teamID := range tournament.Teams {
		if !bidOn[teamID] {
			return false, nil
		}
	}
	return true, nil
}

// GetTournament returns the tournament with the given ID
func (s *AuctionService) GetTournament(tournamentID string) (models.Tournament, error) {
	if tournamentID == "" {
		return models.Tournament{}, fmt.Errorf("service: %w - empty tournament ID", auctionerrors.ErrInvalidInput)
	}
	tournament, err := s.repo.GetTournament(tournamentID)
	if err != nil {
		return models.Tournament{}, fmt.Errorf("service: failed to get tournament %s: %w", tournamentID, err)
	}
	return tournament, nil
}

// ListTournaments returns every tournament
func (s *AuctionService) ListTournaments() ([]models.Tournament, error) {
	tournaments, err := s.repo.ListTournaments()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list tournaments: %w", err)
	}
	return tournaments, nil
}

// GetBids returns a tournament's full bid ledger in submission order
func (s *AuctionService) GetBids(tournamentID string) ([]models.Bid, error) {
	if _, err := s.GetTournament(tournamentID); err != nil {
		return nil, err
	}
	bids, err := s.repo.GetBidsByTournament(tournamentID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for tournament %s: %w", tournamentID, err)
	}
	return bids, nil
}

// GetSquads returns every squad in a tournament
func (s *AuctionService) GetSquads(tournamentID string) ([]models.Squad, error) {
	if _, err := s.GetTournament(tournamentID); err != nil {
		return nil, err
	}
	squads, err := s.repo.GetSquadsByTournament(tournamentID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get squads for tournament %s: %w", tournamentID, err)
	}
	return squads, nil
}

// GetSquad returns one user's squad within a tournament
func (s *AuctionService) GetSquad(tournamentID, userID string) (models.Squad, error) {
	if tournamentID == "" || userID == "" {
		return models.Squad{}, fmt.Errorf("service: %w - missing tournament or user ID", auctionerrors.ErrInvalidInput)
	}
	squad, err := s.repo.GetSquad(tournamentID, userID)
	if err != nil {
		return models.Squad{}, fmt.Errorf("service: failed to get squad: %w", err)
	}
	return squad, nil
}

// ListTeams returns the catalog, optionally filtered by competition
func (s *AuctionService) ListTeams(competition models.CompetitionType) ([]models.Team, error) {
	if competition == "" {
		teams, err := s.repo.ListTeams()
		if err != nil {
			return nil, fmt.Errorf("service: failed to list teams: %w", err)
		}
		return teams, nil
	}
	teams, err := s.repo.GetTeamsByCompetition(competition)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list teams for %s: %w", competition, err)
	}
	return teams, nil
}

// SendChatMessage records a tournament chat message and fans it out
func (s *AuctionService) SendChatMessage(tournamentID, userID, text string) (models.ChatMessage, error) {
	if tournamentID == "" || userID == "" || text == "" {
		return models.ChatMessage{}, fmt.Errorf("service: %w - missing tournament, user or message", auctionerrors.ErrInvalidInput)
	}

	user, err := s.repo.GetUser(userID)
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("service: failed to send chat message: %w", err)
	}
	if _, err := s.repo.GetTournament(tournamentID); err != nil {
		return models.ChatMessage{}, fmt.Errorf("service: failed to send chat message: %w", err)
	}

	message := models.ChatMessage{
		MessageID:    utils.GenerateID(),
		TournamentID: tournamentID,
		UserID:       userID,
		Username:     user.Username,
		Message:      text,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.RecordChatMessage(message); err != nil {
		return models.ChatMessage{}, fmt.Errorf("service: failed to record chat message: %w", err)
	}

	s.publish(tournamentID, events.NewChatMessage(message.Username, message.Message, message.CreatedAt))
	return message, nil
}

// GetChatMessages returns a tournament's chat history
func (s *AuctionService) GetChatMessages(tournamentID string) ([]models.ChatMessage, error) {
	if _, err := s.GetTournament(tournamentID); err != nil {
		return nil, err
	}
	messages, err := s.repo.GetChatMessages(tournamentID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get chat messages: %w", err)
	}
	return messages, nil
}
