package models

import "time"

// TournamentStatus is the lifecycle state of a tournament.
type TournamentStatus string

const (
	StatusPending       TournamentStatus = "pending"
	StatusAuctionActive TournamentStatus = "auction_active"
	StatusCompleted     TournamentStatus = "completed"
)

// CompetitionType identifies which catalog pool a tournament draws from.
type CompetitionType string

const (
	ChampionsLeague CompetitionType = "champions_league"
	EuropaLeague    CompetitionType = "europa_league"
	RyderCup        CompetitionType = "ryder_cup"
)

// User represents a participant in the auction
type User struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// CompetitionMeta carries competition-specific detail about a team. The
// auction engine never interprets it; it is passed through to clients as-is.
type CompetitionMeta interface {
	Kind() string
}

// ClubMeta is the metadata variant for football clubs.
type ClubMeta struct {
	LogoURL string `json:"logo_url,omitempty"`
}

func (ClubMeta) Kind() string { return "club" }

// GolferMeta is the metadata variant for Ryder Cup players.
type GolferMeta struct {
	Side                string `json:"side"`
	WorldRanking        int    `json:"world_ranking"`
	MajorWins           int    `json:"major_wins"`
	RyderCupAppearances int    `json:"ryder_cup_appearances"`
}

func (GolferMeta) Kind() string { return "golfer" }

// Team is a catalog entry up for auction: a football club or a golfer.
type Team struct {
	TeamID      string          `json:"team_id"`
	Name        string          `json:"name"`
	Country     string          `json:"country"`
	Competition CompetitionType `json:"competition"`
	Meta        CompetitionMeta `json:"meta,omitempty"`
}

// Tournament holds the full auction state for one group of participants.
// CurrentTeamID is non-empty and BidEndTime non-nil exactly while the
// status is auction_active and the team queue is non-empty.
type Tournament struct {
	TournamentID  string           `json:"tournament_id"`
	Name          string           `json:"name"`
	AdminID       string           `json:"admin_id"`
	Competition   CompetitionType  `json:"competition"`
	Status        TournamentStatus `json:"status"`
	JoinCode      string           `json:"join_code"`
	BudgetPerUser int64            `json:"budget_per_user"`
	TeamsPerUser  int              `json:"teams_per_user"`
	MinimumBid    int64            `json:"minimum_bid"`
	EntryFee      int64            `json:"entry_fee"`
	PrizePool     int64            `json:"prize_pool"`
	CurrentTeamID string           `json:"current_team_id,omitempty"`
	BidEndTime    *time.Time       `json:"bid_end_time,omitempty"`
	Participants  []string         `json:"participants"`
	Teams         []string         `json:"teams"` // auction queue of team IDs
	CreatedAt     time.Time        `json:"created_at"`
}

// Squad is one participant's holdings within a tournament. Teams are kept
// in acquisition order; TotalSpent is the sum of the winning bid amounts.
type Squad struct {
	SquadID       string   `json:"squad_id"`
	TournamentID  string   `json:"tournament_id"`
	UserID        string   `json:"user_id"`
	Teams         []string `json:"teams"`
	TotalSpent    int64    `json:"total_spent"`
	CurrentPoints int      `json:"current_points"`
}

// Bid is an immutable record of one accepted bid. Amounts are integer pence.
type Bid struct {
	BidID        string    `json:"bid_id"`
	TournamentID string    `json:"tournament_id"`
	UserID       string    `json:"user_id"`
	TeamID       string    `json:"team_id"`
	Amount       int64     `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

// ChatMessage is a tournament chat entry.
type ChatMessage struct {
	MessageID    string    `json:"message_id"`
	TournamentID string    `json:"tournament_id"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}
