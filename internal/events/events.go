package events

import "time"

// Event payloads broadcast to tournament observers. Each carries a "type"
// discriminator so clients can switch without inspecting the shape.

const (
	TypeAuctionStarted   = "auction_started"
	TypeNewBid           = "new_bid"
	TypeTeamWon          = "team_won"
	TypeNextTeam         = "next_team"
	TypeAuctionCompleted = "auction_completed"
	TypeChatMessage      = "chat_message"
)

// AuctionStarted announces the first team under the hammer and its deadline.
type AuctionStarted struct {
	Type          string    `json:"type"`
	CurrentTeamID string    `json:"current_team_id"`
	BidEndTime    time.Time `json:"bid_end_time"`
}

// NewAuctionStarted builds an auction_started event.
func NewAuctionStarted(teamID string, bidEndTime time.Time) AuctionStarted {
	return AuctionStarted{Type: TypeAuctionStarted, CurrentTeamID: teamID, BidEndTime: bidEndTime}
}

// NewBid announces an accepted bid.
type NewBid struct {
	Type     string `json:"type"`
	TeamID   string `json:"team_id"`
	Amount   int64  `json:"amount"`
	Username string `json:"username"`
}

// NewNewBid builds a new_bid event.
func NewNewBid(teamID string, amount int64, username string) NewBid {
	return NewBid{Type: TypeNewBid, TeamID: teamID, Amount: amount, Username: username}
}

// TeamWon announces a settled round: the team has moved into the winner's
// squad at the winning amount.
type TeamWon struct {
	Type   string `json:"type"`
	TeamID string `json:"team_id"`
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
}

// NewTeamWon builds a team_won event.
func NewTeamWon(teamID, userID string, amount int64) TeamWon {
	return TeamWon{Type: TypeTeamWon, TeamID: teamID, UserID: userID, Amount: amount}
}

// NextTeam announces the next team up for auction and its deadline.
type NextTeam struct {
	Type          string    `json:"type"`
	CurrentTeamID string    `json:"current_team_id"`
	BidEndTime    time.Time `json:"bid_end_time"`
}

// NewNextTeam builds a next_team event.
func NewNextTeam(teamID string, bidEndTime time.Time) NextTeam {
	return NextTeam{Type: TypeNextTeam, CurrentTeamID: teamID, BidEndTime: bidEndTime}
}

// AuctionCompleted announces that every team has been through a round with
// at least one bid and the auction is over.
type AuctionCompleted struct {
	Type         string `json:"type"`
	TournamentID string `json:"tournament_id"`
}

// NewAuctionCompleted builds an auction_completed event.
func NewAuctionCompleted(tournamentID string) AuctionCompleted {
	return AuctionCompleted{Type: TypeAuctionCompleted, TournamentID: tournamentID}
}

// ChatMessage relays a tournament chat message.
type ChatMessage struct {
	Type      string    `json:"type"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage builds a chat_message event.
func NewChatMessage(username, message string, timestamp time.Time) ChatMessage {
	return ChatMessage{Type: TypeChatMessage, Username: username, Message: message, Timestamp: timestamp}
}
