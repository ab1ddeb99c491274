package helpers

// Request/Response DTOs
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type CreateTournamentRequest struct {
	Name         string `json:"name" binding:"required"`
	AdminID      string `json:"admin_id" binding:"required"`
	Competition  string `json:"competition" binding:"required"`
	TeamsPerUser int    `json:"teams_per_user" binding:"required,gt=0"`
	MinimumBid   int64  `json:"minimum_bid" binding:"gte=0"`
	EntryFee     int64  `json:"entry_fee" binding:"gte=0"`
}

type JoinTournamentRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type JoinByCodeRequest struct {
	JoinCode string `json:"join_code" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
}

type StartAuctionRequest struct {
	AdminID string `json:"admin_id" binding:"required"`
}

type PlaceBidRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

type ChatMessageRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type BidResponse struct {
	BidID        string `json:"bid_id"`
	TournamentID string `json:"tournament_id"`
	UserID       string `json:"user_id"`
	TeamID       string `json:"team_id"`
	Amount       int64  `json:"amount"`
	CreatedAt    string `json:"created_at"`
}

type AdvanceResponse struct {
	Completed  bool         `json:"completed"`
	NextTeamID string       `json:"next_team_id,omitempty"`
	BidEndTime string       `json:"bid_end_time,omitempty"`
	WinningBid *BidResponse `json:"winning_bid,omitempty"`
}
