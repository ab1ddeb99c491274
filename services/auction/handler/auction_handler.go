package handler

import (
	"fmt"
	"net/http"
	"time"

	auction "fantasy-auction/internal/auctionService"
	model "fantasy-auction/internal/models"
	"fantasy-auction/services/auction/helpers"
	"fantasy-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateUser(username, email string) (model.User, error)
	GetUser(userID string) (model.User, error)
	CreateTournament(p auction.CreateTournamentParams) (model.Tournament, error)
	JoinTournament(tournamentID, userID string) (model.Tournament, error)
	JoinByCode(joinCode, userID string) (model.Tournament, error)
	StartAuction(tournamentID, adminID string) (model.Tournament, error)
	PlaceBid(tournamentID, userID string, amount int64) (model.Bid, error)
	AdvanceTeam(tournamentID string) (auction.AdvanceResult, error)
	GetTournament(tournamentID string) (model.Tournament, error)
	ListTournaments() ([]model.Tournament, error)
	GetBids(tournamentID string) ([]model.Bid, error)
	GetSquads(tournamentID string) ([]model.Squad, error)
	GetSquad(tournamentID, userID string) (model.Squad, error)
	ListTeams(competition model.CompetitionType) ([]model.Team, error)
	SendChatMessage(tournamentID, userID, text string) (model.ChatMessage, error)
	GetChatMessages(tournamentID string) ([]model.ChatMessage, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// respondError maps a service error to HTTP and logs it with context.
func respondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": request failed", ctx)
}

func bidResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:        bid.BidID,
		TournamentID: bid.TournamentID,
		UserID:       bid.UserID,
		TeamID:       bid.TeamID,
		Amount:       bid.Amount,
		CreatedAt:    bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// CreateUserHandler handles POST /api/users
func (h *AuctionHandler) CreateUserHandler(c *gin.Context) {
	var req helpers.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateUserHandler", err)
		return
	}

	user, err := h.service.CreateUser(req.Username, req.Email)
	if err != nil {
		respondError(c, "CreateUserHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user created successfully")
	helpers.LogSuccess("CreateUserHandler", "user created successfully", map[string]any{
		"user_id":  user.UserID,
		"username": user.Username,
	})
}

// GetUserHandler handles GET /api/users/:user_id
func (h *AuctionHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.service.GetUser(userID)
	if err != nil {
		respondError(c, "GetUserHandler", err, map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}

// ListTeamsHandler handles GET /api/teams?competition=
func (h *AuctionHandler) ListTeamsHandler(c *gin.Context) {
	competition := model.CompetitionType(c.Query("competition"))
	teams, err := h.service.ListTeams(competition)
	if err != nil {
		respondError(c, "ListTeamsHandler", err, map[string]any{"competition": competition})
		return
	}
	if teams == nil {
		teams = []model.Team{}
	}
	utils.JSONResponse(c, http.StatusOK, teams, "teams retrieved successfully")
}

// CreateTournamentHandler handles POST /api/tournaments
func (h *AuctionHandler) CreateTournamentHandler(c *gin.Context) {
	var req helpers.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateTournamentHandler", err)
		return
	}

	tournament, err := h.service.CreateTournament(auction.CreateTournamentParams{
		Name:         req.Name,
		AdminID:      req.AdminID,
		Competition:  model.CompetitionType(req.Competition),
		TeamsPerUser: req.TeamsPerUser,
		MinimumBid:   req.MinimumBid,
		EntryFee:     req.EntryFee,
	})
	if err != nil {
		respondError(c, "CreateTournamentHandler", err, map[string]any{"admin_id": req.AdminID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, tournament, "tournament created successfully")
	helpers.LogSuccess("CreateTournamentHandler", "tournament created successfully", map[string]any{
		"tournament_id": tournament.TournamentID,
		"admin_id":      tournament.AdminID,
		"join_code":     tournament.JoinCode,
		"teams":         len(tournament.Teams),
	})
}

// ListTournamentsHandler handles GET /api/tournaments
func (h *AuctionHandler) ListTournamentsHandler(c *gin.Context) {
	tournaments, err := h.service.ListTournaments()
	if err != nil {
		respondError(c, "ListTournamentsHandler", err, nil)
		return
	}
	if tournaments == nil {
		tournaments = []model.Tournament{}
	}
	utils.JSONResponse(c, http.StatusOK, tournaments, "tournaments retrieved successfully")
}

// GetTournamentHandler handles GET /api/tournaments/:tournament_id
func (h *AuctionHandler) GetTournamentHandler(c *gin.Context) {
	tournamentID := c.Param("tournament_id")
	tournament, err := h.service.GetTournament(tournamentID)
	if err != nil {
		respondError(c, "GetTournamentHandler", err, map[string]any{"tournament_id": tournamentID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, tournament, "tournament retrieved successfully")
}

// JoinTournamentHandler handles POST /api/tournaments/:tournament_id/join
func (h *AuctionHandler) JoinTournamentHandler(c *gin.Context) {
	tournamentID := c.Param("tournament_id")
	var req helpers.JoinTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "JoinTournamentHandler", err)
		return
	}

	tournament, err := h.service.JoinTournament(tournamentID, req.UserID)
	if err != nil {
		respondError(c, "JoinTournamentHandler", err, map[string]any{
			"tournament_id": tournamentID,
			"user_id":       req.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, tournament, "joined tournament successfully")
	helpers.LogSuccess("JoinTournamentHandler", "joined tournament successfully", map[string]any{
		"tournament_id": tournamentID,
		"user_id":       req.UserID,
		"participants":  len(tournament.Participants),
	})
}

// JoinByCodeHandler handles POST /api/tournaments/join-by-code
func (h *AuctionHandler) JoinByCodeHandler(c *gin.Context) {
	var req helpers.JoinByCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "JoinByCodeHandler", err)
		return
	}

	tournament, err := h.service.JoinByCode(req.JoinCode, req.UserID)
	if err != nil {
		respondError(c, "JoinByCodeHandler", err, map[string]any{
			"join_code": req.JoinCode,
			"user_id":   req.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, tournament, "joined tournament successfully")
	helpers.LogSuccess("JoinByCodeHandler", "joined tournament successfully", map[string]any{
		"tournament_id": tournament.TournamentID,
		"user_id":       req.UserID,
	})
}

// StartAuctionHandler handles POST /api/tournaments/:tournament_id/start-auction
func (h *AuctionHandler) StartAuctionHandler(c *gin.Context) {
	tournamentID := c.Param("tournament_id")
	var req helpers.StartAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "StartAuctionHandler", err)
		return
	}

	tournament, err := h.service.StartAuction(tournamentID, req.AdminID)
	if err != nil {
		respondError(c, "StartAuctionHandler", err, map[string]any{
			"tournament_id": tournamentID,
			"admin_id":      req.AdminID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, tournament, "auction started")
	helpers.LogSuccess("StartAuctionHandler", "auction started", map[string]any{
		"tournament_id":   tournamentID,
		"current_team_id": tournament.CurrentTeamID,
	})
}

// PlaceBidHandler handles POST /api/tournaments/:tournament_id/bid
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	tournamentID := c.Param("tournament_id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(tournamentID, req.UserID, req.Amount)
	if err != nil {
		respondError(c, "PlaceBidHandler", err, map[string]any{
			"tournament_id": tournamentID,
			"user_id":       req.UserID,
			"amount":        req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, bidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":        bid.BidID,
		"tournament_id": tournamentID,
		"team_id":       bid.TeamID,
		"user_id":       req.UserID,
		"amount":        bid.Amount,
	})
}

// AdvanceTeamHandler handles POST /api/tournaments/:tournament_id/advance
func (h *AuctionHandler) AdvanceTeamHandler(c *gin.Context) {
	tournamentID := c.Param("tournament_id")
	result, err := h.service.AdvanceTeam(tournamentID)
	if err != nil {
		respondError(c, "AdvanceTeamHandler", err, map[string]any{"tournament_id": tournamentID})
		return
	}

	resp := helpers.AdvanceResponse{
		Completed:  result.Completed,
		NextTeamID: result.NextTeamID,
	}
	if result.BidEndTime != nil {
		resp.BidEndTime = result.BidEndTime.UTC().Format(time.RFC3339)
	}
	if result.WinningBid != nil {
		wb := bidResponse(*result.WinningBid)
		resp.WinningBid = &wb
	}

	message := "advanced to next team"
	if result.Completed {
		message = "auction completed"
	}
	utils.JSONResponse(c, http.StatusOK, resp, message)
	helpers.LogSuccess("AdvanceTeamHandler", message, map[string]any{
		"tournament_id": tournamentID,
		"next_team_id":  result.NextTeamID,
		"completed":     result.Completed,
	})
}

// GetBidsHandler handles GET /api/tournaments/:tournament_id/bids
func (h *AuctionHandler) GetBidsHandler(c *gin.Context) {
	tournamentID := c.Param("tournament_id")
	bids, err := h.service.GetBids(tournamentID)
	if err != nil {
		respondError(c, "GetBidsHandler", err, map[string]any{"tournament_id": tournamentID})
		return
	}
	if bids == nil {
		bids = []model.Bid{}
	}
	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}

// GetSquadsHandler handles GET /api/tournaments/:tournament_id/squads
func (h *AuctionHandler) GetSquadsHandler(c *gin.Context) {
	tournamentID := c.Param("tournament_id")
	squads, err := h.service.GetSquads(tournamentID)
	if err != nil {
		respondError(c, "GetSquadsHandler", err, map[string]any{"tournament_id": tournamentID})
		return
	}
	if squads == nil {
		squads = []model.Squad{}
	}
	utils.JSONResponse(c, http.StatusOK, squads, "squads retrieved successfully")
}

// GetSquadHandler handles GET /api/tournaments/:tournament_id/squads/:user_id
func (h *AuctionHandler) GetSquadHandler(c *gin.Context) {
	tournamentID := c.Param("tournament_id")
	userID := c.Param("user_id")
	squad, err := h.service.GetSquad(tournamentID, userID)
	if err != nil {
		respondError(c, "GetSquadHandler", err, map[string]any{
			"tournament_id": tournamentID,
			"user_id":       userID,
		})
		return
	}
	utils.JSONResponse(c, http.StatusOK, squad, "squad retrieved successfully")
}

// SendChatMessageHandler handles POST /api/tournaments/:tournament_id/chat
func (h *AuctionHandler) SendChatMessageHandler(c *gin.Context) {
	tournamentID := c.Param("tournament_id")
	var req helpers.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SendChatMessageHandler", err)
		return
	}

	message, err := h.service.SendChatMessage(tournamentID, req.UserID, req.Message)
	if err != nil {
		respondError(c, "SendChatMessageHandler", err, map[string]any{
			"tournament_id": tournamentID,
			"user_id":       req.UserID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, message, "message sent")
}

// GetChatMessagesHandler handles GET /api/tournaments/:tournament_id/chat
func (h *AuctionHandler) GetChatMessagesHandler(c *gin.Context) {
	tournamentID := c.Param("tournament_id")
	messages, err := h.service.GetChatMessages(tournamentID)
	if err != nil {
		respondError(c, "GetChatMessagesHandler", err, map[string]any{"tournament_id": tournamentID})
		return
	}
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	utils.JSONResponse(c, http.StatusOK, messages, "messages retrieved successfully")
}
