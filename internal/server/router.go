package server

import (
	"fantasy-auction/internal/events"
	"fantasy-auction/internal/ws"
	handler "fantasy-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.AuctionServiceInterface, hub *events.Hub) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(service)

	api := router.Group("/api")

	users := api.Group("/users")
	{
		users.POST("", auctionHandler.CreateUserHandler)
		users.GET("/:user_id", auctionHandler.GetUserHandler)
	}

	api.GET("/teams", auctionHandler.ListTeamsHandler)

	tournaments := api.Group("/tournaments")
	{
		tournaments.POST("", auctionHandler.CreateTournamentHandler)
		tournaments.GET("", auctionHandler.ListTournamentsHandler)
		tournaments.POST("/join-by-code", auctionHandler.JoinByCodeHandler)
		tournaments.GET("/:tournament_id", auctionHandler.GetTournamentHandler)
		tournaments.POST("/:tournament_id/join", auctionHandler.JoinTournamentHandler)
		tournaments.POST("/:tournament_id/start-auction", auctionHandler.StartAuctionHandler)
		tournaments.POST("/:tournament_id/bid", auctionHandler.PlaceBidHandler)
		tournaments.POST("/:tournament_id/advance", auctionHandler.AdvanceTeamHandler)
		tournaments.GET("/:tournament_id/bids", auctionHandler.GetBidsHandler)
		tournaments.GET("/:tournament_id/squads", auctionHandler.GetSquadsHandler)
		tournaments.GET("/:tournament_id/squads/:user_id", auctionHandler.GetSquadHandler)
		tournaments.POST("/:tournament_id/chat", auctionHandler.SendChatMessageHandler)
		tournaments.GET("/:tournament_id/chat", auctionHandler.GetChatMessagesHandler)
	}

	if hub != nil {
		router.GET("/ws/:tournament_id", ws.ServeTournament(hub))
	}

	return router
}
